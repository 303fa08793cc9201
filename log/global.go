package log

import (
	"sync"
	"sync/atomic"

	"github.com/ardnew/dlog/pkg"
)

// The process-wide logger slot. globalMu serializes [Init] and [Destroy];
// [Get] only loads the pointer.
var (
	globalMu sync.Mutex
	global   atomic.Pointer[Logger]
)

// Init creates the process-wide [Logger] from cfg and returns it.
//
// Init must be called once before any package-level logging function, with
// no logging calls in flight. It returns [pkg.ErrAlreadyInitialized] if a
// process-wide logger is already live. As with [New], an unavailable
// filesystem sink does not make Init fail.
func Init(cfg Config) (*Logger, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global.Load() != nil {
		return nil, pkg.ErrAlreadyInitialized
	}

	l := New(cfg)
	global.Store(l)

	return l, nil
}

// Destroy closes the process-wide [Logger] and releases its slot.
// It returns [pkg.ErrNotInitialized] if no process-wide logger is live.
// Package-level logging functions must not be called afterward.
func Destroy() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	l := global.Swap(nil)
	if l == nil {
		return pkg.ErrNotInitialized
	}

	return l.Close()
}

// Get returns the process-wide [Logger].
//
// Get panics if called before [Init] or after [Destroy].
func Get() *Logger {
	l := global.Load()
	if l == nil {
		panic("log: Get called before Init or after Destroy")
	}

	return l
}

// Print logs parts at [LevelInfo] with an empty tag using the process-wide
// logger. It compiles to nothing when built with the nolog tag.
func Print(parts ...string) {
	if compiled {
		Get().Log(LevelInfo, "", parts...)
	}
}

// Info logs parts at [LevelInfo] using the process-wide logger.
// It compiles to nothing when built with the nolog tag.
func Info(tag string, parts ...string) {
	if compiled {
		Get().Log(LevelInfo, tag, parts...)
	}
}

// Debug logs parts at [LevelDebug] using the process-wide logger.
// It compiles to nothing when built with the nolog tag.
func Debug(tag string, parts ...string) {
	if compiled {
		Get().Log(LevelDebug, tag, parts...)
	}
}

// Trace logs parts at [LevelTrace] using the process-wide logger.
// It compiles to nothing when built with the nolog tag.
func Trace(tag string, parts ...string) {
	if compiled {
		Get().Log(LevelTrace, tag, parts...)
	}
}

// ForceInfo is [Info] regardless of the nolog build tag.
func ForceInfo(tag string, parts ...string) { Get().Log(LevelInfo, tag, parts...) }

// ForceDebug is [Debug] regardless of the nolog build tag.
func ForceDebug(tag string, parts ...string) { Get().Log(LevelDebug, tag, parts...) }

// ForceTrace is [Trace] regardless of the nolog build tag.
func ForceTrace(tag string, parts ...string) { Get().Log(LevelTrace, tag, parts...) }
