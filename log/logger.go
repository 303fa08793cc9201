package log

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/ardnew/dlog/pkg"
)

// Logger writes tagged, leveled lines to its enabled sinks.
//
// [Logger.Log] is safe for concurrent use. [Logger.LogUnlocked] is not; it is
// meant for code that already guarantees exclusive access, either by running
// on a single goroutine or by holding the logger's lock via [Logger.Lock].
type Logger struct {
	mu      sync.Mutex
	console io.Writer
	file    *os.File
	fileErr error
	path    string
	sinks   Sink
	level   Level
}

// New creates a [Logger] from cfg.
//
// New never fails. If the filesystem sink is requested but its file cannot be
// created, that sink is dropped and the reason is kept in [Logger.FileErr];
// the logger continues with the remaining sinks, or writes nothing at all if
// none remain.
//
// The log file is "<FolderPath>/log-<unix-seconds>.txt" when cfg.Timestamped
// is set, otherwise "<FolderPath>/log.txt". It is truncated on open.
func New(cfg Config) *Logger {
	l := &Logger{
		console: cfg.Console,
		sinks:   cfg.Sinks,
		level:   cfg.Level,
	}

	if l.console == nil {
		l.sinks = l.sinks.Without(SinkConsole)
	}

	if l.sinks.Has(SinkFilesystem) {
		l.openFile(cfg)
	}

	return l
}

func (l *Logger) openFile(cfg Config) {
	if cfg.FolderPath == "" {
		l.sinks = l.sinks.Without(SinkFilesystem)

		return
	}

	path := filepath.Join(cfg.FolderPath, fileName(cfg))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		l.sinks = l.sinks.Without(SinkFilesystem)
		l.fileErr = pkg.ErrOpenLogFile.Wrap(err)

		return
	}

	l.file, l.path = f, path
}

func fileName(cfg Config) string {
	if !cfg.Timestamped {
		return "log.txt"
	}

	return "log-" + strconv.FormatInt(cfg.now().Unix(), 10) + ".txt"
}

// Close releases the log file, if any, and drops the filesystem sink.
// Calling it again is a no-op. The console writer is never closed.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	err := l.file.Close()
	l.file = nil
	l.sinks = l.sinks.Without(SinkFilesystem)

	return err
}

// Lock acquires the lock that serializes [Logger.Log].
// Holding it makes [Logger.LogUnlocked] safe across goroutines.
func (l *Logger) Lock() { l.mu.Lock() }

// Unlock releases the lock acquired by [Logger.Lock].
func (l *Logger) Unlock() { l.mu.Unlock() }

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level Level) bool { return level <= l.level }

// Level returns the most verbose level written.
func (l *Logger) Level() Level { return l.level }

// Sinks returns the sinks that are actually in use, which excludes any
// requested sink that could not be opened.
func (l *Logger) Sinks() Sink { return l.sinks }

// Path returns the path of the open log file, or "" if the filesystem sink
// is not in use.
func (l *Logger) Path() string { return l.path }

// FileErr returns the reason the filesystem sink was dropped, or nil.
// The returned error matches [pkg.ErrOpenLogFile].
func (l *Logger) FileErr() error { return l.fileErr }

// Log writes one line built from tag and parts to every enabled sink.
// The parts are concatenated with no separator.
//
// If level is above the threshold, Log returns without acquiring the lock.
func (l *Logger) Log(level Level, tag string, parts ...string) {
	if !l.Enabled(level) {
		return
	}

	line := formatLine(level, tag, parts)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.write(line)
}

// LogUnlocked is [Logger.Log] without locking.
//
// The caller must guarantee exclusive access. Concurrent calls from multiple
// goroutines without holding [Logger.Lock] may interleave output.
func (l *Logger) LogUnlocked(level Level, tag string, parts ...string) {
	if !l.Enabled(level) {
		return
	}

	l.write(formatLine(level, tag, parts))
}

// Info logs parts at [LevelInfo] using [Logger.Log].
func (l *Logger) Info(tag string, parts ...string) { l.Log(LevelInfo, tag, parts...) }

// Debug logs parts at [LevelDebug] using [Logger.Log].
func (l *Logger) Debug(tag string, parts ...string) { l.Log(LevelDebug, tag, parts...) }

// Trace logs parts at [LevelTrace] using [Logger.Log].
func (l *Logger) Trace(tag string, parts ...string) { l.Log(LevelTrace, tag, parts...) }

// write sends line once to each enabled sink. Write errors are not
// intercepted.
func (l *Logger) write(line []byte) {
	defer putLine(line)

	if l.sinks.Has(SinkFilesystem) {
		if l.file == nil {
			panic("log: filesystem sink enabled without an open file")
		}

		_, _ = l.file.Write(line)
	}

	if l.sinks.Has(SinkConsole) {
		_, _ = l.console.Write(line)
	}
}
