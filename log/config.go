package log

//go:generate go tool stringer --linecomment --type Level --output level_string.go

import (
	"io"
	"iter"
	"os"
	"strings"
	"time"

	"github.com/ardnew/dlog/pkg"
)

// Level represents the verbosity of a log message.
// Lower values are more severe; a message is written when its level is at or
// below the logger's threshold.
type Level int8

const (
	LevelInfo  Level = iota // INFO
	LevelDebug              // DEBUG
	LevelTrace              // TRACE
)

// DefaultLevel is the default threshold. Everything is logged.
const DefaultLevel = LevelTrace

// Levels returns an iterator over all defined log level names, from most
// severe to most verbose.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range []Level{
			LevelInfo,
			LevelDebug,
			LevelTrace,
		} {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a case-insensitive level name.
// Unrecognized names yield [DefaultLevel].
func ParseLevel(s string) Level {
	var l Level

	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return l
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Level) UnmarshalText(text []byte) error {
	switch strings.ToUpper(strings.TrimSpace(string(text))) {
	case LevelInfo.String():
		*l = LevelInfo
	case LevelDebug.String():
		*l = LevelDebug
	case LevelTrace.String():
		*l = LevelTrace
	default:
		return pkg.ErrInvalidLevel.Wrapf("%q", text)
	}

	return nil
}

// Sink is a set of output destinations.
type Sink uint8

const (
	SinkFilesystem Sink = 1 << iota
	SinkConsole

	SinkNone Sink = 0
	SinkAll       = SinkConsole | SinkFilesystem
)

// DefaultSinks is the default set of sinks.
const DefaultSinks = SinkAll

var sinkName = []struct {
	sink Sink
	name string
}{
	{SinkConsole, "console"},
	{SinkFilesystem, "filesystem"},
}

// Has reports whether every sink in s is in the receiver.
func (k Sink) Has(s Sink) bool { return s != SinkNone && k&s == s }

// With returns the receiver with the sinks in s added.
func (k Sink) With(s Sink) Sink { return k | s }

// Without returns the receiver with the sinks in s removed.
func (k Sink) Without(s Sink) Sink { return k &^ s }

// String returns the "|"-separated names of the sinks in the receiver, or
// "none" if it is empty.
func (k Sink) String() string {
	var names []string

	for _, n := range sinkName {
		if k.Has(n.sink) {
			names = append(names, n.name)
		}
	}

	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, "|")
}

// Names returns an iterator over the names of the sinks in the receiver.
func (k Sink) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range sinkName {
			if k.Has(n.sink) && !yield(n.name) {
				return
			}
		}
	}
}

// ParseSinks returns the union of the named sinks.
// Names are case-insensitive; "file" is accepted for "filesystem" and
// "none" contributes nothing.
func ParseSinks(names ...string) (Sink, error) {
	var k Sink

	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "console":
			k = k.With(SinkConsole)
		case "filesystem", "file":
			k = k.With(SinkFilesystem)
		case "none", "":
		default:
			return SinkNone, pkg.ErrInvalidSink.Wrapf("%q", name)
		}
	}

	return k, nil
}

// DefaultFolderPath is the default folder for the filesystem sink.
const DefaultFolderPath = "."

// DefaultTimestamped is the default setting for timestamp-qualified log
// file names.
const DefaultTimestamped = true

// Clock returns the current time. It stamps timestamped log file names.
type Clock func() time.Time

// Config describes a [Logger]. It is read once by [New] and never mutated
// afterward, so a Config may be reused freely.
//
// Config performs no validation. An unusable FolderPath is handled by [New],
// which drops the filesystem sink.
type Config struct {
	// Console receives console sink output.
	Console io.Writer
	// FolderPath is the directory holding the log file.
	FolderPath string
	clock      Clock
	// Sinks selects the requested output destinations.
	Sinks Sink
	// Level is the most verbose level written.
	Level Level
	// Timestamped selects "log-<unix-seconds>.txt", a new file each run,
	// over "log.txt", which is truncated each run.
	Timestamped bool
}

// DefaultConfig returns the default configuration: both sinks, the working
// directory, timestamped file names, and every level enabled.
func DefaultConfig() Config {
	return Config{
		Console:     os.Stdout,
		FolderPath:  DefaultFolderPath,
		clock:       time.Now,
		Sinks:       DefaultSinks,
		Level:       DefaultLevel,
		Timestamped: DefaultTimestamped,
	}
}

// MakeConfig returns [DefaultConfig] overridden by the given options.
func MakeConfig(opts ...Option) Config {
	return apply(DefaultConfig(), opts...)
}

// now returns the time from the configured clock, falling back to
// [time.Now] for a zero Config.
func (c Config) now() time.Time {
	if c.clock == nil {
		return time.Now()
	}

	return c.clock()
}

// WithSinks returns a functional option that sets the requested sinks.
func WithSinks(sinks Sink) Option {
	return func(c Config) Config {
		c.Sinks = sinks

		return c
	}
}

// WithFolder returns a functional option that sets the folder used by the
// filesystem sink. An empty path disables the filesystem sink.
func WithFolder(path string) Option {
	return func(c Config) Config {
		c.FolderPath = path

		return c
	}
}

// WithTimestamp returns a functional option that controls whether the log
// file name includes the creation time.
func WithTimestamp(enable bool) Option {
	return func(c Config) Config {
		c.Timestamped = enable

		return c
	}
}

// WithLevel returns a functional option that sets the most verbose level
// written. Messages above this level are discarded.
func WithLevel(level Level) Option {
	return func(c Config) Config {
		c.Level = level

		return c
	}
}

// WithConsole returns a functional option that sets the console stream.
// If a nil writer is provided, the console sink is dropped by [New].
func WithConsole(w io.Writer) Option {
	return func(c Config) Config {
		c.Console = w

		return c
	}
}

// WithClock returns a functional option that sets the clock used to stamp
// timestamped log file names.
func WithClock(clock Clock) Option {
	return func(c Config) Config {
		c.clock = clock

		return c
	}
}
