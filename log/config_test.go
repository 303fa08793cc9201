package log

import (
	"bytes"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/ardnew/dlog/pkg"
)

func TestConfig_DefaultConfig_Defaults(t *testing.T) {
	c := DefaultConfig()

	if c.Sinks != SinkConsole|SinkFilesystem {
		t.Errorf("expected both sinks by default, got %v", c.Sinks)
	}
	if c.FolderPath != "." {
		t.Errorf("expected working directory by default, got %q", c.FolderPath)
	}
	if !c.Timestamped {
		t.Error("expected timestamped file names by default")
	}
	if c.Level != LevelTrace {
		t.Errorf("expected most verbose level by default, got %v", c.Level)
	}
	if c.Console == nil {
		t.Error("expected a console stream by default")
	}
}

func TestConfig_MakeConfig_AppliesOptions(t *testing.T) {
	var buf bytes.Buffer
	stamp := time.Unix(1700000000, 0)

	c := MakeConfig(
		WithSinks(SinkConsole),
		WithFolder("/tmp/x"),
		WithTimestamp(false),
		WithLevel(LevelDebug),
		WithConsole(&buf),
		WithClock(func() time.Time { return stamp }),
		nil,
	)

	if c.Sinks != SinkConsole {
		t.Errorf("expected console sink, got %v", c.Sinks)
	}
	if c.FolderPath != "/tmp/x" {
		t.Errorf("expected folder /tmp/x, got %q", c.FolderPath)
	}
	if c.Timestamped {
		t.Error("expected timestamps disabled")
	}
	if c.Level != LevelDebug {
		t.Errorf("expected level DEBUG, got %v", c.Level)
	}
	if c.Console != &buf {
		t.Error("expected console to be the provided writer")
	}
	if !c.now().Equal(stamp) {
		t.Errorf("expected clock %v, got %v", stamp, c.now())
	}
}

func TestConfig_ZeroValue_ClockFallsBack(t *testing.T) {
	var c Config

	if c.now().IsZero() {
		t.Error("expected zero Config to fall back to the wall clock")
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{LevelTrace, "TRACE"},
		{Level(9), "Level(9)"},
		{Level(-1), "Level(-1)"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %s, want %s", tt.level, got, tt.expected)
		}
	}
}

func TestLevel_Ordering_InfoMostSevere(t *testing.T) {
	if !(LevelInfo < LevelDebug && LevelDebug < LevelTrace) {
		t.Error("expected INFO < DEBUG < TRACE")
	}
	if LevelInfo != 0 {
		t.Errorf("expected INFO to be 0, got %d", LevelInfo)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"info", LevelInfo},
		{"INFO", LevelInfo},
		{" Debug ", LevelDebug},
		{"trace", LevelTrace},
		{"loud", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevel_UnmarshalText_RejectsUnknown(t *testing.T) {
	var l Level

	err := l.UnmarshalText([]byte("warn"))
	if !errors.Is(err, pkg.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestLevel_MarshalText_Lowercase(t *testing.T) {
	b, err := LevelDebug.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "debug" {
		t.Errorf("expected debug, got %s", b)
	}
}

func TestLevels_IteratesInOrder(t *testing.T) {
	got := slices.Collect(Levels())
	expected := []string{"INFO", "DEBUG", "TRACE"}

	if !slices.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestSink_SetOperations(t *testing.T) {
	k := SinkNone.With(SinkConsole)

	if !k.Has(SinkConsole) {
		t.Error("expected console after With")
	}
	if k.Has(SinkFilesystem) {
		t.Error("expected no filesystem")
	}
	if k.Has(SinkNone) {
		t.Error("expected Has(SinkNone) to be false")
	}
	if !SinkAll.Has(SinkAll) {
		t.Error("expected SinkAll to contain itself")
	}
	if SinkAll.Without(SinkFilesystem) != SinkConsole {
		t.Error("expected Without to clear only the filesystem bit")
	}
}

func TestSink_String(t *testing.T) {
	tests := []struct {
		sink     Sink
		expected string
	}{
		{SinkNone, "none"},
		{SinkConsole, "console"},
		{SinkFilesystem, "filesystem"},
		{SinkAll, "console|filesystem"},
	}

	for _, tt := range tests {
		if got := tt.sink.String(); got != tt.expected {
			t.Errorf("Sink(%d).String() = %s, want %s", tt.sink, got, tt.expected)
		}
	}
}

func TestSink_Names(t *testing.T) {
	got := slices.Collect(SinkAll.Names())
	expected := []string{"console", "filesystem"}

	if !slices.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestParseSinks(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected Sink
		wantErr  bool
	}{
		{"both", []string{"console", "filesystem"}, SinkAll, false},
		{"alias", []string{"FILE"}, SinkFilesystem, false},
		{"none", []string{"none"}, SinkNone, false},
		{"empty", nil, SinkNone, false},
		{"unknown", []string{"console", "syslog"}, SinkNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSinks(tt.input...)
			if tt.wantErr {
				if !errors.Is(err, pkg.ErrInvalidSink) {
					t.Errorf("expected ErrInvalidSink, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
