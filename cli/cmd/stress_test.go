package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/dlog/log"
)

func fileLogger(t *testing.T, level log.Level) *log.Logger {
	t.Helper()

	l := log.New(log.MakeConfig(
		log.WithSinks(log.SinkFilesystem),
		log.WithFolder(t.TempDir()),
		log.WithTimestamp(false),
		log.WithLevel(level),
	))
	t.Cleanup(func() { _ = l.Close() })

	if err := l.FileErr(); err != nil {
		t.Fatal(err)
	}

	return l
}

func TestStressRun(t *testing.T) {
	tests := []struct {
		name      string
		threshold log.Level
		level     string
		expected  string
	}{
		{"info_at_trace", log.LevelTrace, "info", "200"},
		{"trace_at_debug", log.LevelDebug, "trace", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := fileLogger(t, tt.threshold)

			var out bytes.Buffer

			s := &Stress{Goroutines: 4, Lines: 50, Tag: "stress", Level: tt.level}
			if err := s.Run(context.Background(), l, &out); err != nil {
				t.Fatalf("Run() error = %v\n%s", err, out.String())
			}

			report := out.String()
			if !strings.Contains(report, "PASS") {
				t.Errorf("expected PASS in report:\n%s", report)
			}
			if !strings.Contains(report, tt.expected) {
				t.Errorf("expected %s lines in report:\n%s", tt.expected, report)
			}
		})
	}
}

func TestStressRun_ConsoleOnly(t *testing.T) {
	var console, out bytes.Buffer

	l := log.New(log.MakeConfig(
		log.WithSinks(log.SinkConsole),
		log.WithConsole(&console),
	))

	s := &Stress{Goroutines: 2, Lines: 10, Tag: "stress", Level: "info"}
	if err := s.Run(context.Background(), l, &out); err != nil {
		t.Fatal(err)
	}

	if got := strings.Count(console.String(), "\n"); got != 20 {
		t.Errorf("expected 20 console lines, got %d", got)
	}
	if !strings.Contains(out.String(), "filesystem sink inactive") {
		t.Errorf("expected unverified report:\n%s", out.String())
	}
}

func TestStressRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := fileLogger(t, log.LevelInfo)

	var out bytes.Buffer

	s := &Stress{Goroutines: 2, Lines: 10, Tag: "stress", Level: "info"}

	err := s.Run(ctx, l, &out)
	if !errors.Is(err, ErrStress) {
		t.Errorf("expected ErrStress for a canceled run, got %v", err)
	}
	if !strings.Contains(out.String(), "FAIL") {
		t.Errorf("expected FAIL in report:\n%s", out.String())
	}
}

func TestCountLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	content := strings.Join([]string{
		"INFO | TID:1 | stress | writer 0 line 0",
		"DEBUG | TID:22 | stress | writer 1 line 7",
		"INFO | TID:1 | other | writer 0 line 0",
		"INFO | TID:1 | stress | writer 0 line 1INFO | TID:2 | stress | writer 1 line 0",
		"INFO | TID: | stress | writer 0 line 2",
		"TRACE | TID:3 | dlog | unrelated",
		"",
	}, "\n")

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	found, malformed, err := countLines(path, "stress")
	if err != nil {
		t.Fatal(err)
	}

	if found != 2 {
		t.Errorf("found = %d, want 2", found)
	}
	if malformed != 2 {
		t.Errorf("malformed = %d, want 2", malformed)
	}
}

func TestCountLines_MissingFile(t *testing.T) {
	_, _, err := countLines(filepath.Join(t.TempDir(), "absent.txt"), "stress")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestStressRun_NegativeCounts(t *testing.T) {
	tests := []struct {
		name       string
		goroutines int
		lines      int
	}{
		{"negative_goroutines", -1, 10},
		{"negative_lines", 2, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console, out bytes.Buffer

			l := log.New(log.MakeConfig(
				log.WithSinks(log.SinkConsole),
				log.WithConsole(&console),
			))

			s := &Stress{Goroutines: tt.goroutines, Lines: tt.lines, Tag: "stress", Level: "info"}

			err := s.Run(context.Background(), l, &out)
			if !errors.Is(err, ErrStress) || !errors.Is(err, ErrNegativeCount) {
				t.Fatalf("Run() error = %v, want ErrStress wrapping ErrNegativeCount", err)
			}

			if console.Len() != 0 || out.Len() != 0 {
				t.Errorf("expected no output, got console %q, report %q", console.String(), out.String())
			}
		})
	}
}
