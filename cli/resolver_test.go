package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/dlog/pkg"
)

func flagNamed(name string) *kong.Flag {
	return &kong.Flag{Value: &kong.Value{Name: name}}
}

func TestResolve_FlattensNestedKeys(t *testing.T) {
	doc := `
log-level: debug
log:
  sinks: [console, filesystem]
  timestamp: false
pprof:
  dir: /tmp/pprof
retries: 3
ratio: 0.5
`

	r, err := resolve(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	tests := []struct {
		flag     string
		expected any
	}{
		{"log-level", "debug"},
		{"log-sinks", "console,filesystem"},
		{"log-timestamp", false},
		{"pprof-dir", "/tmp/pprof"},
		{"retries", "3"},
		{"ratio", "0.5"},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := r.Resolve(nil, nil, flagNamed(tt.flag))
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %#v, got %#v", tt.expected, got)
			}
		})
	}
}

func TestResolve_UnderscoreKeys(t *testing.T) {
	r, err := resolve(strings.NewReader("log_dir: /var/log/app\n"))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	got, err := r.Resolve(nil, nil, flagNamed("log-dir"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != "/var/log/app" {
		t.Errorf("expected /var/log/app, got %#v", got)
	}
}

func TestResolve_EmptyDocument(t *testing.T) {
	r, err := resolve(strings.NewReader(""))
	if err != nil {
		t.Fatalf("expected empty document to be accepted, got %v", err)
	}

	if err := r.Validate(nil); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestResolve_MalformedDocument(t *testing.T) {
	_, err := resolve(strings.NewReader("log-level: [unclosed\n"))
	if !errors.Is(err, pkg.ErrReadConfig) {
		t.Errorf("expected ErrReadConfig, got %v", err)
	}
}
