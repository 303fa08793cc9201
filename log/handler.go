package log

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// TagKey is the attribute key that overrides a [Handler]'s tag.
const TagKey = "tag"

// Handler is a [slog.Handler] that writes records through a [Logger], so
// code written against [log/slog] produces the same lines as direct calls.
//
// The record message is followed by each attribute as " key=value", with
// group names joined by ".". An attribute named [TagKey] sets the tag
// instead of being rendered.
type Handler struct {
	logger *Logger
	tag    string
	prefix string // dotted group prefix for subsequent keys
	attrs  string // pre-rendered attributes from WithAttrs
}

// NewHandler returns a [Handler] writing to l with the given tag.
func NewHandler(l *Logger, tag string) *Handler {
	return &Handler{logger: l, tag: tag}
}

// LevelOf maps a [slog.Level] to a [Level]: Info and above are [LevelInfo],
// Debug up to Info is [LevelDebug], and anything lower is [LevelTrace].
func LevelOf(level slog.Level) Level {
	switch {
	case level >= slog.LevelInfo:
		return LevelInfo
	case level >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// Enabled implements [slog.Handler].
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(LevelOf(level))
}

// Handle implements [slog.Handler]. It uses the locking [Logger.Log] path.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	tag := h.tag

	var sb strings.Builder

	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		if h.prefix == "" && a.Key == TagKey {
			tag = a.Value.Resolve().String()

			return true
		}

		writeAttr(&sb, h.prefix, a)

		return true
	})

	h.logger.Log(LevelOf(r.Level), tag, sb.String())

	return nil
}

// WithAttrs implements [slog.Handler].
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h

	var sb strings.Builder

	sb.WriteString(h.attrs)

	for _, a := range attrs {
		if h.prefix == "" && a.Key == TagKey {
			c.tag = a.Value.Resolve().String()

			continue
		}

		writeAttr(&sb, h.prefix, a)
	}

	c.attrs = sb.String()

	return &c
}

// WithGroup implements [slog.Handler].
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, g := range group {
			writeAttr(sb, prefix, g)
		}

		return
	}

	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	writeValue(sb, a.Value)
}

func writeValue(sb *strings.Builder, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if s == "" || strings.ContainsAny(s, " =\"\n") {
			s = strconv.Quote(s)
		}

		sb.WriteString(s)

	case slog.KindTime:
		sb.WriteString(v.Time().Format(time.RFC3339))

	default:
		sb.WriteString(v.String())
	}
}
