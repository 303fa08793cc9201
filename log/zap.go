package log

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// ZapCore is a [zapcore.Core] that writes entries through a [Logger].
//
// Entries render like [Handler] records: the message followed by
// " key=value" for each field in key order. A named zap logger uses its name
// as the tag, and a field named [TagKey] overrides both, whether it was added
// with With or passed on the call. The call's field wins over With's.
type ZapCore struct {
	logger   *Logger
	tag      string
	override string // tag from a [TagKey] field added with With
	fields   string // pre-rendered fields from With
}

// NewZapCore returns a [ZapCore] writing to l with the given tag.
func NewZapCore(l *Logger, tag string) *ZapCore {
	return &ZapCore{logger: l, tag: tag}
}

// ZapLevelOf maps a [zapcore.Level] to a [Level]: Info and above are
// [LevelInfo], Debug is [LevelDebug], and anything lower is [LevelTrace].
func ZapLevelOf(level zapcore.Level) Level {
	switch {
	case level >= zapcore.InfoLevel:
		return LevelInfo
	case level >= zapcore.DebugLevel:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// Enabled implements [zapcore.LevelEnabler].
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return c.logger.Enabled(ZapLevelOf(level))
}

// With implements [zapcore.Core].
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	d := *c

	rendered, tag := renderFields(fields)
	if tag != "" {
		d.override = tag
	}

	d.fields = c.fields + rendered

	return &d
}

// Check implements [zapcore.Core].
func (c *ZapCore) Check(
	ent zapcore.Entry,
	ce *zapcore.CheckedEntry,
) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

// Write implements [zapcore.Core]. It uses the locking [Logger.Log] path.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	tag := c.tag
	if ent.LoggerName != "" {
		tag = ent.LoggerName
	}

	if c.override != "" {
		tag = c.override
	}

	rendered, override := renderFields(fields)
	if override != "" {
		tag = override
	}

	c.logger.Log(ZapLevelOf(ent.Level), tag, ent.Message, c.fields, rendered)

	return nil
}

// Sync implements [zapcore.Core]. Lines are written unbuffered.
func (*ZapCore) Sync() error { return nil }

// renderFields returns fields as " key=value" pairs and the value of any
// [TagKey] field.
func renderFields(fields []zapcore.Field) (rendered, tag string) {
	if len(fields) == 0 {
		return "", ""
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}

	if v, ok := enc.Fields[TagKey].(string); ok {
		tag = v

		delete(enc.Fields, TagKey)
	}

	var sb strings.Builder

	for _, key := range slices.Sorted(maps.Keys(enc.Fields)) {
		sb.WriteByte(' ')
		sb.WriteString(key)
		sb.WriteByte('=')

		switch v := enc.Fields[key].(type) {
		case string:
			if v == "" || strings.ContainsAny(v, " =\"\n") {
				v = strconv.Quote(v)
			}

			sb.WriteString(v)
		case time.Time:
			sb.WriteString(v.Format(time.RFC3339))
		default:
			sb.WriteString(fmt.Sprint(v))
		}
	}

	return sb.String(), tag
}
