package log

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

const (
	fieldSep  = " | "
	tidPrefix = "TID:"
)

var linePool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)

		return &b
	},
}

// formatLine renders "<LEVEL> | TID:<id> | <tag> | <parts...>\n".
// The returned slice comes from linePool and must be released with putLine.
func formatLine(level Level, tag string, parts []string) []byte {
	bp, _ := linePool.Get().(*[]byte)
	b := (*bp)[:0]

	b = append(b, level.String()...)
	b = append(b, fieldSep...)
	b = append(b, tidPrefix...)
	b = strconv.AppendUint(b, goroutineID(), 10)
	b = append(b, fieldSep...)
	b = append(b, tag...)
	b = append(b, fieldSep...)

	for _, p := range parts {
		b = append(b, p...)
	}

	return append(b, '\n')
}

// maxPooledLine bounds the capacity of buffers returned to linePool.
const maxPooledLine = 64 << 10

func putLine(b []byte) {
	if cap(b) > maxPooledLine {
		return
	}

	b = b[:0]
	linePool.Put(&b)
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID returns the runtime id of the calling goroutine, parsed from
// the header of its stack trace ("goroutine 18 [running]:").
func goroutineID() uint64 {
	var buf [64]byte

	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, goroutinePrefix)

	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}

	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}

	return id
}
