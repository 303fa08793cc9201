//go:build nolog

package log

// compiled is false when built with tag nolog, so the package-level logging
// functions compile to nothing.
const compiled = false
