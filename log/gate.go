//go:build !nolog

package log

// compiled gates the package-level logging functions.
// Build with tag nolog to turn them into no-ops.
const compiled = true
