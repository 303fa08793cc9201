// Package profile provides optional runtime profiling for the dlog command.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. Built without the tag (the default), [Profiler.Start] returns a no-op
// and the profiling dependency is not linked.
//
// The mutex and block modes are the useful ones for this module: they show
// how long goroutines wait on the logger's write lock, for example while
// running the stress command:
//
//	go build -tags pprof -o dlog .
//	./dlog --pprof-mode=mutex stress --goroutines=64 --lines=10000
//	go tool pprof -http=: ~/.cache/dlog/pprof/mutex.pprof
//
// # Available Profiling Modes
//
//   - allocs, heap, mem: memory profiling
//   - block:     blocking on synchronization primitives
//   - mutex:     mutex contention
//   - cpu:       CPU profiling
//   - clock:     wall-clock profiling
//   - goroutine: goroutine profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace
//
// Use [Modes] to retrieve the list of supported modes programmatically. It is
// empty when built without the pprof tag.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
