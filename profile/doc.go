// Package profile provides optional runtime profiling for combin.
//
// Profiling integrates [github.com/pkg/profile] and is compiled only with the
// pprof build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Config.Start] returns a no-op.
//
// # Modes
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     blocking profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace
//
// Parsing large inputs with many backtracking alternatives is allocation
// heavy; the allocs and heap modes are the useful ones for tuning grammars.
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
