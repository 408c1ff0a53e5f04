// Package arena provides tracked memory regions for parsers.
//
// # Overview
//
// Go memory is garbage collected, so an [Arena] does not own raw pages.
// Instead it keeps an explicit working set: every buffer or list handed out
// through an [Allocator] is recorded until it is freed individually or the
// region that owns it is released in bulk. The accounting is exact, which
// lets callers (and tests) verify that a parse leaves nothing behind.
//
// # Regions
//
// Arenas nest. An arena created with a parent charges every allocation to
// the parent chain as well as to itself:
//
//	root := arena.New(nil)
//	parse := arena.New(root)
//	scratch := arena.New(parse)
//
//	buf := scratch.Alloc(8) // recorded by scratch, parse and root
//
//	scratch.Release() // drops buf from all three
//	// or
//	scratch.Commit()  // scratch forgets buf; parse and root keep it
//
// [Arena.Release] frees everything the arena still holds in one step.
// [Arena.Commit] hands ownership of everything to the parent.
//
// # Lists
//
// [List] is a growable slice whose backing array is tracked by an
// [Allocator]. Growth frees the old backing array and records the new one,
// so a list always accounts for exactly one allocation.
//
// # Thread Safety
//
// Arenas are not safe for concurrent use. A parse owns its arenas for the
// duration of the call.
package arena
