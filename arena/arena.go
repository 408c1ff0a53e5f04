package arena

import (
	"errors"
	"unsafe"
)

// ErrInvalidFree is the panic value used when memory not recorded by an
// arena (or already freed) is passed to [Arena.Free].
var ErrInvalidFree = errors.New("arena: free of untracked memory")

// Allocator hands out tracked memory.
//
// Only types in this package implement Allocator.
type Allocator interface {
	// Alloc returns a zeroed buffer of n bytes. Alloc(0) returns nil.
	Alloc(n int) []byte
	// Free releases a buffer returned by Alloc.
	Free(buf []byte)
	// Stats reports the memory currently held.
	Stats() Stats

	acquire(key any, size int)
	release(key any) bool
}

// Stats describes outstanding allocations.
type Stats struct {
	Allocs int // live allocations
	Bytes  int // total size of live allocations
}

// Arena is a region of tracked allocations released together.
type Arena struct {
	parent Allocator
	live   map[any]int
	stats  Stats
}

// New returns an empty arena. If parent is non-nil, every allocation made
// through the arena is also recorded by parent.
func New(parent Allocator) *Arena {
	return &Arena{
		parent: parent,
		live:   make(map[any]int),
	}
}

// Alloc implements [Allocator].
func (a *Arena) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}

	buf := make([]byte, n)
	a.acquire(keyOf(buf), n)

	return buf
}

// Free implements [Allocator]. It panics with [ErrInvalidFree] if buf was
// not allocated from a or was already freed.
func (a *Arena) Free(buf []byte) {
	key := keyOf(buf)
	if key == nil {
		return
	}

	if !a.release(key) {
		panic(ErrInvalidFree)
	}
}

// Stats implements [Allocator].
func (a *Arena) Stats() Stats { return a.stats }

// Release frees every allocation still held by a, including from its parent
// chain. The arena is empty afterward and may be reused.
func (a *Arena) Release() {
	for key := range a.live {
		if a.parent != nil {
			a.parent.release(key)
		}
	}

	a.reset()
}

// Commit transfers ownership of every allocation held by a to its parent.
// The parent already records them, so a simply forgets them.
func (a *Arena) Commit() {
	a.reset()
}

func (a *Arena) reset() {
	clear(a.live)
	a.stats = Stats{}
}

func (a *Arena) acquire(key any, size int) {
	a.live[key] = size
	a.stats.Allocs++
	a.stats.Bytes += size

	if a.parent != nil {
		a.parent.acquire(key, size)
	}
}

func (a *Arena) release(key any) bool {
	size, ok := a.live[key]
	if !ok {
		return false
	}

	delete(a.live, key)
	a.stats.Allocs--
	a.stats.Bytes -= size

	if a.parent != nil {
		a.parent.release(key)
	}

	return true
}

// keyOf identifies a buffer by the address of its first byte. Buffers from
// Alloc are never empty, so distinct live buffers have distinct keys.
func keyOf(buf []byte) any {
	if cap(buf) == 0 {
		return nil
	}

	return &buf[:1][0]
}

func sizeOf[T any](n int) int {
	var zero T

	return n * int(unsafe.Sizeof(zero))
}
