package parse

import "github.com/ardnew/combin/arena"

// Parsed couples a value with the arena it was allocated from.
//
// A Parsed must be released exactly once. Reading or releasing it again
// afterward panics with [ErrReleased].
type Parsed[V any] struct {
	arena *arena.Arena
	value V
}

// Value returns the parsed value. It remains valid until [Parsed.Release].
func (p *Parsed[V]) Value() V {
	if p.arena == nil {
		panic(ErrReleased)
	}

	return p.value
}

// Release frees the arena and everything allocated in it.
func (p *Parsed[V]) Release() {
	if p.arena == nil {
		panic(ErrReleased)
	}

	p.arena.Release()

	var zero V

	p.arena, p.value = nil, zero
}
