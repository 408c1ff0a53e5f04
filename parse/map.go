package parse

import "github.com/ardnew/combin/arena"

// MapParser transforms the value of its child.
type MapParser[T, U any] struct {
	p  Parser[T]
	fn func(T) U
}

// Map returns a parser yielding fn(v) for every value v matched by p.
// Misses and errors pass through unchanged.
func Map[T, U any](p Parser[T], fn func(T) U) *MapParser[T, U] {
	return &MapParser[T, U]{p: p, fn: fn}
}

// AttemptLeaky implements [Parser].
func (m *MapParser[T, U]) AttemptLeaky(
	alloc arena.Allocator,
	src Source,
) (U, bool, error) {
	v, ok, err := m.p.AttemptLeaky(alloc, src)
	if err != nil || !ok {
		var zero U

		return zero, false, err
	}

	return m.fn(v), true, nil
}
