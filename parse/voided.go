package parse

import "github.com/ardnew/combin/arena"

// VoidedParser reports whether its child matched, discarding the value.
type VoidedParser[V any] struct {
	p Parser[V]
}

// Voided wraps p so that it yields struct{} on a match. Misses and errors,
// including [ErrPartiallyConsumed], pass through unchanged.
func Voided[V any](p Parser[V]) *VoidedParser[V] {
	return &VoidedParser[V]{p: p}
}

// AttemptLeaky implements [Parser].
func (v *VoidedParser[V]) AttemptLeaky(
	alloc arena.Allocator,
	src Source,
) (struct{}, bool, error) {
	_, ok, err := v.p.AttemptLeaky(alloc, src)

	return struct{}{}, ok, err
}
