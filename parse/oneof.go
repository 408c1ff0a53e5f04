package parse

import "github.com/ardnew/combin/arena"

// OneOfParser tries alternatives in order.
type OneOfParser[V any] struct {
	alts []Parser[V]
}

// OneOf returns a parser yielding the value of the first alternative that
// matches. Later alternatives are not tried, and there is no longest-match
// resolution.
//
// An error from an alternative, [ErrPartiallyConsumed] included, is returned
// immediately without trying the rest. Wrap an alternative in [Backtrack] to
// have a partial match count as a miss.
func OneOf[V any](alts ...Parser[V]) *OneOfParser[V] {
	return &OneOfParser[V]{alts: alts}
}

// AttemptLeaky implements [Parser].
func (o *OneOfParser[V]) AttemptLeaky(
	alloc arena.Allocator,
	src Source,
) (V, bool, error) {
	var zero V

	for _, alt := range o.alts {
		v, ok, err := alt.AttemptLeaky(alloc, src)
		if err != nil {
			return zero, false, err
		}

		if ok {
			return v, true, nil
		}
	}

	return zero, false, nil
}
