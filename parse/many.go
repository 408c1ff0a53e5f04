package parse

import "github.com/ardnew/combin/arena"

// ManyParser collects zero or more matches.
type ManyParser[V any] struct {
	p     Parser[V]
	atMin int
}

// Many returns a parser that applies p until it misses and yields every
// value collected, possibly none. It fails only when p returns an error.
//
// Repetition stops only on a miss or an error, so p must consume input when
// it matches; Many(End()) never returns.
func Many[V any](p Parser[V]) *ManyParser[V] {
	return &ManyParser[V]{p: p}
}

// Some is like [Many] but requires p to match at least once. A miss on the
// first attempt is a miss, not an empty result.
func Some[V any](p Parser[V]) *ManyParser[V] {
	return &ManyParser[V]{p: p, atMin: 1}
}

// AttemptLeaky implements [Parser]. The returned slice is allocated from
// alloc.
func (m *ManyParser[V]) AttemptLeaky(
	alloc arena.Allocator,
	src Source,
) ([]V, bool, error) {
	list := arena.NewList[V](alloc, 0)

	for {
		v, ok, err := m.p.AttemptLeaky(alloc, src)
		if err != nil {
			list.Free()

			return nil, false, err
		}

		if !ok {
			break
		}

		list.Append(v)
	}

	if list.Len() < m.atMin {
		list.Free()

		return nil, false, nil
	}

	return list.Items(), true, nil
}
