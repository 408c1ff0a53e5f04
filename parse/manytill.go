package parse

import (
	"log/slog"

	"github.com/ardnew/combin/arena"
)

// ManyTillParser collects body matches until a terminator matches.
type ManyTillParser[T, U any] struct {
	body Parser[T]
	term Parser[U]
}

// ManyTill returns a parser that repeatedly probes term and, when term
// misses, parses body.
//
// The terminator is always probed first, so a body that could also match a
// prefix of the terminator cannot run past it. When term matches, its value
// is discarded (its input stays consumed) and the collected body values are
// returned, possibly none. When body misses after at least one match, the
// attempt fails with [ErrPartiallyConsumed]; when it misses immediately, the
// attempt is a clean miss.
func ManyTill[T, U any](body Parser[T], term Parser[U]) *ManyTillParser[T, U] {
	return &ManyTillParser[T, U]{body: body, term: term}
}

// AttemptLeaky implements [Parser]. The returned slice is allocated from
// alloc; it is freed again if the attempt fails.
func (m *ManyTillParser[T, U]) AttemptLeaky(
	alloc arena.Allocator,
	src Source,
) ([]T, bool, error) {
	list := arena.NewList[T](alloc, 0)

	for {
		_, done, err := m.term.AttemptLeaky(alloc, src)
		if err != nil {
			list.Free()

			return nil, false, err
		}

		if done {
			return list.Items(), true, nil
		}

		v, ok, err := m.body.AttemptLeaky(alloc, src)
		if err != nil {
			list.Free()

			return nil, false, err
		}

		if !ok {
			n := list.Len()
			list.Free()

			if n == 0 {
				return nil, false, nil
			}

			return nil, false, ErrPartiallyConsumed.With(slog.Int("count", n))
		}

		list.Append(v)
	}
}
