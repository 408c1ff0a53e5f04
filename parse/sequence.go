package parse

import (
	"log/slog"

	"github.com/ardnew/combin/arena"
)

// The sequence family is specialised by arity so that every slot of the
// result keeps the static type of the parser that produced it.
//
// A sequence never misses cleanly: once any element misses, the earlier
// elements have consumed input, so the whole sequence fails with
// [ErrPartiallyConsumed]. Wrap it in [Backtrack] to try it as an
// alternative.

// Tuple2 is the result of [Seq2].
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 is the result of [Seq3].
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple4 is the result of [Seq4].
type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Tuple5 is the result of [Seq5].
type Tuple5[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

// element runs the i-th element of a sequence, converting a miss into
// [ErrPartiallyConsumed].
func element[V any](
	p Parser[V],
	i int,
	alloc arena.Allocator,
	src Source,
) (V, error) {
	v, ok, err := p.AttemptLeaky(alloc, src)
	if err != nil {
		return v, err
	}

	if !ok {
		return v, ErrPartiallyConsumed.With(slog.Int("element", i))
	}

	return v, nil
}

// Sequence2 parses two elements in order.
type Sequence2[A, B any] struct {
	a Parser[A]
	b Parser[B]
}

// Seq2 returns a parser matching a then b.
func Seq2[A, B any](a Parser[A], b Parser[B]) *Sequence2[A, B] {
	return &Sequence2[A, B]{a: a, b: b}
}

// AttemptLeaky implements [Parser].
func (s *Sequence2[A, B]) AttemptLeaky(
	alloc arena.Allocator,
	src Source,
) (t Tuple2[A, B], ok bool, err error) {
	if t.First, err = element(s.a, 0, alloc, src); err != nil {
		return t, false, err
	}

	if t.Second, err = element(s.b, 1, alloc, src); err != nil {
		return t, false, err
	}

	return t, true, nil
}

// Sequence3 parses three elements in order.
type Sequence3[A, B, C any] struct {
	a Parser[A]
	b Parser[B]
	c Parser[C]
}

// Seq3 returns a parser matching a, b, then c.
func Seq3[A, B, C any](
	a Parser[A],
	b Parser[B],
	c Parser[C],
) *Sequence3[A, B, C] {
	return &Sequence3[A, B, C]{a: a, b: b, c: c}
}

// AttemptLeaky implements [Parser].
func (s *Sequence3[A, B, C]) AttemptLeaky(
	alloc arena.Allocator,
	src Source,
) (t Tuple3[A, B, C], ok bool, err error) {
	if t.First, err = element(s.a, 0, alloc, src); err != nil {
		return t, false, err
	}

	if t.Second, err = element(s.b, 1, alloc, src); err != nil {
		return t, false, err
	}

	if t.Third, err = element(s.c, 2, alloc, src); err != nil {
		return t, false, err
	}

	return t, true, nil
}

// Sequence4 parses four elements in order.
type Sequence4[A, B, C, D any] struct {
	a Parser[A]
	b Parser[B]
	c Parser[C]
	d Parser[D]
}

// Seq4 returns a parser matching a, b, c, then d.
func Seq4[A, B, C, D any](
	a Parser[A],
	b Parser[B],
	c Parser[C],
	d Parser[D],
) *Sequence4[A, B, C, D] {
	return &Sequence4[A, B, C, D]{a: a, b: b, c: c, d: d}
}

// AttemptLeaky implements [Parser].
func (s *Sequence4[A, B, C, D]) AttemptLeaky(
	alloc arena.Allocator,
	src Source,
) (t Tuple4[A, B, C, D], ok bool, err error) {
	if t.First, err = element(s.a, 0, alloc, src); err != nil {
		return t, false, err
	}

	if t.Second, err = element(s.b, 1, alloc, src); err != nil {
		return t, false, err
	}

	if t.Third, err = element(s.c, 2, alloc, src); err != nil {
		return t, false, err
	}

	if t.Fourth, err = element(s.d, 3, alloc, src); err != nil {
		return t, false, err
	}

	return t, true, nil
}

// Sequence5 parses five elements in order.
type Sequence5[A, B, C, D, E any] struct {
	a Parser[A]
	b Parser[B]
	c Parser[C]
	d Parser[D]
	e Parser[E]
}

// Seq5 returns a parser matching a, b, c, d, then e.
func Seq5[A, B, C, D, E any](
	a Parser[A],
	b Parser[B],
	c Parser[C],
	d Parser[D],
	e Parser[E],
) *Sequence5[A, B, C, D, E] {
	return &Sequence5[A, B, C, D, E]{a: a, b: b, c: c, d: d, e: e}
}

// AttemptLeaky implements [Parser].
func (s *Sequence5[A, B, C, D, E]) AttemptLeaky(
	alloc arena.Allocator,
	src Source,
) (t Tuple5[A, B, C, D, E], ok bool, err error) {
	if t.First, err = element(s.a, 0, alloc, src); err != nil {
		return t, false, err
	}

	if t.Second, err = element(s.b, 1, alloc, src); err != nil {
		return t, false, err
	}

	if t.Third, err = element(s.c, 2, alloc, src); err != nil {
		return t, false, err
	}

	if t.Fourth, err = element(s.d, 3, alloc, src); err != nil {
		return t, false, err
	}

	if t.Fifth, err = element(s.e, 4, alloc, src); err != nil {
		return t, false, err
	}

	return t, true, nil
}
