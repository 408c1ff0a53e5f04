package parse

import (
	"io"

	"github.com/ardnew/combin/arena"
)

// Source is a seekable byte source. Backtracking seeks backward relative to
// the current position, so the source must support negative offsets with
// [io.SeekCurrent].
type Source = io.ReadSeeker

// Parser is the capability shared by all primitives and combinators.
type Parser[V any] interface {
	// AttemptLeaky tries to parse a V from src, allocating from alloc.
	//
	// A match returns (v, true, nil). A miss returns ok false with a nil
	// error and leaves the cursor where it was. Allocations made by a
	// discarded attempt may remain in alloc until it is released.
	AttemptLeaky(alloc arena.Allocator, src Source) (v V, ok bool, err error)
}

// Attempt runs p in a new arena created on alloc.
//
// A match returns a [Parsed] owning the value and the arena. A miss returns
// a nil result and a nil error. The arena is released on a miss or error.
func Attempt[V any](
	p Parser[V],
	alloc arena.Allocator,
	src Source,
) (*Parsed[V], error) {
	a := arena.New(alloc)

	v, ok, err := p.AttemptLeaky(a, src)
	if err != nil || !ok {
		a.Release()

		return nil, err
	}

	return &Parsed[V]{arena: a, value: v}, nil
}

// AttemptOrFail is like [Attempt] but reports a miss as [ErrParseFailed].
func AttemptOrFail[V any](
	p Parser[V],
	alloc arena.Allocator,
	src Source,
) (*Parsed[V], error) {
	res, err := Attempt(p, alloc, src)
	if err != nil {
		return nil, err
	}

	if res == nil {
		return nil, ErrParseFailed
	}

	return res, nil
}

// position returns the current offset of src.
func position(src Source) (int64, error) {
	return src.Seek(0, io.SeekCurrent)
}

// rewind moves the cursor of src back by n bytes.
func rewind(src Source, n int) error {
	if n == 0 {
		return nil
	}

	_, err := src.Seek(-int64(n), io.SeekCurrent)

	return err
}
