package parse

import (
	"errors"
	"io"

	"github.com/ardnew/combin/arena"
)

// BacktrackParser restores the cursor when its child partially matches.
type BacktrackParser[V any] struct {
	p Parser[V]
}

// Backtrack wraps p so that [ErrPartiallyConsumed] becomes a miss.
//
// The child runs in a scratch arena on the caller's allocator. On a partial
// match the scratch arena is released and the cursor is restored to where
// the attempt began. Every other error is returned unchanged. A match
// commits the scratch arena to the caller's allocator.
func Backtrack[V any](p Parser[V]) *BacktrackParser[V] {
	return &BacktrackParser[V]{p: p}
}

// AttemptLeaky implements [Parser].
func (b *BacktrackParser[V]) AttemptLeaky(
	alloc arena.Allocator,
	src Source,
) (V, bool, error) {
	var zero V

	start, err := position(src)
	if err != nil {
		return zero, false, err
	}

	scratch := arena.New(alloc)

	v, ok, err := b.p.AttemptLeaky(scratch, src)

	switch {
	case errors.Is(err, ErrPartiallyConsumed):
		scratch.Release()

		_, err = src.Seek(start, io.SeekStart)

		return zero, false, err

	case err != nil, !ok:
		scratch.Release()

		return zero, false, err
	}

	scratch.Commit()

	return v, true, nil
}
