package parse

import (
	"errors"
	"io"

	"github.com/ardnew/combin/arena"
)

// readByte reads exactly one byte. End of input is reported as [io.EOF].
func readByte(src Source) (byte, error) {
	var b [1]byte

	_, err := io.ReadFull(src, b[:])

	return b[0], err
}

// AnyCharParser matches any single byte.
type AnyCharParser struct{}

// AnyChar returns a parser that reads one byte unconditionally. It fails
// only when the read fails, including with [io.EOF] at end of input.
func AnyChar() *AnyCharParser { return &AnyCharParser{} }

// AttemptLeaky implements [Parser].
func (*AnyCharParser) AttemptLeaky(
	_ arena.Allocator,
	src Source,
) (byte, bool, error) {
	b, err := readByte(src)
	if err != nil {
		return 0, false, err
	}

	return b, true, nil
}

// CharParser matches one specific byte.
type CharParser struct {
	want byte
}

// Char returns a parser matching the byte want. A different byte is put
// back and reported as a miss.
func Char(want byte) *CharParser { return &CharParser{want: want} }

// AttemptLeaky implements [Parser].
func (c *CharParser) AttemptLeaky(
	_ arena.Allocator,
	src Source,
) (byte, bool, error) {
	b, err := readByte(src)
	if err != nil {
		return 0, false, err
	}

	if b != c.want {
		return 0, false, rewind(src, 1)
	}

	return b, true, nil
}

// CharWhereParser matches one byte accepted by a predicate.
type CharWhereParser[C any] struct {
	pred func(C, byte) bool
	ctx  C
}

// CharWhere returns a parser matching any byte for which pred(ctx, b) is
// true. A rejected byte is put back and reported as a miss.
func CharWhere[C any](pred func(C, byte) bool, ctx C) *CharWhereParser[C] {
	return &CharWhereParser[C]{pred: pred, ctx: ctx}
}

// AttemptLeaky implements [Parser].
func (c *CharWhereParser[C]) AttemptLeaky(
	_ arena.Allocator,
	src Source,
) (byte, bool, error) {
	b, err := readByte(src)
	if err != nil {
		return 0, false, err
	}

	if !c.pred(c.ctx, b) {
		return 0, false, rewind(src, 1)
	}

	return b, true, nil
}

// EndParser matches the end of input.
type EndParser struct{}

// End returns a parser that matches only when no input remains. It never
// consumes input.
func End() *EndParser { return &EndParser{} }

// AttemptLeaky implements [Parser].
func (*EndParser) AttemptLeaky(
	_ arena.Allocator,
	src Source,
) (struct{}, bool, error) {
	_, err := readByte(src)

	switch {
	case errors.Is(err, io.EOF):
		return struct{}{}, true, nil
	case err != nil:
		return struct{}{}, false, err
	}

	return struct{}{}, false, rewind(src, 1)
}
