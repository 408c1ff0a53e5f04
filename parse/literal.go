package parse

import (
	"bytes"
	"errors"
	"io"

	"github.com/ardnew/combin/arena"
)

// LiteralParser matches an exact byte sequence.
type LiteralParser struct {
	want []byte
}

// Literal returns a parser matching want exactly. The match is atomic: a
// mismatch or short read rewinds whatever was read and reports a miss.
func Literal(want []byte) *LiteralParser {
	return &LiteralParser{want: bytes.Clone(want)}
}

// AttemptLeaky implements [Parser]. A match returns a copy of the literal
// allocated from alloc.
func (l *LiteralParser) AttemptLeaky(
	alloc arena.Allocator,
	src Source,
) ([]byte, bool, error) {
	buf := alloc.Alloc(len(l.want))

	n, err := io.ReadFull(src, buf)
	if err != nil && !errors.Is(err, io.EOF) &&
		!errors.Is(err, io.ErrUnexpectedEOF) {
		alloc.Free(buf)

		return nil, false, err
	}

	if n < len(l.want) || !bytes.Equal(buf, l.want) {
		alloc.Free(buf)

		return nil, false, rewind(src, n)
	}

	return buf, true, nil
}
