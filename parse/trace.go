package parse

import (
	"log/slog"

	"github.com/ardnew/combin/arena"
	"github.com/ardnew/combin/log"
)

// TraceParser logs every attempt of its child.
type TraceParser[V any] struct {
	name   string
	logger log.Logger
	p      Parser[V]
}

// Trace wraps p so that each attempt is logged at [log.LevelTrace] with its
// outcome and the cursor offsets before and after. The child's result is
// returned unchanged.
func Trace[V any](name string, logger log.Logger, p Parser[V]) *TraceParser[V] {
	return &TraceParser[V]{name: name, logger: logger, p: p}
}

// AttemptLeaky implements [Parser].
func (t *TraceParser[V]) AttemptLeaky(
	alloc arena.Allocator,
	src Source,
) (V, bool, error) {
	if !t.logger.Enabled(log.DefaultContextProvider(), log.LevelTrace) {
		return t.p.AttemptLeaky(alloc, src)
	}

	attrs := []slog.Attr{slog.String("parser", t.name)}
	attrs = offsetAttr(attrs, "start", src)

	v, ok, err := t.p.AttemptLeaky(alloc, src)

	attrs = offsetAttr(attrs, "end", src)

	switch {
	case err != nil:
		attrs = append(attrs, slog.String("outcome", "error"), slog.Any("error", err))
	case ok:
		attrs = append(attrs, slog.String("outcome", "match"))
	default:
		attrs = append(attrs, slog.String("outcome", "miss"))
	}

	t.logger.Trace("attempt", attrs...)

	return v, ok, err
}

// offsetAttr appends the cursor offset of src under key, or the error from
// querying it under key_error.
func offsetAttr(attrs []slog.Attr, key string, src Source) []slog.Attr {
	pos, err := position(src)
	if err != nil {
		return append(attrs, slog.String(key+"_error", err.Error()))
	}

	return append(attrs, slog.Int64(key, pos))
}
