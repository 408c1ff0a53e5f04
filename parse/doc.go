// Package parse provides parser combinators over seekable byte sources.
//
// # Overview
//
// A [Parser] reads from a [Source] and produces a typed value. Small
// primitives match bytes and literals; combinators compose parsers into
// sequences, alternatives and repetitions:
//
//	pair := parse.Backtrack(parse.Seq3(
//		parse.Some(parse.CharWhere(isKey, struct{}{})),
//		parse.Char('='),
//		parse.ManyTill(parse.AnyChar(), parse.Literal([]byte("\n"))),
//	))
//
// # Outcomes
//
// Every attempt ends in one of three ways:
//
//   - Match: the value is returned and the cursor sits after the consumed
//     input.
//   - Miss: ok is false and err is nil. The cursor is back where the attempt
//     started, so an alternative may be tried.
//   - Error: I/O and seek errors are returned verbatim. Composite parsers
//     that consumed input before failing return [ErrPartiallyConsumed] and
//     leave the cursor mid-input.
//
// Only [Backtrack] turns [ErrPartiallyConsumed] back into a miss, by seeking
// to the position it recorded before delegating. Wrapping any sub-expression
// in Backtrack changes "must fully match" into "try this".
//
// # Memory
//
// Parsers allocate from an [arena.Allocator]. [Attempt] creates one arena
// for the whole parse tree and hands ownership to the returned [Parsed]
// value; [Parsed.Release] frees all of it in one call:
//
//	root := arena.New(nil)
//
//	res, err := parse.AttemptOrFail(pair, root, strings.NewReader("k=v\n"))
//	if err != nil {
//		return err
//	}
//	defer res.Release()
//
// Parsers discarding a sub-result free it themselves: [Literal] frees its
// buffer on mismatch, [ManyTill] frees its list on failure, and [Backtrack]
// runs its child in a scratch arena released on failure.
//
// # Concurrency
//
// A parse is synchronous and assumes exclusive use of its source and
// allocator. Parsers themselves hold only configuration and may be shared.
package parse
