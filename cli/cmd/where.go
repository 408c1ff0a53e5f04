package cmd

import (
	"context"

	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/combin/parse"
)

// Where prints the longest leading run of bytes satisfying a predicate.
type Where struct {
	Expr   string `arg:""      help:"Predicate over c (byte value) and ch (one-byte string)"`
	Source string `default:"-" help:"Source input file or '-' for stdin" short:"f"`
}

// Run executes the where command.
func (w *Where) Run(ctx context.Context) error {
	program, err := compilePredicate(w.Expr)
	if err != nil {
		return err
	}

	src, closer, err := openSource(w.Source)
	if err != nil {
		return err
	}
	defer closer()

	p := whereParser(settingsFrom(ctx), program)

	return run(ctx, "where", p, src, func(v []byte) result {
		return match{Match: string(v), Length: len(v)}
	})
}

// whereParser matches the leading run of bytes accepted by program.
//
// The first alternative consumes the whole input when every byte matches.
// Otherwise it fails partway and is rewound, and Many stops at the first
// rejected byte, which therefore exists before end of input.
func whereParser(s Settings, program *vm.Program) parse.Parser[[]byte] {
	char := traced[byte](s, "byte", parse.CharWhere(matchByte, program))

	return parse.OneOf[[]byte](
		parse.Backtrack(parse.ManyTill(char, parse.End())),
		parse.Many(char),
	)
}
