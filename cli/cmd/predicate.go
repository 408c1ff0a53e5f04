package cmd

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// byteEnv is the expression environment for a single input byte.
type byteEnv struct {
	C  int    `expr:"c"`  // byte value, 0-255
	Ch string `expr:"ch"` // the byte as a one-byte string
}

// compilePredicate compiles an expr-lang boolean expression over [byteEnv].
func compilePredicate(source string) (*vm.Program, error) {
	program, err := expr.Compile(source, expr.Env(byteEnv{}), expr.AsBool())
	if err != nil {
		return nil, ErrPredicate.Wrap(err).With(slog.String("source", source))
	}

	return program, nil
}

// matchByte evaluates program for b. Evaluation errors reject the byte.
func matchByte(program *vm.Program, b byte) bool {
	out, err := expr.Run(program, byteEnv{C: int(b), Ch: string([]byte{b})})
	if err != nil {
		return false
	}

	ok, _ := out.(bool)

	return ok
}
