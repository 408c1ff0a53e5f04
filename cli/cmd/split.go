package cmd

import (
	"context"

	"github.com/ardnew/combin/parse"
)

// Split prints the records of a source separated by a literal delimiter.
type Split struct {
	Delim  string `arg:""      help:"Record delimiter (Go escapes such as \\t are expanded)"`
	Source string `default:"-" help:"Source input file or '-' for stdin" short:"f"`
}

// Run executes the split command.
func (s *Split) Run(ctx context.Context) error {
	delim := unescape(s.Delim)
	if delim == "" {
		return ErrInvalidDelim
	}

	src, closer, err := openSource(s.Source)
	if err != nil {
		return err
	}
	defer closer()

	p := splitParser(settingsFrom(ctx), []byte(delim))

	return run(ctx, "split", p, src, func(v []string) result {
		return records(v)
	})
}

// splitParser matches every record up to end of input. The final record
// needs no trailing delimiter.
func splitParser(s Settings, delim []byte) parse.Parser[[]string] {
	stop := parse.OneOf[struct{}](
		parse.Voided(parse.Literal(delim)),
		parse.End(),
	)

	field := parse.Map(
		parse.ManyTill(parse.AnyChar(), stop),
		func(b []byte) string { return string(b) },
	)

	return parse.ManyTill(traced[string](s, "record", field), parse.End())
}
