package cmd

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/ardnew/combin/log"
	"github.com/ardnew/combin/parse"
)

// Pairs prints the key/value pairs found on the lines of a source.
// Lines without a separator are skipped.
type Pairs struct {
	Sep    string `default:"="  help:"Key/value separator" short:"s"`
	Source string `default:"-" help:"Source input file or '-' for stdin" short:"f"`
}

// Run executes the pairs command.
func (p *Pairs) Run(ctx context.Context) error {
	sep := unescape(p.Sep)
	if sep == "" || bytes.ContainsRune([]byte(sep), '\n') {
		return ErrInvalidDelim.With(slog.String("sep", p.Sep))
	}

	data, err := loadSource(p.Source)
	if err != nil {
		return err
	}

	// Every line must end in a newline so that no byte read hits end of input.
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	lines := bytes.Count(data, []byte{'\n'})

	return run(ctx, "pairs", pairsParser(settingsFrom(ctx), []byte(sep)),
		bytes.NewReader(data),
		func(v []pair) result {
			log.DebugContext(ctx, "skipped lines",
				slog.Int("count", lines-len(v)),
			)

			return pairList(v)
		},
	)
}

// pairsParser matches newline-terminated lines up to end of input, keeping
// the lines of the form key<sep>value.
func pairsParser(s Settings, sep []byte) parse.Parser[[]pair] {
	newline := parse.Literal([]byte{'\n'})

	// The key runs up to the first full separator on the line.
	key := parse.ManyTill(parse.CharWhere(notByte, byte('\n')), parse.Literal(sep))

	entry := parse.Map(
		parse.Backtrack(parse.Seq2(key, parse.ManyTill(parse.AnyChar(), newline))),
		func(t parse.Tuple2[[]byte, []byte]) pair {
			return pair{
				Key:   string(bytes.TrimSpace(t.First)),
				Value: string(bytes.TrimSpace(t.Second)),
			}
		},
	)

	skip := parse.Map(
		parse.ManyTill(parse.AnyChar(), newline),
		func([]byte) pair { return pair{} },
	)

	line := traced[pair](s, "line", parse.OneOf[pair](entry, skip))

	return parse.Map(
		parse.ManyTill(line, parse.End()),
		func(all []pair) []pair {
			kept := make([]pair, 0, len(all))
			for _, kv := range all {
				if kv.Key != "" {
					kept = append(kept, kv)
				}
			}

			return kept
		},
	)
}

// notByte accepts any byte other than c.
func notByte(c, b byte) bool { return b != c }
