package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/combin/arena"
	"github.com/ardnew/combin/log"
	"github.com/ardnew/combin/parse"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// Format selects how command results are written.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Settings holds the global options shared by all commands.
type Settings struct {
	Output Format
	Trace  bool
	Stdout io.Writer
}

type settingsKey struct{}

// WithSettings returns a new context.Context containing s.
func WithSettings(ctx context.Context, s Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

func settingsFrom(ctx context.Context) Settings {
	s, _ := ctx.Value(settingsKey{}).(Settings)

	if s.Output == "" {
		s.Output = FormatYAML
	}

	if s.Stdout == nil {
		s.Stdout = os.Stdout
	}

	return s
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSource returns a seekable source for path. Regular files are read in
// place. Stdin cannot seek, so it is buffered in memory first.
func openSource(path string) (parse.Source, func() error, error) {
	if path == stdinSource {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, ErrOpenSource.With(slog.String("file", path)).Wrap(err)
		}

		return bytes.NewReader(data), func() error { return nil }, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, ErrOpenSource.With(slog.String("file", path)).Wrap(err)
	}

	return file, file.Close, nil
}

// loadSource reads all of path (or stdin) into memory.
func loadSource(path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if path == stdinSource {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, ErrOpenSource.With(slog.String("file", path)).Wrap(err)
	}

	return data, nil
}

// unescape interprets Go escape sequences such as \t and \n in s. Strings
// that are not valid escapes are returned as is.
func unescape(s string) string {
	u, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return s
	}

	return u
}

// traced wraps p with [parse.Trace] when tracing is enabled.
func traced[V any](s Settings, name string, p parse.Parser[V]) parse.Parser[V] {
	if !s.Trace {
		return p
	}

	return parse.Trace(name, log.Default(), p)
}

// run parses src with p in a fresh arena and writes the rendered result.
// The arena is released before run returns, so render must copy anything it
// keeps out of the parsed value.
func run[V any](
	ctx context.Context,
	name string,
	p parse.Parser[V],
	src parse.Source,
	render func(V) result,
) error {
	s := settingsFrom(ctx)
	root := arena.New(nil)

	res, err := parse.AttemptOrFail(p, root, src)
	if err != nil {
		return ErrParse.With(slog.String("command", name)).Wrap(err)
	}
	defer res.Release()

	stats := root.Stats()
	end, _ := src.Seek(0, io.SeekCurrent)

	log.DebugContext(ctx, "parse complete",
		slog.String("command", name),
		slog.Int64("consumed", end),
		slog.Int("allocs", stats.Allocs),
		slog.Int("bytes", stats.Bytes),
	)

	return write(ctx, s.Stdout, s.Output, render(res.Value()))
}
