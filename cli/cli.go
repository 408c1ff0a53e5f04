package cli

import (
	"context"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/combin/cli/cmd"
	"github.com/ardnew/combin/pkg"
)

// CLI is the top-level command-line interface for combin.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Output string `default:"yaml" enum:"yaml,json,text" help:"Set result format."                 short:"o"`
	Trace  bool   `default:"false"                      help:"Log every parser attempt (trace)." negatable:""`

	Init  cmd.Init  `cmd:"" help:"Initialize configuration file"`
	Split cmd.Split `cmd:"" help:"Split input into records at a delimiter"`
	Where cmd.Where `cmd:"" help:"Match the leading bytes satisfying a predicate"`
	Pairs cmd.Pairs `cmd:"" help:"Extract key/value pairs from input lines"`
}

// Run executes the combin CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	configFilePath := configPath()

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		"version":            pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so that parse errors are logged with the
	// requested configuration regardless of flag position.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSettings(ctx, cmd.Settings{
		Output: cmd.Format(cli.Output),
		Trace:  cli.Trace,
		Stdout: os.Stdout,
	})

	// Apply the remaining logger options that have no early hook.
	cli.Log.start(ctx, cli.Trace)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
