package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/linkmigrate/internal/config"
	"git.home.luguber.info/inful/linkmigrate/internal/foundation/errors"
	"git.home.luguber.info/inful/linkmigrate/internal/version"
)

// Global carries the process streams and the logger shared by subcommands.
type Global struct {
	Logger *slog.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (optional)" default:"linkmigrate.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Correct CorrectCmd `cmd:"" help:"Correct link paths in a markdown document read from stdin"`
	Scan    ScanCmd    `cmd:"" help:"List and classify the links of a markdown document read from stdin"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(g.Stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

// loadConfig loads the configuration named by --config, falling back to defaults
// when the file does not exist, and reconfigures the logger from it.
func loadConfig(g *Global, root *CLI) (*config.Config, error) {
	cfg, found, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return nil, errors.ConfigError("failed to load configuration").
			WithCause(err).
			WithContext("path", root.Config).
			Build()
	}

	g.Logger = newLogger(g.Stderr, cfg.Logging, root.Verbose)
	if found {
		g.Logger.Debug("Loaded configuration", slog.String("path", root.Config))
	} else {
		g.Logger.Debug("No configuration file, using defaults", slog.String("path", root.Config))
	}
	return cfg, nil
}

func newLogger(w io.Writer, lc config.LoggingConfig, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lc.SlogLevel()}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if config.NormalizeLogFormat(string(lc.Format)) == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// exitCode is raised through kong.Exit so --help and --version terminate the
// run without terminating the process.
type exitCode int

// Execute parses args, runs the selected command and returns the process exit status.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	g := &Global{
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("linkmigrate"),
		kong.Description("Rewrite stale relative link paths in markdown documents."),
		kong.Vars{"version": version.Version},
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
		kong.Bind(g),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "linkmigrate: %v\n", err)
		return errors.ExitInternal
	}

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	kctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "linkmigrate: error: %v\n", err)
		return errors.ExitUsage
	}

	if err := kctx.Run(g, &cli); err != nil {
		return errors.NewCLIErrorAdapterTo(cli.Verbose, g.Logger, stderr).Handle(err)
	}
	return errors.ExitOK
}
