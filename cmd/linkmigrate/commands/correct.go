package commands

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/linkmigrate/internal/config"
	"git.home.luguber.info/inful/linkmigrate/internal/correction"
	"git.home.luguber.info/inful/linkmigrate/internal/corrector"
	"git.home.luguber.info/inful/linkmigrate/internal/foundation/errors"
	"git.home.luguber.info/inful/linkmigrate/internal/logfields"
	"git.home.luguber.info/inful/linkmigrate/internal/markdown"
	"git.home.luguber.info/inful/linkmigrate/internal/metrics"
	"git.home.luguber.info/inful/linkmigrate/internal/report"
)

// CorrectCmd implements the 'correct' command.
type CorrectCmd struct {
	File      string        `short:"f" required:"" help:"Path of the document, used as context only (content is read from stdin)"`
	StatsOnly bool          `name:"stats-only" help:"Print statistics without the document"`
	DryRun    bool          `name:"dry-run" help:"Analysis run; output is identical, the flag is recorded in logs"`
	Timeout   time.Duration `help:"Correction call timeout (overrides config)"`
	Backend   string        `short:"b" help:"Correction backend: command, nats or mapping (overrides config)"`
	SkipCode  bool          `name:"skip-code" help:"Ignore links inside code blocks and code spans"`
	Root      string        `help:"Working root for relative file context (defaults to the current directory)"`
}

func (c *CorrectCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	if err := c.applyOverrides(cfg); err != nil {
		return err
	}

	content, err := readDocument(ctx, g.Stdin)
	if err != nil {
		return err
	}

	logger := g.Logger.With(logfields.RunID(uuid.NewString()), logfields.File(c.File))
	if c.DryRun {
		logger.Debug("Dry run requested")
	}

	extract := markdown.Options{SkipCode: cfg.Links.SkipCode}
	rules := cfg.Links.Rules()

	backend, err := corrector.New(cfg.Correction, rules, extract)
	if err != nil {
		return errors.ConfigError("failed to create correction backend").WithCause(err).Build()
	}
	defer func() {
		if cerr := backend.Close(); cerr != nil {
			logger.Warn("Failed to close correction backend", logfields.Error(cerr))
		}
	}()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if cfg.Metrics.Textfile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	opts := []correction.Option{
		correction.WithTimeout(cfg.Correction.TimeoutDuration()),
		correction.WithExtractOptions(extract),
		correction.WithLogger(logger),
		correction.WithRecorder(recorder),
	}
	if cfg.Correction.Root != "" {
		rootDir, err := filepath.Abs(cfg.Correction.Root)
		if err != nil {
			return errors.FileSystemError("failed to resolve root directory").
				WithCause(err).
				WithContext("root", cfg.Correction.Root).
				Build()
		}
		opts = append(opts, correction.WithRoot(rootDir))
	}

	result := correction.NewOrchestrator(backend, rules, opts...).Process(ctx, content, c.File)

	if ctx.Err() != nil {
		return errors.CanceledError("correction interrupted").WithCause(ctx.Err()).Build()
	}

	if err := report.WriteStats(g.Stderr, c.File, result.Stats); err != nil {
		return errors.FileSystemError("failed to write statistics").WithCause(err).Build()
	}
	if !c.StatsOnly {
		if _, err := io.WriteString(g.Stdout, result.Content); err != nil {
			return errors.FileSystemError("failed to write document").WithCause(err).Build()
		}
	}

	if prom != nil {
		if err := prom.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Warn("Failed to write metrics textfile", "path", cfg.Metrics.Textfile, logfields.Error(err))
		}
	}
	return nil
}

// applyOverrides lets flags take precedence over configuration values.
func (c *CorrectCmd) applyOverrides(cfg *config.Config) error {
	if c.Backend != "" {
		backend, err := config.ParseBackend(c.Backend)
		if err != nil {
			return errors.ValidationError("invalid --backend").WithCause(err).Build()
		}
		cfg.Correction.Backend = backend
	}
	if c.Timeout > 0 {
		cfg.Correction.Timeout = c.Timeout.String()
	}
	if c.Root != "" {
		cfg.Correction.Root = c.Root
	}
	if c.SkipCode {
		cfg.Links.SkipCode = true
	}
	if err := cfg.Validate(); err != nil {
		return errors.ValidationError("invalid command line overrides").WithCause(err).Build()
	}
	return nil
}

type readResult struct {
	data []byte
	err  error
}

// readDocument reads all of r and rejects blank input. It returns as soon as
// ctx is done; the pending read is left to finish on its own.
func readDocument(ctx context.Context, r io.Reader) (string, error) {
	done := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(r)
		done <- readResult{data: data, err: err}
	}()

	var res readResult
	select {
	case res = <-done:
	case <-ctx.Done():
		return "", errors.CanceledError("interrupted while reading stdin").WithCause(ctx.Err()).Build()
	}

	if res.err != nil {
		return "", errors.WrapError(res.err, errors.CategoryInput, "failed to read stdin").Build()
	}
	content := string(res.data)
	if strings.TrimSpace(content) == "" {
		return "", errors.InputError("no content provided on stdin").Build()
	}
	return content, nil
}
