package commands

import (
	"context"

	"git.home.luguber.info/inful/linkmigrate/internal/foundation/errors"
	"git.home.luguber.info/inful/linkmigrate/internal/markdown"
	"git.home.luguber.info/inful/linkmigrate/internal/report"
)

// ScanCmd implements the 'scan' command.
type ScanCmd struct {
	File     string `short:"f" help:"Path of the document, used for display only" default:"stdin"`
	Format   string `help:"Output format" enum:"text,json" default:"text"`
	SkipCode bool   `name:"skip-code" help:"Ignore links inside code blocks and code spans"`
}

func (s *ScanCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}

	content, err := readDocument(ctx, g.Stdin)
	if err != nil {
		return err
	}

	opts := markdown.Options{SkipCode: s.SkipCode || cfg.Links.SkipCode}
	listing := report.NewListing(s.File, markdown.ExtractWithOptions(content, opts), cfg.Links.Rules())

	if err := report.NewFormatter(s.Format).Format(g.Stdout, listing); err != nil {
		return errors.FileSystemError("failed to write link listing").WithCause(err).Build()
	}
	return nil
}
