package corrector

import (
	"context"

	"git.home.luguber.info/inful/linkmigrate/internal/config"
	"git.home.luguber.info/inful/linkmigrate/internal/filecontext"
	"git.home.luguber.info/inful/linkmigrate/internal/linkpolicy"
	"git.home.luguber.info/inful/linkmigrate/internal/markdown"
)

// Mapping rewrites eligible link targets using a fixed table. Skipped links
// are left alone even when their target appears in the table.
type Mapping struct {
	paths   map[string]string
	rules   linkpolicy.Rules
	extract markdown.Options
}

// NewMapping returns a Mapping backend. The table is copied.
func NewMapping(paths map[string]string, rules linkpolicy.Rules, extract markdown.Options) *Mapping {
	table := make(map[string]string, len(paths))
	for k, v := range paths {
		table[k] = v
	}
	return &Mapping{paths: table, rules: rules, extract: extract}
}

func (m *Mapping) Name() string { return string(config.BackendMapping) }

// Correct returns content with mapped targets replaced in place.
func (m *Mapping) Correct(ctx context.Context, content string, _ filecontext.FileContext) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	_, processable := m.rules.Partition(markdown.ExtractWithOptions(content, m.extract))
	out, _, err := markdown.RewritePaths(content, processable, m.paths)
	if err != nil {
		return "", err
	}
	return out, nil
}

func (m *Mapping) Close() error { return nil }
