package correction

import (
	"git.home.luguber.info/inful/linkmigrate/internal/linkpolicy"
	"git.home.luguber.info/inful/linkmigrate/internal/markdown"
)

// Validator compares a document before and after correction.
type Validator struct {
	rules   linkpolicy.Rules
	extract markdown.Options
}

// NewValidator returns a Validator using rules and extraction options.
func NewValidator(rules linkpolicy.Rules, extract markdown.Options) *Validator {
	return &Validator{rules: rules, extract: extract}
}

// Compare scans both texts independently. Totals describe original; skipped
// links never count as corrected or new.
func (v *Validator) Compare(original, corrected string) Stats {
	before := markdown.ExtractWithOptions(original, v.extract)
	after := markdown.ExtractWithOptions(corrected, v.extract)

	skipped, processable := v.rules.Partition(before)
	beforePaths := v.rules.ProcessablePaths(before)
	afterPaths := v.rules.ProcessablePaths(after)

	return Stats{
		TotalLinks:       len(before),
		SkippedLinks:     len(skipped),
		ProcessableLinks: len(processable),
		CorrectedLinks:   len(beforePaths.Difference(afterPaths)),
		NewLinks:         len(afterPaths.Difference(beforePaths)),
	}
}
