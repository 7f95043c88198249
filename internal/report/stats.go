package report

import (
	"fmt"
	"io"

	"git.home.luguber.info/inful/linkmigrate/internal/correction"
)

// WriteStats writes the human-readable statistics block for one document.
// When the capability was never called only a single line is written.
func WriteStats(w io.Writer, file string, stats correction.Stats) error {
	if !stats.LLMInvoked {
		_, err := fmt.Fprintf(w, "No links to process in %s\n", file)
		return err
	}

	lines := []string{
		fmt.Sprintf("Link correction statistics for %s:", file),
		fmt.Sprintf("  Total links: %d", stats.TotalLinks),
		fmt.Sprintf("  Processable links: %d", stats.ProcessableLinks),
		fmt.Sprintf("  Corrected links: %d", stats.CorrectedLinks),
		fmt.Sprintf("  New links: %d", stats.NewLinks),
		fmt.Sprintf("  Skipped links: %d", stats.SkippedLinks),
	}
	if stats.Fallback {
		lines = append(lines, "  Correction unavailable: original content passed through")
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
