package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID            = "run_id"
	KeyFile             = "file"
	KeyBackend          = "backend"
	KeyOutcome          = "outcome"
	KeyDurationMS       = "duration_ms"
	KeyTimeout          = "timeout"
	KeyLinksTotal       = "links_total"
	KeyLinksSkipped     = "links_skipped"
	KeyLinksProcessable = "links_processable"
	KeyLinksCorrected   = "links_corrected"
	KeyLinksNew         = "links_new"
	KeyError            = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr         { return slog.String(KeyRunID, id) }
func File(path string) slog.Attr        { return slog.String(KeyFile, path) }
func Backend(name string) slog.Attr     { return slog.String(KeyBackend, name) }
func Outcome(o string) slog.Attr        { return slog.String(KeyOutcome, o) }
func Timeout(d time.Duration) slog.Attr { return slog.Duration(KeyTimeout, d) }
func LinksTotal(n int) slog.Attr        { return slog.Int(KeyLinksTotal, n) }
func LinksSkipped(n int) slog.Attr      { return slog.Int(KeyLinksSkipped, n) }
func LinksProcessable(n int) slog.Attr  { return slog.Int(KeyLinksProcessable, n) }
func LinksCorrected(n int) slog.Attr    { return slog.Int(KeyLinksCorrected, n) }
func LinksNew(n int) slog.Attr          { return slog.Int(KeyLinksNew, n) }
func DurationMS(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
