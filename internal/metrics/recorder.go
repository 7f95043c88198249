package metrics

import "time"

// OutcomeLabel enumerates how a document run ended.
type OutcomeLabel string

const (
	// OutcomeSkipped means no eligible links; the capability was not called.
	OutcomeSkipped OutcomeLabel = "skipped"
	// OutcomeCorrected means the capability returned content.
	OutcomeCorrected OutcomeLabel = "corrected"
	// OutcomeFallback means the capability failed and content passed through.
	OutcomeFallback OutcomeLabel = "fallback"
)

// LinkCountLabel enumerates the link counters.
type LinkCountLabel string

const (
	LinksTotal       LinkCountLabel = "total"
	LinksSkipped     LinkCountLabel = "skipped"
	LinksProcessable LinkCountLabel = "processable"
	LinksCorrected   LinkCountLabel = "corrected"
	LinksNew         LinkCountLabel = "new"
)

// Recorder defines observability hooks for correction runs.
type Recorder interface {
	ObserveCorrectionDuration(backend string, d time.Duration, success bool)
	IncOutcome(outcome OutcomeLabel)
	AddLinks(label LinkCountLabel, n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveCorrectionDuration(string, time.Duration, bool) {}
func (NoopRecorder) IncOutcome(OutcomeLabel)                               {}
func (NoopRecorder) AddLinks(LinkCountLabel, int)                          {}
