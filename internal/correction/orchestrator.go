package correction

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"git.home.luguber.info/inful/linkmigrate/internal/filecontext"
	"git.home.luguber.info/inful/linkmigrate/internal/foundation/errors"
	"git.home.luguber.info/inful/linkmigrate/internal/linkpolicy"
	"git.home.luguber.info/inful/linkmigrate/internal/logfields"
	"git.home.luguber.info/inful/linkmigrate/internal/markdown"
	"git.home.luguber.info/inful/linkmigrate/internal/metrics"
)

// DefaultTimeout bounds a single capability call.
const DefaultTimeout = 30 * time.Second

// Orchestrator gates and runs the correction capability for one document at a time.
// It keeps no state between calls.
type Orchestrator struct {
	corrector Corrector
	rules     linkpolicy.Rules
	extract   markdown.Options
	timeout   time.Duration
	root      string
	logger    *slog.Logger
	recorder  metrics.Recorder
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTimeout sets the capability call timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithRoot sets the working root used for FileContext.RelativeToRoot.
func WithRoot(root string) Option {
	return func(o *Orchestrator) { o.root = root }
}

// WithExtractOptions sets the link scanning options for both passes.
func WithExtractOptions(opts markdown.Options) Option {
	return func(o *Orchestrator) { o.extract = opts }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.recorder = r
		}
	}
}

// NewOrchestrator returns an Orchestrator calling c for documents that contain
// eligible links according to rules. Without WithRoot file context is resolved
// against the working directory at call time.
func NewOrchestrator(c Corrector, rules linkpolicy.Rules, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		corrector: c,
		rules:     rules,
		timeout:   DefaultTimeout,
		logger:    slog.Default(),
		recorder:  metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Process runs the pipeline on content. filePath only provides context; the
// file is never read.
//
// Capability failures never surface: the original content is returned with
// Stats.Fallback set and a warning is logged.
func (o *Orchestrator) Process(ctx context.Context, content, filePath string) Result {
	links := markdown.ExtractWithOptions(content, o.extract)
	skipped, processable := o.rules.Partition(links)

	if len(processable) == 0 {
		o.logger.Debug("No processable links, skipping correction",
			logfields.File(filePath),
			logfields.LinksTotal(len(links)),
			logfields.LinksSkipped(len(skipped)))
		stats := Stats{TotalLinks: len(links), SkippedLinks: len(skipped)}
		o.record(stats, metrics.OutcomeSkipped)
		return Result{Content: content, Stats: stats}
	}

	fc := o.fileContext(filePath)
	backend := backendName(o.corrector)

	start := time.Now()
	corrected, err := o.call(ctx, content, fc)
	elapsed := time.Since(start)
	o.recorder.ObserveCorrectionDuration(backend, elapsed, err == nil)

	if err != nil {
		o.logger.Warn("Link correction failed, passing content through",
			logfields.File(filePath),
			logfields.Backend(backend),
			logfields.Timeout(o.timeout),
			logfields.DurationMS(elapsed),
			logfields.Error(err))

		stats := Stats{
			TotalLinks:       len(links),
			SkippedLinks:     len(skipped),
			ProcessableLinks: len(processable),
			LLMInvoked:       true,
			Fallback:         true,
			Duration:         elapsed,
		}
		o.record(stats, metrics.OutcomeFallback)
		return Result{Content: content, Stats: stats}
	}

	stats := NewValidator(o.rules, o.extract).Compare(content, corrected)
	stats.ProcessableLinks = len(processable)
	stats.LLMInvoked = true
	stats.Duration = elapsed

	o.logger.Info("Link correction completed",
		logfields.File(filePath),
		logfields.Backend(backend),
		logfields.DurationMS(elapsed),
		logfields.LinksTotal(stats.TotalLinks),
		logfields.LinksProcessable(stats.ProcessableLinks),
		logfields.LinksCorrected(stats.CorrectedLinks),
		logfields.LinksNew(stats.NewLinks))

	o.record(stats, metrics.OutcomeCorrected)
	return Result{Content: corrected, Stats: stats}
}

func (o *Orchestrator) fileContext(filePath string) filecontext.FileContext {
	if o.root != "" {
		return filecontext.Build(filePath, o.root)
	}
	fc, err := filecontext.FromWorkingDir(filePath)
	if err != nil {
		o.logger.Debug("Working directory unavailable, using path as given", logfields.Error(err))
		return filecontext.Build(filePath, "")
	}
	return fc
}

type callResult struct {
	out string
	err error
}

// call invokes the capability under the timeout. When the deadline passes the
// call is abandoned even if the corrector ignores its context. Panics,
// timeouts and blank responses are all reported as capability errors.
func (o *Orchestrator) call(ctx context.Context, content string, fc filecontext.FileContext) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	done := make(chan callResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- callResult{err: errors.CapabilityError("correction capability panicked").
					WithCause(fmt.Errorf("%v", r)).
					Build()}
			}
		}()
		out, err := o.corrector.Correct(callCtx, content, fc)
		done <- callResult{out: out, err: err}
	}()

	var res callResult
	select {
	case res = <-done:
	case <-callCtx.Done():
		res = callResult{err: callCtx.Err()}
	}

	switch {
	case res.err != nil && stderrors.Is(callCtx.Err(), context.DeadlineExceeded):
		return "", errors.CapabilityError("correction timed out").
			WithCause(res.err).
			WithContext("timeout", o.timeout.String()).
			Build()
	case res.err != nil:
		if _, ok := errors.AsClassified(res.err); ok {
			return "", res.err
		}
		return "", errors.CapabilityError("correction failed").WithCause(res.err).Build()
	case strings.TrimSpace(res.out) == "":
		return "", errors.CapabilityError("correction returned empty content").Build()
	}
	return res.out, nil
}

func (o *Orchestrator) record(stats Stats, outcome metrics.OutcomeLabel) {
	o.recorder.IncOutcome(outcome)
	o.recorder.AddLinks(metrics.LinksTotal, stats.TotalLinks)
	o.recorder.AddLinks(metrics.LinksSkipped, stats.SkippedLinks)
	o.recorder.AddLinks(metrics.LinksProcessable, stats.ProcessableLinks)
	o.recorder.AddLinks(metrics.LinksCorrected, stats.CorrectedLinks)
	o.recorder.AddLinks(metrics.LinksNew, stats.NewLinks)
}
