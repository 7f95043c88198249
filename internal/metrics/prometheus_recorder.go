package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg                *prom.Registry
	correctionDuration *prom.HistogramVec
	outcomes           *prom.CounterVec
	links              *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the correction metrics on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		correctionDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "linkmigrate",
			Name:      "correction_duration_seconds",
			Help:      "Duration of correction capability calls",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}, []string{"backend", "result"}),
		outcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "linkmigrate",
			Name:      "documents_total",
			Help:      "Processed documents by outcome",
		}, []string{"outcome"}),
		links: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "linkmigrate",
			Name:      "links_total",
			Help:      "Link counts by classification",
		}, []string{"kind"}),
	}
	reg.MustRegister(pr.correctionDuration, pr.outcomes, pr.links)
	return pr
}

func (p *PrometheusRecorder) ObserveCorrectionDuration(backend string, d time.Duration, success bool) {
	if p == nil || p.correctionDuration == nil {
		return
	}
	res := "failed"
	if success {
		res = "success"
	}
	p.correctionDuration.WithLabelValues(backend, res).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncOutcome(outcome OutcomeLabel) {
	if p == nil || p.outcomes == nil {
		return
	}
	p.outcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddLinks(label LinkCountLabel, n int) {
	if p == nil || p.links == nil || n <= 0 {
		return
	}
	p.links.WithLabelValues(string(label)).Add(float64(n))
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.reg
}

// WriteTextfile writes all gathered metrics to path in the text exposition format.
// The file is written atomically.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}
