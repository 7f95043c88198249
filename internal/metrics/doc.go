// Package metrics records link correction outcomes.
//
// Components depend on the Recorder interface. NoopRecorder is the default and
// does nothing; PrometheusRecorder collects counters and histograms in a
// registry that can be written out in the Prometheus text format for the
// node_exporter textfile collector:
//
//	rec := metrics.NewPrometheusRecorder(prom.NewRegistry())
//	orch := correction.NewOrchestrator(c, rules).WithRecorder(rec)
//	...
//	_ = rec.WriteTextfile("/var/lib/node_exporter/linkmigrate.prom")
//
// A CLI run is short-lived, so there is no HTTP exposition endpoint.
package metrics
