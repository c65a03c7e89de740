// Package metrics records link rendering outcomes.
//
// Components receive a Recorder through their constructor and default to
// NoopRecorder, so metrics cost nothing unless a real implementation is
// injected:
//
//	reg := prometheus.NewRegistry()
//	linker := links.NewLinker(loc, renderer, catalog, links.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// PrometheusRecorder registers its collectors on the given registry. The CLI
// writes the registry to a node-exporter textfile when a render finishes.
package metrics
