package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	linkResults    *prom.CounterVec
	linkErrors     *prom.CounterVec
	renderDuration prom.Histogram
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
// A nil registry gets a private one.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		linkResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doclinks",
			Name:      "link_results_total",
			Help:      "Rendered links by outcome",
		}, []string{"result"}),
		linkErrors: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doclinks",
			Name:      "link_errors_total",
			Help:      "Link lookup failures by error kind",
		}, []string{"kind"}),
		renderDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "doclinks",
			Name:      "document_render_duration_seconds",
			Help:      "Duration of rendering one markdown document",
			Buckets:   prom.DefBuckets,
		}),
	}
	reg.MustRegister(pr.linkResults, pr.linkErrors, pr.renderDuration)
	return pr
}

func (p *PrometheusRecorder) IncLinkResult(result ResultLabel) {
	if p == nil || p.linkResults == nil {
		return
	}
	p.linkResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncLinkError(kind string) {
	if p == nil || p.linkErrors == nil {
		return
	}
	p.linkErrors.WithLabelValues(kind).Inc()
}

func (p *PrometheusRecorder) ObserveDocumentRender(d time.Duration) {
	if p == nil || p.renderDuration == nil {
		return
	}
	p.renderDuration.Observe(d.Seconds())
}

// WriteTextfile writes everything gathered by g to path in the Prometheus
// text exposition format.
func WriteTextfile(path string, g prom.Gatherer) error {
	return prom.WriteToTextfile(path, g)
}
