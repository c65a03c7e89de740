package metrics

import "time"

// ResultLabel enumerates link outcomes for counters.
type ResultLabel string

const (
	ResultResolved    ResultLabel = "resolved"
	ResultExternal    ResultLabel = "external"
	ResultPlaceholder ResultLabel = "placeholder"
	ResultFailed      ResultLabel = "failed"
)

// Recorder defines observability hooks for link rendering.
type Recorder interface {
	IncLinkResult(result ResultLabel)
	IncLinkError(kind string)
	ObserveDocumentRender(d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncLinkResult(ResultLabel)            {}
func (NoopRecorder) IncLinkError(string)                  {}
func (NoopRecorder) ObserveDocumentRender(time.Duration) {}
