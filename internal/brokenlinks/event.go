// Package brokenlinks collects references that rendered as placeholders and
// publishes them to NATS JetStream for downstream triage.
package brokenlinks

import "time"

// Event describes one unresolved reference found while rendering a document.
type Event struct {
	ID        string `json:"id"`
	Reference string `json:"reference"` // As authored
	URL       string `json:"url"`       // Localized page URL that was looked up
	Locale    string `json:"locale"`
	Kind      string `json:"kind"` // docerror kind
	Error     string `json:"error"`

	SourcePath string `json:"source_path,omitempty"`

	// Occurrences counts repeats of the same reference in the same source.
	Occurrences int       `json:"occurrences"`
	FirstSeen   time.Time `json:"first_seen"`

	BuildID string `json:"build_id,omitempty"`
}
