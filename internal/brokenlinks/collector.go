package brokenlinks

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/doclinks/internal/docerror"
	"git.home.luguber.info/inful/doclinks/internal/links"
	"git.home.luguber.info/inful/doclinks/internal/locale"
)

type eventKey struct {
	source    string
	reference string
	locale    locale.Locale
}

// Collector accumulates placeholder events. It is safe for concurrent use.
type Collector struct {
	buildID string
	now     func() time.Time

	mu     sync.Mutex
	events map[eventKey]*Event
	order  []eventKey
}

// NewCollector creates a Collector stamping events with buildID.
func NewCollector(buildID string) *Collector {
	return &Collector{
		buildID: buildID,
		now:     time.Now,
		events:  make(map[eventKey]*Event),
	}
}

// Source returns an observer that attributes events to the document at path.
func (c *Collector) Source(path string) links.Observer {
	return sourceObserver{collector: c, path: path}
}

// PlaceholderRendered implements links.Observer for events without a source.
func (c *Collector) PlaceholderRendered(req links.Request, loc locale.Locale, cause docerror.Error) {
	c.record("", req, loc, cause)
}

func (c *Collector) record(source string, req links.Request, loc locale.Locale, cause docerror.Error) {
	key := eventKey{source: source, reference: req.Reference, locale: loc}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ev, ok := c.events[key]; ok {
		ev.Occurrences++
		return
	}
	url, _ := links.TargetURL(req.Reference, loc)
	c.events[key] = &Event{
		ID:          uuid.NewString(),
		Reference:   req.Reference,
		URL:         url,
		Locale:      loc.String(),
		Kind:        cause.Kind().String(),
		Error:       cause.Error(),
		SourcePath:  source,
		Occurrences: 1,
		FirstSeen:   c.now().UTC(),
		BuildID:     c.buildID,
	}
	c.order = append(c.order, key)
}

// Events returns a copy of the collected events in first-seen order.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Event, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, *c.events[k])
	}
	return out
}

// Len returns the number of distinct events.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

type sourceObserver struct {
	collector *Collector
	path      string
}

func (s sourceObserver) PlaceholderRendered(req links.Request, loc locale.Locale, cause docerror.Error) {
	s.collector.record(s.path, req, loc, cause)
}
