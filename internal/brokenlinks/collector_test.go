package brokenlinks

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doclinks/internal/config"
	"git.home.luguber.info/inful/doclinks/internal/docerror"
	"git.home.luguber.info/inful/doclinks/internal/links"
	"git.home.luguber.info/inful/doclinks/internal/locale"
)

func TestCollector(t *testing.T) {
	c := NewCollector("build-1")
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	notFound := &docerror.PageNotFound{URL: "/fr/docs/Web/Missing"}
	obs := c.Source("files/fr/web/index.md")
	obs.PlaceholderRendered(links.Request{Reference: "/Web/Missing"}, locale.Fr, notFound)
	obs.PlaceholderRendered(links.Request{Reference: "/Web/Missing"}, locale.Fr, notFound)
	c.PlaceholderRendered(links.Request{Reference: "/en-US/docs/Bad"}, locale.EnUS, &docerror.InvalidURL{URL: "/en-US/docs/Bad", Reason: "x"})

	require.Equal(t, 2, c.Len())
	events := c.Events()

	first := events[0]
	_, err := uuid.Parse(first.ID)
	require.NoError(t, err)
	require.Equal(t, "/Web/Missing", first.Reference)
	require.Equal(t, "/fr/docs/Web/Missing", first.URL)
	require.Equal(t, "fr", first.Locale)
	require.Equal(t, "page_not_found", first.Kind)
	require.Equal(t, "files/fr/web/index.md", first.SourcePath)
	require.Equal(t, 2, first.Occurrences)
	require.Equal(t, fixed, first.FirstSeen)
	require.Equal(t, "build-1", first.BuildID)

	require.Equal(t, "/en-US/docs/Bad", events[1].URL)
	require.Equal(t, "invalid_url", events[1].Kind)
	require.Empty(t, events[1].SourcePath)
	require.NotEqual(t, first.ID, events[1].ID)
}

func TestCollector_Concurrent(t *testing.T) {
	c := NewCollector("")
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Source("doc.md").PlaceholderRendered(
				links.Request{Reference: "/Web/Missing"}, locale.EnUS, &docerror.PageNotFound{})
		}()
	}
	wg.Wait()

	events := c.Events()
	require.Len(t, events, 1)
	require.Equal(t, 20, events[0].Occurrences)
}

func TestEncode(t *testing.T) {
	data, err := Encode(&Event{ID: "id", Reference: "/Web/X", Occurrences: 1})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "/Web/X", decoded["reference"])
	require.NotContains(t, decoded, "source_path")
}

func TestNewPublisher_RequiresEnabledConfig(t *testing.T) {
	_, err := NewPublisher(t.Context(), nil, nil)
	require.Error(t, err)

	_, err = NewPublisher(t.Context(), &config.BrokenLinksConfig{Enabled: false}, nil)
	require.ErrorContains(t, err, "disabled")
}
