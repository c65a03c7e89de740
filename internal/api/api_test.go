package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doclinks/internal/config"
	"git.home.luguber.info/inful/doclinks/internal/docerror"
	"git.home.luguber.info/inful/doclinks/internal/foundation"
	"git.home.luguber.info/inful/doclinks/internal/links"
	"git.home.luguber.info/inful/doclinks/internal/locale"
	"git.home.luguber.info/inful/doclinks/internal/page"
)

const (
	summaryEnUS = "The documentation about this has not yet been written; please consider contributing!"
	summaryDe   = "Die Dokumentation hierüber wurde noch nicht geschrieben; bitte erwägen Sie, dazu beizutragen!"
)

type fixture struct {
	root  string
	store *page.FSStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	f := fixture{root: root, store: page.NewFSStore(root)}
	f.write(t, locale.EnUS, "Web/API/fetch", "---\ntitle: fetch()\nslug: Web/API/fetch\n---\n")
	f.write(t, locale.EnUS, "Web/API/Fetch_API", "---\ntitle: Fetch API\nslug: Web/API/Fetch_API\n---\n")

	redirectsPath := filepath.Join(root, "files", "en-us", "_redirects.txt")
	require.NoError(t, os.WriteFile(redirectsPath, []byte(
		"# FROM-URL\tTO-URL\n"+
			"/en-US/docs/Web/API/GlobalFetch\t/en-US/docs/Web/API/fetch\n"), 0o600))

	// A directory where index.md should be makes the read fail with EISDIR.
	require.NoError(t, os.MkdirAll(f.store.PathFor(locale.EnUS, "Web/Broken"), 0o755))
	return f
}

func (f fixture) write(t *testing.T, loc locale.Locale, slug, content string) {
	t.Helper()
	path := f.store.PathFor(loc, slug)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func (f fixture) config(t *testing.T, strict bool, defaultLocale locale.Locale) *config.Config {
	t.Helper()
	t.Setenv(config.EnvDenyWarnings, "")
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.ContentRoot = f.root
	cfg.RedirectsFiles = []string{filepath.Join(f.root, "files", "en-us", "_redirects.txt")}
	cfg.DenyWarnings = strict
	cfg.DefaultLocale = defaultLocale
	return cfg
}

func newAPI(t *testing.T, f fixture, strict bool) *API {
	t.Helper()
	a, err := New(f.config(t, strict, locale.EnUS))
	require.NoError(t, err)
	return a
}

func TestAnchorize(t *testing.T) {
	a := newAPI(t, newFixture(t), false)
	require.Equal(t, "hello_world", a.Anchorize("Hello World"))
	require.Equal(t, "sect1", a.Anchorize("###"))
	require.Equal(t, "sect1", a.Anchorize(""))
	require.Equal(t, "already_clean", a.Anchorize("already_clean"))
}

func TestGetPage_Redirects(t *testing.T) {
	f := newFixture(t)

	_, err := newAPI(t, f, true).GetPage("/en-US/docs/Web/API/GlobalFetch")
	var redirected *docerror.RedirectedLink
	require.ErrorAs(t, err, &redirected)
	require.Equal(t, "/en-US/docs/Web/API/GlobalFetch", redirected.From)
	require.Equal(t, "/en-US/docs/Web/API/fetch", redirected.To)

	p, err := newAPI(t, f, false).GetPage("/en-US/docs/Web/API/GlobalFetch")
	require.NoError(t, err)
	require.Equal(t, "/en-US/docs/Web/API/fetch", p.URL)
	require.Equal(t, "fetch()", p.Title)
}

func TestDecodeURIComponent(t *testing.T) {
	a := newAPI(t, newFixture(t), false)
	require.Equal(t, "Array%2Fprototype%20at%3F", a.DecodeURIComponent("Array/prototype at?"))
	require.Equal(t, "plain", a.DecodeURIComponent("plain"))
}

func TestLink(t *testing.T) {
	f := newFixture(t)
	a := newAPI(t, f, false)

	t.Run("resolved", func(t *testing.T) {
		got, err := a.Link(linkReq("/Web/API/fetch"))
		require.NoError(t, err)
		require.Equal(t, `<a href="/en-US/docs/Web/API/fetch">fetch()</a>`, got)
	})

	t.Run("missing page with code", func(t *testing.T) {
		req := linkReq("/Web/API/Nope")
		req.Code = true
		got, err := a.Link(req)
		require.NoError(t, err)
		require.Contains(t, got, `class="page-not-created"`)
		require.Contains(t, got, `<code>/Web/API/Nope</code>`)
	})

	t.Run("io failure propagates", func(t *testing.T) {
		got, err := a.Link(linkReq("/Web/Broken"))
		require.Empty(t, got)
		var ioErr *docerror.IO
		require.ErrorAs(t, err, &ioErr)
	})

	t.Run("locale summary", func(t *testing.T) {
		req := linkReq("/Web/API/Nope")
		req.Locale = locale.De
		got, err := a.Link(req)
		require.NoError(t, err)
		require.Equal(t, `<a class="page-not-created" title="`+summaryDe+`">/Web/API/Nope</a>`, got)
	})

	t.Run("default locale summary", func(t *testing.T) {
		got, err := a.Link(linkReq("/Web/API/Nope"))
		require.NoError(t, err)
		require.Equal(t, `<a class="page-not-created" title="`+summaryEnUS+`">/Web/API/Nope</a>`, got)
	})

	t.Run("configured default locale", func(t *testing.T) {
		de, err := New(f.config(t, false, locale.De))
		require.NoError(t, err)
		got, err := de.Link(linkReq("/Web/API/Nope"))
		require.NoError(t, err)
		require.Contains(t, got, summaryDe)
	})

	t.Run("strict redirect fails the link", func(t *testing.T) {
		_, err := newAPI(t, f, true).Link(linkReq("/Web/API/GlobalFetch"))
		var redirected *docerror.RedirectedLink
		require.ErrorAs(t, err, &redirected)
	})

	t.Run("content override", func(t *testing.T) {
		req := linkReq("/Web/API/Fetch_API")
		req.Content = foundation.Some("the Fetch API")
		got, err := a.Link(req)
		require.NoError(t, err)
		require.Equal(t, `<a href="/en-US/docs/Web/API/Fetch_API">the Fetch API</a>`, got)
	})
}

func TestBaseURLs(t *testing.T) {
	f := newFixture(t)
	cfg := f.config(t, false, locale.EnUS)
	cfg.LiveSamplesBaseURL = "https://live.example"
	cfg.InteractiveExamplesBaseURL = "https://interactive.example"

	a, err := New(cfg)
	require.NoError(t, err)
	require.Equal(t, "https://live.example", a.LiveSampleBaseURL())
	require.Equal(t, "https://interactive.example", a.InteractiveExamplesBaseURL())
}

func TestNew_Errors(t *testing.T) {
	f := newFixture(t)

	_, err := New(nil)
	require.Error(t, err)

	cfg := f.config(t, false, locale.EnUS)
	cfg.RedirectsFiles = []string{filepath.Join(f.root, "missing.txt")}
	_, err = New(cfg)
	require.ErrorContains(t, err, "failed to load redirects")

	cfg = f.config(t, false, locale.EnUS)
	cfg.CatalogFile = filepath.Join(f.root, "missing.yaml")
	_, err = New(cfg)
	require.ErrorContains(t, err, "failed to load catalog")
}

func TestNew_WithStore(t *testing.T) {
	store := page.NewMemoryStore(&page.Page{URL: "/en-US/docs/Glossary/HTTP", Title: "HTTP"})
	cfg := newFixture(t).config(t, false, locale.EnUS)
	a, err := New(cfg, WithStore(store))
	require.NoError(t, err)

	got, err := a.Link(linkReq("/Glossary/HTTP"))
	require.NoError(t, err)
	require.Equal(t, `<a href="/en-US/docs/Glossary/HTTP">HTTP</a>`, got)
}

func linkReq(ref string) links.Request {
	return links.Request{Reference: ref}
}
