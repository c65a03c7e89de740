package page

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doclinks/internal/docerror"
	"git.home.luguber.info/inful/doclinks/internal/locale"
)

func writePage(t *testing.T, store *FSStore, loc locale.Locale, slug, content string) string {
	t.Helper()
	path := store.PathFor(loc, slug)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFSStore_Load(t *testing.T) {
	store := NewFSStore(t.TempDir())
	path := writePage(t, store, locale.EnUS, "Web/CSS/:hover", "---\n"+
		"title: \":hover\"\n"+
		"slug: Web/CSS/:hover\n"+
		"page-type: css-pseudo-class\n"+
		"status:\n  - experimental\n"+
		"---\n\nThe **`:hover`** pseudo-class.\n")

	p, err := store.Load("/en-US/docs/Web/CSS/:hover")
	require.NoError(t, err)
	require.Equal(t, "/en-US/docs/Web/CSS/:hover", p.URL)
	require.Equal(t, locale.EnUS, p.Locale)
	require.Equal(t, ":hover", p.Title)
	require.Equal(t, "css-pseudo-class", p.PageType)
	require.True(t, p.HasStatus(StatusExperimental))
	require.Equal(t, path, p.SourcePath)
	require.Contains(t, string(p.Body), "pseudo-class")
}

func TestFSStore_Load_CaseInsensitiveAndCanonicalSlug(t *testing.T) {
	store := NewFSStore(t.TempDir())
	writePage(t, store, locale.Fr, "Web/HTML", "---\ntitle: HTML\nslug: Web/HTML\n---\n")

	p, err := store.Load("/fr/docs/web/html")
	require.NoError(t, err)
	require.Equal(t, "/fr/docs/Web/HTML", p.URL)
}

func TestFSStore_Load_MissingSlugUsesRequested(t *testing.T) {
	store := NewFSStore(t.TempDir())
	writePage(t, store, locale.EnUS, "Glossary/HTTP", "---\ntitle: HTTP\n---\n")

	p, err := store.Load("/en-US/docs/Glossary/HTTP")
	require.NoError(t, err)
	require.Equal(t, "Glossary/HTTP", p.Slug)
}

func TestFSStore_Load_Errors(t *testing.T) {
	store := NewFSStore(t.TempDir())
	writePage(t, store, locale.EnUS, "Broken", "---\ntitle: [unclosed\n---\n")
	writePage(t, store, locale.EnUS, "Untitled", "---\nslug: Untitled\n---\n")
	writePage(t, store, locale.EnUS, "File", "---\ntitle: File\n---\n")

	// A directory where the index file should be makes the read itself fail.
	require.NoError(t, os.MkdirAll(store.PathFor(locale.EnUS, "Dir"), 0o755))

	tests := []struct {
		name string
		url  string
		kind docerror.Kind
	}{
		{"missing page", "/en-US/docs/Nope", docerror.KindPageNotFound},
		{"path through a file", "/en-US/docs/File/index.md/Child", docerror.KindPageNotFound},
		{"invalid url", "/en-US/Nope", docerror.KindInvalidURL},
		{"bad yaml", "/en-US/docs/Broken", docerror.KindMalformedPage},
		{"missing title", "/en-US/docs/Untitled", docerror.KindMalformedPage},
		{"unreadable", "/en-US/docs/Dir", docerror.KindIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Load(tt.url)
			de, ok := docerror.As(err)
			require.True(t, ok, "got %v", err)
			require.Equal(t, tt.kind, de.Kind())
		})
	}
}
