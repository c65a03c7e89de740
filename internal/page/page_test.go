package page

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doclinks/internal/docerror"
	"git.home.luguber.info/inful/doclinks/internal/locale"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		url  string
		loc  locale.Locale
		slug string
	}{
		{"/en-US/docs/Web/API/Fetch_API", locale.EnUS, "Web/API/Fetch_API"},
		{"/fr/docs/Web/HTML/", locale.Fr, "Web/HTML"},
		{"/ja/docs/Glossary/HTTP#history", locale.Ja, "Glossary/HTTP"},
		{"/en-us/docs/Web?x=1", locale.EnUS, "Web"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			loc, slug, err := ParseURL(tt.url)
			require.NoError(t, err)
			require.Equal(t, tt.loc, loc)
			require.Equal(t, tt.slug, slug)
		})
	}
}

func TestParseURL_Invalid(t *testing.T) {
	for _, url := range []string{"", "Web/API", "/en-US/Web/API", "/xx/docs/Web", "/en-US/docs/", "/en-US/docs"} {
		t.Run(url, func(t *testing.T) {
			_, _, err := ParseURL(url)
			de, ok := docerror.As(err)
			require.True(t, ok)
			require.Equal(t, docerror.KindInvalidURL, de.Kind())
		})
	}
}

func TestFolderPath(t *testing.T) {
	require.Equal(t, "web/api/fetch_api", FolderPath("Web/API/Fetch_API"))
	require.Equal(t, "web/css/_colon_hover", FolderPath("Web/CSS/:hover"))
	require.Equal(t, "web/css/_doublecolon_before", FolderPath("Web/CSS/::before"))
	require.Equal(t, "web/css/_star_", FolderPath("Web/CSS/*"))
	require.Equal(t, "glossary/what_question_", FolderPath("Glossary/What?"))
}

func TestURLFor(t *testing.T) {
	require.Equal(t, "/pt-BR/docs/Web/HTML", URLFor(locale.PtBR, "Web/HTML"))
}

func TestPageHelpers(t *testing.T) {
	p := &Page{Title: "Fetch API", Status: []Status{StatusExperimental}}
	require.Equal(t, "Fetch API", p.LinkTitle())
	p.ShortTitle = "Fetch"
	require.Equal(t, "Fetch", p.LinkTitle())
	require.True(t, p.HasStatus(StatusExperimental))
	require.False(t, p.HasStatus(StatusDeprecated))
}
