package redirects

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	m, err := New(map[string]string{
		"/en-US/docs/Old": "/en-US/docs/New",
	})
	require.NoError(t, err)

	to, ok := m.Resolve("/en-US/docs/Old")
	require.True(t, ok)
	require.Equal(t, "/en-US/docs/New", to)

	to, ok = m.Resolve("/en-us/docs/old")
	require.True(t, ok, "lookup is case-insensitive")
	require.Equal(t, "/en-US/docs/New", to)

	_, ok = m.Resolve("/en-US/docs/New")
	require.False(t, ok)
}

func TestResolve_KeepsFragment(t *testing.T) {
	m, err := New(map[string]string{
		"/en-US/docs/A": "/en-US/docs/B",
		"/en-US/docs/C": "/en-US/docs/D#section",
	})
	require.NoError(t, err)

	to, _ := m.Resolve("/en-US/docs/A#syntax")
	require.Equal(t, "/en-US/docs/B#syntax", to)

	to, _ = m.Resolve("/en-US/docs/C#other")
	require.Equal(t, "/en-US/docs/D#section", to)
}

func TestNew_ChasesChains(t *testing.T) {
	m, err := New(map[string]string{
		"/a": "/b",
		"/b": "/C",
		"/c": "/d",
	})
	require.NoError(t, err)

	for _, from := range []string{"/a", "/b", "/c"} {
		to, ok := m.Resolve(from)
		require.True(t, ok)
		require.Equal(t, "/d", to, from)
	}
}

func TestNew_RejectsCycles(t *testing.T) {
	_, err := New(map[string]string{"/a": "/b", "/b": "/a"})
	require.ErrorIs(t, err, ErrCycle)

	_, err = New(map[string]string{"/a": "/A"})
	require.ErrorIs(t, err, ErrCycle)
}

func TestParse(t *testing.T) {
	src := "# comment\n\n/en-US/docs/Old\t/en-US/docs/New\n/fr/docs/Vieux\t/fr/docs/Neuf\n"
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())

	to, ok := m.Resolve("/fr/docs/Vieux")
	require.True(t, ok)
	require.Equal(t, "/fr/docs/Neuf", to)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader("/only-one-column\n"))
	require.ErrorContains(t, err, "redirects:1")

	_, err = Parse(strings.NewReader("/a\t/b\n/a\t/c\n"))
	require.ErrorContains(t, err, "duplicate")
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	en := filepath.Join(dir, "en-us.txt")
	fr := filepath.Join(dir, "fr.txt")
	require.NoError(t, os.WriteFile(en, []byte("/en-US/docs/A\t/en-US/docs/B\n"), 0o600))
	require.NoError(t, os.WriteFile(fr, []byte("/fr/docs/A\t/fr/docs/B\n"), 0o600))

	m, err := LoadFiles(en, fr)
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())

	require.NoError(t, os.WriteFile(fr, []byte("/EN-US/docs/A\t/fr/docs/B\n"), 0o600))
	_, err = LoadFiles(en, fr)
	require.ErrorContains(t, err, "already redirected")

	_, err = LoadFiles(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}

func TestNone(t *testing.T) {
	_, ok := None.Resolve("/anything")
	require.False(t, ok)

	var m *Map
	_, ok = m.Resolve("/anything")
	require.False(t, ok)
	require.Equal(t, 0, m.Len())
}
