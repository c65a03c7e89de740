package docerror

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/doclinks/internal/foundation/errors"
)

func TestRecoverable(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindRedirectedLink, false},
		{KindIO, false},
		{KindPageNotFound, true},
		{KindInvalidURL, true},
		{KindMalformedPage, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			require.Equal(t, tt.want, Recoverable(tt.kind))
		})
	}
}

func TestRecoverable_PanicsOnUnknownKind(t *testing.T) {
	require.Panics(t, func() { Recoverable(Kind(0)) })
}

func TestVariants(t *testing.T) {
	cause := errors.New("disk on fire")
	tests := []struct {
		name     string
		err      Error
		kind     Kind
		category ferrors.ErrorCategory
		message  string
	}{
		{"redirect", &RedirectedLink{From: "/a", To: "/b"}, KindRedirectedLink, ferrors.CategoryRedirect, "redirected link: /a -> /b"},
		{"io", &IO{Path: "/x/index.md", Err: cause}, KindIO, ferrors.CategoryFileSystem, "io error reading /x/index.md: disk on fire"},
		{"not found", &PageNotFound{URL: "/en-US/docs/Nope"}, KindPageNotFound, ferrors.CategoryNotFound, "page not found: /en-US/docs/Nope"},
		{"invalid", &InvalidURL{URL: "/x", Reason: "no docs segment"}, KindInvalidURL, ferrors.CategoryValidation, `invalid url "/x": no docs segment`},
		{"malformed", &MalformedPage{Path: "p.md", Err: cause}, KindMalformedPage, ferrors.CategoryValidation, "malformed page p.md: disk on fire"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.err.Kind())
			require.Equal(t, tt.category, tt.err.Category())
			require.Equal(t, tt.message, tt.err.Error())
			require.Equal(t, tt.category, ferrors.GetCategory(fmt.Errorf("wrapped: %w", tt.err)))
		})
	}
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("render: %w", &RedirectedLink{From: "/a", To: "/b"})
	de, ok := As(wrapped)
	require.True(t, ok)
	require.Equal(t, KindRedirectedLink, de.Kind())

	_, ok = As(errors.New("plain"))
	require.False(t, ok)
}

func TestClassify(t *testing.T) {
	require.Nil(t, Classify(nil, "/x"))

	nf := &PageNotFound{URL: "/x"}
	require.Same(t, nf, Classify(nf, "/x"))

	de := Classify(fmt.Errorf("open: %w", fs.ErrNotExist), "/en-US/docs/Gone")
	require.Equal(t, KindPageNotFound, de.Kind())
	require.Equal(t, "/en-US/docs/Gone", de.(*PageNotFound).URL)

	cause := fs.ErrPermission
	de = Classify(cause, "/en-US/docs/Locked")
	require.Equal(t, KindIO, de.Kind())
	require.ErrorIs(t, de, fs.ErrPermission)
}

func TestPageNotFound_IsNotExist(t *testing.T) {
	require.ErrorIs(t, &PageNotFound{URL: "/x"}, fs.ErrNotExist)
}
