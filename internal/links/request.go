// Package links renders cross-document references into anchor markup.
//
// PageRenderer produces the anchor for a reference whose page resolves.
// Linker wraps it and is the one place where lookup failures are turned into
// placeholder markup instead of failing the build.
package links

import (
	"strings"

	"git.home.luguber.info/inful/doclinks/internal/foundation"
	"git.home.luguber.info/inful/doclinks/internal/locale"
)

// Request describes one link to render.
type Request struct {
	// Reference is the link target as authored, e.g. "/Web/API/fetch" or
	// "/en-US/docs/Web/API/fetch#syntax".
	Reference string
	// Locale of the linking page. Unspecified resolves to the default locale.
	Locale locale.Locale
	// Content replaces the link text. It is inserted as HTML.
	Content foundation.Option[string]
	// Code wraps the link text in <code>.
	Code bool
	// Title sets the title attribute.
	Title foundation.Option[string]
	// WithBadge appends status badges of the target page.
	WithBadge bool
}

// IsExternal reports whether ref points outside the documentation tree.
func IsExternal(ref string) bool {
	return !strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "//")
}
