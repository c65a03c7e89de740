// Package page models documentation pages and the stores that load them.
package page

import (
	"slices"
	"strings"

	"git.home.luguber.info/inful/doclinks/internal/docerror"
	"git.home.luguber.info/inful/doclinks/internal/locale"
)

// Status is a page lifecycle flag rendered as a badge next to links.
type Status string

const (
	StatusExperimental Status = "experimental"
	StatusDeprecated   Status = "deprecated"
	StatusNonStandard  Status = "non-standard"
)

// Page is a resolved document. Pages are read-only once loaded.
type Page struct {
	URL        string
	Locale     locale.Locale
	Slug       string
	Title      string
	ShortTitle string
	PageType   string
	Status     []Status
	SourcePath string
	Body       []byte
}

// LinkTitle is the text used when a link carries no content of its own.
func (p *Page) LinkTitle() string {
	if p.ShortTitle != "" {
		return p.ShortTitle
	}
	return p.Title
}

// HasStatus reports whether the page carries the given status flag.
func (p *Page) HasStatus(s Status) bool {
	return slices.Contains(p.Status, s)
}

// Store loads pages by URL path. Implementations report failures as
// docerror values.
type Store interface {
	Load(url string) (*Page, error)
}

const docsSegment = "docs"

// URLFor builds the canonical URL of a page.
func URLFor(loc locale.Locale, slug string) string {
	return "/" + loc.String() + "/" + docsSegment + "/" + slug
}

// ParseURL splits "/{locale}/docs/{slug}" into its parts. Queries and
// fragments are ignored.
func ParseURL(url string) (locale.Locale, string, error) {
	path := url
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		return locale.Unspecified, "", &docerror.InvalidURL{URL: url, Reason: "not an absolute path"}
	}

	parts := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 3)
	if len(parts) < 3 || parts[1] != docsSegment {
		return locale.Unspecified, "", &docerror.InvalidURL{URL: url, Reason: "expected /{locale}/docs/{slug}"}
	}
	loc, err := locale.Parse(parts[0])
	if err != nil {
		return locale.Unspecified, "", &docerror.InvalidURL{URL: url, Reason: err.Error()}
	}
	slug := strings.TrimSuffix(parts[2], "/")
	if slug == "" {
		return locale.Unspecified, "", &docerror.InvalidURL{URL: url, Reason: "empty slug"}
	}
	return loc, slug, nil
}

var folderReplacer = strings.NewReplacer(
	"*", "_star_",
	"::", "_doublecolon_",
	":", "_colon_",
	"?", "_question_",
)

// FolderPath maps a slug to its content directory, relative to the locale
// folder. Directory names are lowercase and avoid characters that are
// awkward on common filesystems.
func FolderPath(slug string) string {
	return folderReplacer.Replace(strings.ToLower(slug))
}
