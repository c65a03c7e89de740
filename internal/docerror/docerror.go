// Package docerror defines the closed set of failures produced while
// locating and linking documentation pages.
//
// Error is sealed: only the variants in this package implement it. Callers
// decide between failing the build and degrading output by switching on Kind,
// and Recoverable is the single policy table for that decision.
package docerror

import (
	"errors"
	"fmt"
	"io/fs"

	ferrors "git.home.luguber.info/inful/doclinks/internal/foundation/errors"
)

// Kind identifies an Error variant.
type Kind uint8

const (
	KindRedirectedLink Kind = iota + 1
	KindIO
	KindPageNotFound
	KindInvalidURL
	KindMalformedPage
)

func (k Kind) String() string {
	switch k {
	case KindRedirectedLink:
		return "redirected_link"
	case KindIO:
		return "io"
	case KindPageNotFound:
		return "page_not_found"
	case KindInvalidURL:
		return "invalid_url"
	case KindMalformedPage:
		return "malformed_page"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Recoverable reports whether a failure of this kind may be replaced by
// placeholder output. Redirect violations and I/O failures never are.
func Recoverable(k Kind) bool {
	switch k {
	case KindRedirectedLink, KindIO:
		return false
	case KindPageNotFound, KindInvalidURL, KindMalformedPage:
		return true
	default:
		panic(fmt.Sprintf("docerror: unknown kind %d", uint8(k)))
	}
}

// Error is implemented by every variant of the union.
type Error interface {
	error
	Kind() Kind
	Category() ferrors.ErrorCategory
	sealed()
}

// RedirectedLink is returned when a reference goes through a redirect while
// the build denies warnings.
type RedirectedLink struct {
	From string
	To   string
}

func (e *RedirectedLink) Error() string {
	return fmt.Sprintf("redirected link: %s -> %s", e.From, e.To)
}
func (e *RedirectedLink) Kind() Kind                      { return KindRedirectedLink }
func (e *RedirectedLink) Category() ferrors.ErrorCategory { return ferrors.CategoryRedirect }
func (*RedirectedLink) sealed()                           {}

// IO is a storage failure while loading a page.
type IO struct {
	Path string
	Err  error
}

func (e *IO) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("io error: %v", e.Err)
	}
	return fmt.Sprintf("io error reading %s: %v", e.Path, e.Err)
}
func (e *IO) Unwrap() error                   { return e.Err }
func (e *IO) Kind() Kind                      { return KindIO }
func (e *IO) Category() ferrors.ErrorCategory { return ferrors.CategoryFileSystem }
func (*IO) sealed()                           {}

// PageNotFound means no page exists for the URL.
type PageNotFound struct {
	URL  string
	Path string
}

func (e *PageNotFound) Error() string {
	return fmt.Sprintf("page not found: %s", e.URL)
}
func (e *PageNotFound) Is(target error) bool            { return target == fs.ErrNotExist }
func (e *PageNotFound) Kind() Kind                      { return KindPageNotFound }
func (e *PageNotFound) Category() ferrors.ErrorCategory { return ferrors.CategoryNotFound }
func (*PageNotFound) sealed()                           {}

// InvalidURL means the reference cannot name a page at all.
type InvalidURL struct {
	URL    string
	Reason string
}

func (e *InvalidURL) Error() string {
	return fmt.Sprintf("invalid url %q: %s", e.URL, e.Reason)
}
func (e *InvalidURL) Kind() Kind                      { return KindInvalidURL }
func (e *InvalidURL) Category() ferrors.ErrorCategory { return ferrors.CategoryValidation }
func (*InvalidURL) sealed()                           {}

// MalformedPage means the page file exists but its metadata cannot be parsed.
type MalformedPage struct {
	Path string
	Err  error
}

func (e *MalformedPage) Error() string {
	return fmt.Sprintf("malformed page %s: %v", e.Path, e.Err)
}
func (e *MalformedPage) Unwrap() error                   { return e.Err }
func (e *MalformedPage) Kind() Kind                      { return KindMalformedPage }
func (e *MalformedPage) Category() ferrors.ErrorCategory { return ferrors.CategoryValidation }
func (*MalformedPage) sealed()                           {}

// As finds the first union member in err's chain.
func As(err error) (Error, bool) {
	var de Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Classify maps an arbitrary store error into the union. Union members pass
// through unchanged, fs.ErrNotExist becomes PageNotFound and everything else
// is treated as an I/O failure.
func Classify(err error, url string) Error {
	if err == nil {
		return nil
	}
	if de, ok := As(err); ok {
		return de
	}
	if errors.Is(err, fs.ErrNotExist) {
		return &PageNotFound{URL: url}
	}
	return &IO{Path: url, Err: err}
}
