package links

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/doclinks/internal/l10n"
	"git.home.luguber.info/inful/doclinks/internal/locale"
	"git.home.luguber.info/inful/doclinks/internal/page"
)

// PageLocator resolves a URL path to a page.
type PageLocator interface {
	GetPage(url string) (*page.Page, error)
}

// Renderer renders a link request. Errors are docerror values.
type Renderer interface {
	Render(req Request) (string, error)
}

type badge struct {
	status page.Status
	key    string
}

// badges are rendered in this order.
var badges = []badge{
	{page.StatusExperimental, l10n.KeyExperimentalBadgeTitle},
	{page.StatusDeprecated, l10n.KeyDeprecatedBadgeTitle},
	{page.StatusNonStandard, l10n.KeyNonStandardBadgeTitle},
}

// PageRenderer renders anchors for references that resolve to a page.
type PageRenderer struct {
	locator       PageLocator
	catalog       *l10n.Catalog
	defaultLocale locale.Locale
}

// NewPageRenderer creates a PageRenderer.
func NewPageRenderer(locator PageLocator, catalog *l10n.Catalog, defaultLocale locale.Locale) *PageRenderer {
	return &PageRenderer{
		locator:       locator,
		catalog:       catalog,
		defaultLocale: defaultLocale.Or(locale.Default),
	}
}

// TargetURL returns the page URL a local reference points at, without its
// fragment. References that carry no locale segment are placed under
// /{locale}/docs.
func TargetURL(ref string, loc locale.Locale) (url, fragment string) {
	url, fragment, _ = strings.Cut(ref, "#")
	if _, ok := locale.FromURL(url); !ok {
		url = "/" + loc.String() + "/docs" + url
	}
	return url, fragment
}

// Render implements Renderer.
func (r *PageRenderer) Render(req Request) (string, error) {
	if IsExternal(req.Reference) {
		return r.renderExternal(req), nil
	}

	loc := req.Locale.Or(r.defaultLocale)
	url, fragment := TargetURL(req.Reference, loc)
	p, err := r.locator.GetPage(url)
	if err != nil {
		return "", err
	}

	href := p.URL
	if fragment != "" {
		href += "#" + fragment
	}
	a := element(atom.A, html.Attribute{Key: "href", Val: href})
	if title, ok := req.Title.Get(); ok {
		a.Attr = append(a.Attr, html.Attribute{Key: "title", Val: title})
	}
	appendContent(a, req, p.LinkTitle())

	var b strings.Builder
	if err := html.Render(&b, a); err != nil {
		return "", err
	}
	if req.WithBadge {
		if err := r.renderBadges(&b, p, loc); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func (r *PageRenderer) renderExternal(req Request) string {
	a := element(atom.A,
		html.Attribute{Key: "href", Val: req.Reference},
		html.Attribute{Key: "class", Val: "external"},
		html.Attribute{Key: "target", Val: "_blank"},
	)
	if title, ok := req.Title.Get(); ok {
		a.Attr = append(a.Attr, html.Attribute{Key: "title", Val: title})
	}
	appendContent(a, req, req.Reference)

	var b strings.Builder
	// Rendering into a strings.Builder cannot fail.
	_ = html.Render(&b, a)
	return b.String()
}

func (r *PageRenderer) renderBadges(b *strings.Builder, p *page.Page, loc locale.Locale) error {
	for _, bd := range badges {
		if !p.HasStatus(bd.status) {
			continue
		}
		text, _ := r.catalog.Lookup(l10n.NamespaceTemplate, bd.key, loc)
		abbr := element(atom.Abbr,
			html.Attribute{Key: "class", Val: "icon icon-" + string(bd.status)},
			html.Attribute{Key: "title", Val: text},
		)
		span := element(atom.Span, html.Attribute{Key: "class", Val: "visually-hidden"})
		span.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		abbr.AppendChild(span)

		b.WriteByte(' ')
		if err := html.Render(b, abbr); err != nil {
			return err
		}
	}
	return nil
}

// appendContent adds the link text: the request's content as raw HTML when
// given and non-empty, otherwise fallback as escaped text.
func appendContent(a *html.Node, req Request, fallback string) {
	var content *html.Node
	if raw, ok := req.Content.Get(); ok && raw != "" {
		content = &html.Node{Type: html.RawNode, Data: raw}
	} else {
		content = &html.Node{Type: html.TextNode, Data: fallback}
	}
	if req.Code {
		code := element(atom.Code)
		code.AppendChild(content)
		content = code
	}
	a.AppendChild(content)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}
