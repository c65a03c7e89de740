package markdown

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"time"

	wikilink "go.abhg.dev/goldmark/wikilink"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/doclinks/internal/foundation"
	"git.home.luguber.info/inful/doclinks/internal/links"
	"git.home.luguber.info/inful/doclinks/internal/locale"
	"git.home.luguber.info/inful/doclinks/internal/metrics"
)

// Linker renders one cross-reference.
type Linker interface {
	Link(req links.Request) (string, error)
}

// Renderer converts Markdown bodies to HTML.
type Renderer struct {
	linker   Linker
	recorder metrics.Recorder
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithRecorder records document render durations.
func WithRecorder(r metrics.Recorder) RendererOption {
	return func(rd *Renderer) {
		if r != nil {
			rd.recorder = r
		}
	}
}

// NewRenderer creates a Renderer that resolves cross-references with linker.
func NewRenderer(linker Linker, opts ...RendererOption) *Renderer {
	r := &Renderer{linker: linker, recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render converts body to HTML for a page in loc. Link failures the link
// renderer does not recover from abort the render.
func (r *Renderer) Render(body []byte, loc locale.Locale) ([]byte, error) {
	start := time.Now()
	defer func() { r.recorder.ObserveDocumentRender(time.Since(start)) }()

	md := goldmark.New(
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithAttribute(),
			parser.WithInlineParsers(util.Prioritized(&wikilink.Parser{}, 199)),
		),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(util.Prioritized(&crossRefRenderer{linker: r.linker, locale: loc}, 199)),
		),
	)

	ctx := parser.NewContext(parser.WithIDs(NewHeadingIDs()))
	doc := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, body, doc); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

type crossRefRenderer struct {
	linker Linker
	locale locale.Locale
}

func (c *crossRefRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(wikilink.Kind, c.render)
}

func (c *crossRefRenderer) render(w util.BufWriter, source []byte, node gmast.Node, entering bool) (gmast.WalkStatus, error) {
	if !entering {
		return gmast.WalkContinue, nil
	}
	n, ok := node.(*wikilink.Node)
	if !ok {
		return gmast.WalkContinue, nil
	}

	req := links.Request{Reference: reference(n), Locale: c.locale}
	if label := labelOf(n, source); label != "" && label != string(n.Target) && label != req.Reference {
		req.Content = foundation.Some(html.EscapeString(label))
	}

	out, err := c.linker.Link(req)
	if err != nil {
		return gmast.WalkStop, err
	}
	_, _ = w.WriteString(out)
	return gmast.WalkSkipChildren, nil
}

// labelOf returns the text after "|" in [[target|label]], or the target when
// no label was given.
func labelOf(n *wikilink.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
	}
	return b.String()
}
