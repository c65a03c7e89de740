// Package markdown renders document bodies to HTML. Headings get unique ids
// derived from their text, and [[reference]] cross-links are rendered through
// the link renderer.
package markdown

import (
	"sort"

	wikilink "go.abhg.dev/goldmark/wikilink"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

func analysisParser() parser.Parser {
	md := goldmark.New(goldmark.WithParserOptions(
		parser.WithInlineParsers(util.Prioritized(&wikilink.Parser{}, 199)),
	))
	return md.Parser()
}

// ExtractLinks parses a Markdown body (frontmatter already removed) and lists
// its link-like constructs in document order, followed by reference
// definitions sorted by label.
func ExtractLinks(body []byte) []Link {
	ctx := parser.NewContext()
	root := analysisParser().Parse(text.NewReader(body), parser.WithContext(ctx))

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			// Reference-style links are resolved to Link nodes by the parser.
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		case *wikilink.Node:
			links = append(links, Link{Kind: LinkKindCrossReference, Destination: reference(node)})
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})

	// Reference definitions live in the parse context, not in the AST.
	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool {
		return string(refs[i].Label()) < string(refs[j].Label())
	})
	for _, ref := range refs {
		links = append(links, Link{Kind: LinkKindReferenceDefinition, Destination: string(ref.Destination())})
	}

	return links
}

func reference(n *wikilink.Node) string {
	ref := string(n.Target)
	if len(n.Fragment) > 0 {
		ref += "#" + string(n.Fragment)
	}
	return ref
}
