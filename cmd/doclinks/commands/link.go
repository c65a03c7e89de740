package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/doclinks/internal/foundation"
	"git.home.luguber.info/inful/doclinks/internal/links"
)

// LinkCmd implements the 'link' command.
type LinkCmd struct {
	Reference string  `arg:"" help:"Link target, e.g. /Web/API/fetch"`
	Locale    string  `short:"l" help:"Locale or Accept-Language list of the linking page (defaults to default_locale)"`
	Content   *string `help:"Link text, inserted as HTML"`
	Title     *string `help:"Title attribute"`
	Code      bool    `help:"Wrap the link text in <code>"`
	Badge     bool    `help:"Append status badges of the target page"`
}

func (l *LinkCmd) Run(g *Global, root *CLI) error {
	rt, err := newRuntime(g, root, "")
	if err != nil {
		return err
	}
	loc, err := rt.resolveLocale(l.Locale)
	if err != nil {
		return err
	}

	out, err := rt.api.Link(links.Request{
		Reference: l.Reference,
		Locale:    loc,
		Content:   foundation.FromPointer(l.Content),
		Title:     foundation.FromPointer(l.Title),
		Code:      l.Code,
		WithBadge: l.Badge,
	})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(g.Out, out); err != nil {
		return err
	}
	return rt.finish(context.Background())
}
