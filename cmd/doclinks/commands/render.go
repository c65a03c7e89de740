package commands

import (
	"context"
	"fmt"
	"os"

	ferrors "git.home.luguber.info/inful/doclinks/internal/foundation/errors"
	"git.home.luguber.info/inful/doclinks/internal/frontmatter"
	"git.home.luguber.info/inful/doclinks/internal/logfields"
	"git.home.luguber.info/inful/doclinks/internal/markdown"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	File         string `arg:"" type:"existingfile" help:"Markdown file to render"`
	Locale       string `short:"l" help:"Locale or Accept-Language list of the document (defaults to default_locale)"`
	Output       string `short:"o" help:"Write HTML to this file instead of stdout"`
	FailOnBroken bool   `help:"Exit non-zero when any link rendered as a placeholder"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	rt, err := newRuntime(g, root, r.File)
	if err != nil {
		return err
	}
	loc, err := rt.resolveLocale(r.Locale)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(r.File)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read document").
			WithContext("path", r.File).
			Build()
	}
	_, body, _, err := frontmatter.Split(content)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid frontmatter").
			WithContext("path", r.File).
			Build()
	}

	html, err := markdown.NewRenderer(rt.api.Linker(), markdown.WithRecorder(rt.recorder)).Render(body, loc)
	if err != nil {
		return err
	}

	if r.Output != "" {
		if err := os.WriteFile(r.Output, html, 0o644); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write output").
				WithContext("path", r.Output).
				Build()
		}
	} else if _, err := g.Out.Write(html); err != nil {
		return err
	}

	broken := rt.collector.Len()
	if broken > 0 {
		rt.logger.Warn("Document has unresolved links", logfields.Path(r.File), logfields.Count(broken))
	}
	if err := rt.finish(context.Background()); err != nil {
		return err
	}
	if r.FailOnBroken && broken > 0 {
		return ferrors.ValidationError(fmt.Sprintf("%d unresolved link(s) in %s", broken, r.File)).Build()
	}
	return nil
}
