package commands

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PageCmd implements the 'page' command.
type PageCmd struct {
	URL    string `arg:"" help:"Page URL, e.g. /en-US/docs/Web/API/fetch"`
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
}

type pageView struct {
	URL        string   `json:"url"`
	Locale     string   `json:"locale"`
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	ShortTitle string   `json:"short_title,omitempty"`
	PageType   string   `json:"page_type,omitempty"`
	Status     []string `json:"status,omitempty"`
	SourcePath string   `json:"source_path"`
}

func (p *PageCmd) Run(g *Global, root *CLI) error {
	rt, err := newRuntime(g, root, "")
	if err != nil {
		return err
	}
	pg, err := rt.api.GetPage(p.URL)
	if err != nil {
		return err
	}

	view := pageView{
		URL:        pg.URL,
		Locale:     pg.Locale.String(),
		Slug:       pg.Slug,
		Title:      pg.Title,
		ShortTitle: pg.ShortTitle,
		PageType:   pg.PageType,
		SourcePath: pg.SourcePath,
	}
	for _, s := range pg.Status {
		view.Status = append(view.Status, string(s))
	}

	if p.Format == "json" {
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	_, err = fmt.Fprintf(g.Out, "url:       %s\nlocale:    %s\nslug:      %s\ntitle:     %s\npage-type: %s\nstatus:    %s\nsource:    %s\n",
		view.URL, view.Locale, view.Slug, view.Title, view.PageType, strings.Join(view.Status, ", "), view.SourcePath)
	return err
}
