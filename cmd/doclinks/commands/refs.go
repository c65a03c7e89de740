package commands

import (
	"fmt"
	"os"

	ferrors "git.home.luguber.info/inful/doclinks/internal/foundation/errors"
	"git.home.luguber.info/inful/doclinks/internal/frontmatter"
	"git.home.luguber.info/inful/doclinks/internal/markdown"
)

// RefsCmd implements the 'refs' command.
type RefsCmd struct {
	File string `arg:"" type:"existingfile" help:"Markdown file to scan"`
}

func (r *RefsCmd) Run(g *Global) error {
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

	for _, l := range markdown.ExtractLinks(body) {
		if _, err := fmt.Fprintf(g.Out, "%s\t%s\n", l.Kind, l.Destination); err != nil {
			return err
		}
	}
	return nil
}
