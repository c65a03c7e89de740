package commands

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/doclinks/internal/anchor"
)

// AnchorCmd implements the 'anchor' command.
type AnchorCmd struct {
	Text []string `arg:"" help:"Heading text"`
}

func (a *AnchorCmd) Run(g *Global) error {
	_, err := fmt.Fprintln(g.Out, anchor.Anchorize(strings.Join(a.Text, " ")))
	return err
}
