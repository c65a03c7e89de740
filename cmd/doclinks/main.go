package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/doclinks/cmd/doclinks/commands"
	ferrors "git.home.luguber.info/inful/doclinks/internal/foundation/errors"
	"git.home.luguber.info/inful/doclinks/internal/version"
)

func main() {
	var cli commands.CLI
	global := commands.NewGlobal()

	ctx := kong.Parse(&cli,
		kong.Name("doclinks"),
		kong.Description("Render cross-document links and heading anchors for documentation pages."),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)

	if err := ctx.Run(global, &cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
	}
}
