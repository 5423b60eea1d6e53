package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"1" help:"Play a game (default)"`
	Rules   RulesCmd         `cmd:"" help:"Print who beats whom"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rps"),
		kong.Description("Rock Paper Scissors against the computer or a friend"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
