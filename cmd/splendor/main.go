package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config  string `short:"c" help:"HCL config file (defaults apply when missing)" default:"splendor.hcl" type:"path"`
	Cards   string `help:"Card data file, overrides the config" type:"path"`
	Nobles  string `help:"Noble data file, overrides the config" type:"path"`
	Verbose bool   `help:"Enable debug logging"`
	NoColor bool   `help:"Disable colored output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play a single game between bots and print every turn"`
	Simulate SimulateCmd      `cmd:"" help:"Play many seeded games and report statistics"`
	Deck     CardsCmd         `cmd:"" name:"cards" help:"List the card and noble data"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("splendor"),
		kong.Description("Gem-trading card game engine with heuristic bots"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
