package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/linuxmatters/glyphforge/internal/cli"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

// versionFlag prints the version and exits before any command runs
type versionFlag bool

func (v versionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	cli.PrintVersion(vars["version"])
	app.Exit(0)
	return nil
}

var CLI struct {
	Version versionFlag `help:"Show version information"`

	Generate GenerateCmd `cmd:"" help:"Generate an alphabet of unique symbols."`
	Keyboard KeyboardCmd `cmd:"" help:"Type with the generated symbols on an interactive keyboard."`
	Sheet    SheetCmd    `cmd:"" help:"Render the symbol keyboard to a PNG image."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("glyphforge"),
		kong.Description(cli.AppDescription),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if err := ctx.Run(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
