// Command formhtml renders structured contract forms as HTML.
//
// Usage:
//
//	formhtml [render] [flags] [form.json]
//	formhtml outline [flags] [form.json]
//	formhtml info [flags] [form.json]
//	formhtml check [flags] [form.json]
//
// Forms are read from stdin when no file is given.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/alecthomas/kong"
)

const version = "1.0.0"

// Globals are flags shared by every command.
type Globals struct {
	Verbose bool   `short:"V" help:"Log debug output to stderr"`
	Config  string `type:"path" help:"YAML or JSON file with default render options"`
}

func (g *Globals) logger() *slog.Logger {
	return newLogger(os.Stderr, g.Verbose)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// CLI defines the command-line interface.
var CLI struct {
	Globals

	Render  RenderCmd  `cmd:"" default:"withargs" help:"Render a form as HTML"`
	Outline OutlineCmd `cmd:"" help:"Print the tree of forms, components and blanks with their paths"`
	Info    InfoCmd    `cmd:"" help:"Print statistics about a form"`
	Check   CheckCmd   `cmd:"" help:"Report references to headings that do not exist"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("formhtml %s (%s)\n", version, runtime.Version())
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("formhtml"),
		kong.Description("Render structured contract forms as HTML"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&CLI.Globals)
	ctx.FatalIfErrorf(err)
}
