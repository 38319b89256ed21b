package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/hhhapz/formhtml/form"
	"github.com/hhhapz/formhtml/inspect"
	"github.com/hhhapz/formhtml/render"
)

// RenderFlags control the markup. Unset flags fall back to the config file.
type RenderFlags struct {
	HTML5       bool   `name:"html5" help:"Output HTML5"`
	Lists       bool   `short:"l" help:"Output series without headings as ordered lists"`
	Complete    bool   `short:"c" help:"Fail if a blank does not have a value"`
	IDs         bool   `name:"ids" short:"i" help:"Output headings with IDs and references as links"`
	Title       string `short:"t" help:"Form title"`
	FormVersion string `name:"form-version" short:"e" help:"Form version"`
	Smartify    bool   `help:"Output Unicode punctuation"`
	Hash        bool   `help:"Output the form's content hash (BLAKE3-256 of its canonical JSON, not a SHA-256 digest)"`
	Annotations string `short:"a" type:"existingfile" help:"YAML or JSON file with annotations"`

	ComponentStyle           string `name:"component-style" help:"How to render loaded components: copy, reference or both"`
	QuoteComponentText       string `name:"quote-component-text" help:"Text before quoted component contents"`
	IncorporateComponentText string `name:"incorporate-component-text" help:"Text before component references"`
}

func (fl RenderFlags) options(cfg configuration) render.Options {
	opts := render.Options{
		HTML5:           fl.HTML5 || cfg.HTML5,
		Lists:           fl.Lists || cfg.Lists,
		IDs:             fl.IDs || cfg.IDs,
		Complete:        fl.Complete || cfg.Complete,
		Smartify:        fl.Smartify || cfg.Smartify,
		Hash:            fl.Hash || cfg.Hash,
		Title:           fl.Title,
		Edition:         fl.FormVersion,
		ComponentStyle:  render.ComponentStyle(cfg.ComponentStyle),
		IncorporateText: cfg.IncorporateComponentText,
		QuoteText:       cfg.QuoteComponentText,
		ClassNames:      cfg.ClassNames,
		Depth:           cfg.Depth,
	}
	if fl.ComponentStyle != "" {
		opts.ComponentStyle = render.ComponentStyle(fl.ComponentStyle)
	}
	if fl.IncorporateComponentText != "" {
		opts.IncorporateText = fl.IncorporateComponentText
	}
	if fl.QuoteComponentText != "" {
		opts.QuoteText = fl.QuoteComponentText
	}
	return opts
}

// job is everything one render needs, read fresh from disk.
type job struct {
	form   *form.Form
	values []form.Value
	opts   render.Options
}

func prepare(g *Globals, in InputFlags, fl RenderFlags, log *slog.Logger) (job, error) {
	cfg, err := loadConfig(g.Config)
	if err != nil {
		return job{}, err
	}
	f, data, err := in.readForm()
	if err != nil {
		return job{}, err
	}
	log.Debug("read form", "file", in.File, "size", humanize.Bytes(uint64(len(data))))

	values, err := in.readValues(log)
	if err != nil {
		return job{}, err
	}

	opts := fl.options(cfg)
	if opts.Annotations, err = readAnnotations(fl.Annotations); err != nil {
		return job{}, err
	}
	return job{form: f, values: values, opts: opts}, nil
}

// RenderCmd renders a form.
type RenderCmd struct {
	InputFlags  `embed:""`
	RenderFlags `embed:""`

	Out   string `short:"o" type:"path" help:"Write markup to this file instead of stdout"`
	Watch bool   `short:"w" help:"Render again whenever an input file changes (requires a form file and --out)"`
}

func (c *RenderCmd) Run(g *Globals) error {
	log := g.logger()
	if c.Watch {
		if c.File == "" || c.Out == "" {
			return errors.New("--watch requires a form file and --out")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return c.watch(ctx, g, log)
	}
	return c.render(g, log)
}

func (c *RenderCmd) render(g *Globals, log *slog.Logger) error {
	j, err := prepare(g, c.InputFlags, c.RenderFlags, log)
	if err != nil {
		return err
	}
	markup, err := render.Render(j.form, j.values, j.opts)
	if err != nil {
		return errors.Wrap(err, "could not render form")
	}
	markup += "\n"

	if c.Out == "" {
		_, err = os.Stdout.WriteString(markup)
		return err
	}
	if err := os.WriteFile(c.Out, []byte(markup), 0o644); err != nil {
		return errors.Wrap(err, "could not write output")
	}
	log.Info("rendered form", "out", c.Out, "size", humanize.Bytes(uint64(len(markup))))
	return nil
}

// OutlineCmd prints the paths of a form's nodes, for writing directions and
// annotations.
type OutlineCmd struct {
	InputFlags `embed:""`
}

func (c *OutlineCmd) Run(g *Globals) error {
	log := g.logger()
	f, _, err := c.readForm()
	if err != nil {
		return err
	}
	values, err := c.readValues(log)
	if err != nil {
		return err
	}
	fmt.Print(inspect.Outline(f, values))
	return nil
}

// CheckCmd renders a form with heading IDs and reports references whose
// heading is missing.
type CheckCmd struct {
	InputFlags  `embed:""`
	RenderFlags `embed:""`
}

func (c *CheckCmd) Run(g *Globals) error {
	log := g.logger()
	j, err := prepare(g, c.InputFlags, c.RenderFlags, log)
	if err != nil {
		return err
	}
	j.opts.IDs = true
	j.opts.Complete = false

	markup, err := render.Render(j.form, j.values, j.opts)
	if err != nil {
		return errors.Wrap(err, "could not render form")
	}
	dangling, err := inspect.Dangling(markup)
	if err != nil {
		return err
	}
	for _, heading := range dangling {
		fmt.Printf("dangling reference: %q\n", heading)
	}
	if len(dangling) > 0 {
		return fmt.Errorf("%d dangling %s", len(dangling), pluralize(len(dangling), "reference"))
	}
	log.Info("no dangling references")
	return nil
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
