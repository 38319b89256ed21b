package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"

	"github.com/hhhapz/formhtml/form"
	"github.com/hhhapz/formhtml/inspect"
)

// InfoCmd prints statistics about a form.
type InfoCmd struct {
	InputFlags `embed:""`

	Dump  bool `help:"Also print the parsed form"`
	Color bool `help:"Color the dump"`
}

func (c *InfoCmd) Run(g *Globals) error {
	log := g.logger()
	f, data, err := c.readForm()
	if err != nil {
		return err
	}
	values, err := c.readValues(log)
	if err != nil {
		return err
	}
	hash, err := form.Hash(f)
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	writeInfo(buf, inspect.Count(f, values), hash, len(data))

	if c.Dump {
		pp.ColoringEnabled = c.Color
		pp.Fprintln(buf, f)
	}
	_, err = buf.WriteTo(os.Stdout)
	return err
}

func writeInfo(buf *bytes.Buffer, stats inspect.Stats, hash string, size int) {
	fmt.Fprintf(buf, "Size: %s\n", humanize.Bytes(uint64(size)))
	fmt.Fprintf(buf, "Hash: %s\n", hash)
	fmt.Fprintf(buf, "Forms: %s (depth %d)\n", humanize.Comma(int64(stats.Forms)), stats.Depth)
	fmt.Fprintf(buf, "Headings: %s\n", humanize.Comma(int64(stats.Headings)))
	fmt.Fprintf(buf, "Words: %s\n", humanize.Comma(int64(stats.Words)))
	fmt.Fprintf(buf, "Definitions: %s, uses: %s\n", humanize.Comma(int64(stats.Definitions)), humanize.Comma(int64(stats.Uses)))
	fmt.Fprintf(buf, "References: %s\n", humanize.Comma(int64(stats.References)))
	fmt.Fprintf(buf, "Blanks: %s (%s filled)\n", humanize.Comma(int64(stats.Blanks)), humanize.Comma(int64(stats.Filled)))
	fmt.Fprintf(buf, "Components: %s (%s loaded)\n", humanize.Comma(int64(stats.Components)), humanize.Comma(int64(stats.Loaded)))
}
