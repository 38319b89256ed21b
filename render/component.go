package render

import (
	"sort"

	"golang.org/x/net/html"

	"github.com/hhhapz/formhtml/form"
)

// component renders a component at path. Reference-only components always
// render as an inclusion notice; loaded ones follow the component style.
func (r *renderer) component(depth int, path form.Path, c form.Component) error {
	if !c.Loaded() {
		url := c.Reference.Component + "/" + c.Reference.Version
		r.inclusion(url, url, c.Reference.Substitutions)
		return nil
	}

	switch r.opts.ComponentStyle {
	case StyleCopy:
		return r.child(depth, path, c.Form)
	case StyleReference:
		return r.loadedInclusion(path, c)
	case StyleBoth:
		if err := r.loadedInclusion(path, c); err != nil {
			return err
		}
		r.b.WriteString("<p>" + html.EscapeString(r.opts.QuoteText) + "</p>")
		r.annotations(path)
		r.b.WriteString("<blockquote>")
		if err := r.block(depth, path, c.Form); err != nil {
			return err
		}
		r.b.WriteString("</blockquote>")
		return nil
	}
	return &ConfigError{Option: "component style", Value: string(r.opts.ComponentStyle)}
}

func (r *renderer) loadedInclusion(path form.Path, c form.Component) error {
	if c.Meta == nil {
		return &MissingFieldError{Field: "component metadata", Path: path}
	}
	text := c.Meta.Publisher + " " + c.Meta.Name + " Version " + c.Meta.Version
	r.inclusion(c.Reference.Component+"/"+c.Reference.Version, text, c.Reference.Substitutions)
	return nil
}

// inclusion writes the notice incorporating a component by reference,
// listing substitutions if there are any.
func (r *renderer) inclusion(href, text string, subs form.Substitutions) {
	r.b.WriteString("<p>" + html.EscapeString(r.opts.IncorporateText) + " ")
	r.b.WriteString(`<a href="` + html.EscapeString(href) + `">` + html.EscapeString(text) + "</a>")
	if subs.Empty() {
		r.b.WriteString(".</p>")
		return
	}
	r.b.WriteString(" substituting:</p>")
	r.substitutions(subs)
}

// substitutions lists term, then heading, then blank substitutions. Terms
// and headings sort by the text replaced, blanks by ordinal.
func (r *renderer) substitutions(subs form.Substitutions) {
	r.b.WriteString("<ul>")

	for _, from := range sortedKeys(subs.Terms) {
		r.b.WriteString("<li>the term ")
		r.use(subs.Terms[from])
		r.b.WriteString(" for the term ")
		r.use(from)
		r.b.WriteString("</li>")
	}

	for _, from := range sortedKeys(subs.Headings) {
		r.b.WriteString("<li>references to ")
		r.reference(subs.Headings[from], r.opts.IDs)
		r.b.WriteString(" for references to ")
		r.reference(from, false)
		r.b.WriteString("</li>")
	}

	ordinals := make([]int, 0, len(subs.Blanks))
	for n := range subs.Blanks {
		ordinals = append(ordinals, n)
	}
	sort.Ints(ordinals)
	for _, n := range ordinals {
		r.b.WriteString("<li>" + r.quote(subs.Blanks[n]) + " for the " + ordinal(n) + " blank</li>")
	}

	r.b.WriteString("</ul>")
}

func (r *renderer) quote(s string) string {
	if r.opts.Smartify {
		return "“" + html.EscapeString(s) + "”"
	}
	return `"` + html.EscapeString(s) + `"`
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
