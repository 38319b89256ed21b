package render

import (
	"net/url"

	"golang.org/x/net/html"

	"github.com/hhhapz/formhtml/form"
)

// placeholder stands in for a blank without a value.
const placeholder = "[•]"

// paragraph renders a run of inline elements. offset is the position of the
// run's first element within the content of the form at path.
func (r *renderer) paragraph(offset int, path form.Path, g form.Group) error {
	r.b.WriteString("<p>")
	for i, e := range g.Content {
		switch v := e.(type) {
		case form.Text:
			r.b.WriteString(html.EscapeString(string(v)))
		case form.Use:
			r.use(string(v))
		case form.Definition:
			if r.opts.HTML5 {
				r.b.WriteString("<dfn>" + html.EscapeString(string(v)) + "</dfn>")
			} else {
				r.b.WriteString(`<span class="definition">` + html.EscapeString(string(v)) + "</span>")
			}
		case form.Blank:
			blank := path.Content(offset + i)
			value, ok := r.value(blank)
			if !ok {
				if r.opts.Complete {
					return &UnfilledBlankError{Path: blank}
				}
				value = placeholder
			}
			r.b.WriteString(`<span class="blank">` + html.EscapeString(value) + "</span>")
		case form.Reference:
			r.reference(string(v), r.opts.IDs)
		}
	}
	r.b.WriteString("</p>")
	return nil
}

// value returns the first value bound to the blank at path.
func (r *renderer) value(path form.Path) (string, bool) {
	for _, v := range r.values {
		if v.Blank.Equal(path) {
			return v.Value, true
		}
	}
	return "", false
}

func (r *renderer) use(term string) {
	r.b.WriteString(`<span class="term">` + html.EscapeString(term) + "</span>")
}

// reference renders a reference to a heading, as a link to the heading's
// anchor if link is set. The reference slugger is reset first so that every
// reference gets the heading's first slug.
func (r *renderer) reference(heading string, link bool) {
	if !link {
		r.b.WriteString(`<span class="reference">` + html.EscapeString(heading) + "</span>")
		return
	}
	r.references.Reset()
	anchor := url.PathEscape(r.references.Slug(heading))
	r.b.WriteString(`<a class="reference" href="#` + anchor + `">` + html.EscapeString(heading) + "</a>")
}
