// Package render turns a form into HTML.
//
// Rendering is a single depth-first pass over the form tree. Output depends
// only on the form, the blank values and the options: the same inputs
// always produce the same bytes. Fill-in values and annotations are matched
// to nodes by their form.Path.
package render

import (
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/hhhapz/formhtml/form"
	"github.com/hhhapz/formhtml/slug"
)

// renderer holds the state of one Render call. Nothing in it outlives the
// call, so concurrent renders never share slug memory.
type renderer struct {
	opts   Options
	values []form.Value

	// headings hands out unique IDs across the whole render. references
	// is reset before every reference.
	headings   *slug.Slugger
	references *slug.Slugger

	b strings.Builder
}

// Render returns the markup for f with blanks filled from values. When
// several values address the same blank the first one wins. On error no
// markup is returned.
func Render(f *form.Form, values []form.Value, opts Options) (string, error) {
	opts, err := opts.normalize()
	if err != nil {
		return "", err
	}

	r := &renderer{
		opts:   opts,
		values: values,
	}
	if opts.IDs {
		r.headings = slug.New()
		r.references = slug.New()
	}

	if err := r.document(f); err != nil {
		return "", err
	}
	return r.b.String(), nil
}

func (r *renderer) document(f *form.Form) error {
	if f == nil {
		return &MissingFieldError{Field: "form", Path: form.Path{}}
	}

	classes := r.opts.ClassNames
	if !r.opts.HTML5 {
		classes = append(classes, "article")
	}
	if f.Conspicuous {
		classes = append(classes, "conspicuous")
	}

	depth := r.opts.Depth
	if r.opts.Title != "" {
		depth++
	}

	container := "div"
	if r.opts.HTML5 {
		container = "article"
	}
	r.open(container, classes)

	if r.opts.Title != "" {
		r.b.WriteString("<h1>" + html.EscapeString(r.opts.Title) + "</h1>")
	}
	if r.opts.Edition != "" {
		r.b.WriteString(`<p class="version">` + html.EscapeString(r.opts.Edition) + "</p>")
	}
	if r.opts.Hash {
		digest, err := form.Hash(f)
		if err != nil {
			return err
		}
		r.b.WriteString(`<p class="hash"><code>` + digest + "</code></p>")
	}

	r.annotations(form.Path{})

	body := f
	if r.opts.Smartify {
		body = form.Smartify(f)
	}
	if err := r.block(depth, form.Path{}, body); err != nil {
		return err
	}

	r.b.WriteString("</" + container + ">")
	return nil
}

// open writes a start tag, with a class attribute listing classes in
// alphabetical order if there are any.
func (r *renderer) open(tag string, classes []string) {
	if len(classes) == 0 {
		r.b.WriteString("<" + tag + ">")
		return
	}
	sorted := append([]string(nil), classes...)
	sort.Strings(sorted)
	r.b.WriteString("<" + tag + ` class="` + html.EscapeString(strings.Join(sorted, " ")) + `">`)
}
