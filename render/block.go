package render

import (
	"net/url"
	"strconv"

	"golang.org/x/net/html"

	"github.com/hhhapz/formhtml/form"
)

// block renders the content of f, which sits at path. Series within f get
// headings one level below depth.
func (r *renderer) block(depth int, path form.Path, f *form.Form) error {
	offset := 0
	for _, g := range form.Groups(f) {
		var err error
		switch g.Type {
		case form.Series:
			err = r.series(depth+1, offset, path, g)
		default:
			err = r.paragraph(offset, path, g)
		}
		if err != nil {
			return err
		}
		offset += len(g.Content)
	}
	return nil
}

// child renders a nested form preceded by the annotations attached to it.
func (r *renderer) child(depth int, path form.Path, f *form.Form) error {
	r.annotations(path)
	return r.block(depth, path, f)
}

func (r *renderer) series(depth, offset int, path form.Path, g form.Group) error {
	lists := r.opts.Lists && !anyHeading(g.Content)
	if lists {
		r.b.WriteString("<ol>")
	}

	for i, e := range g.Content {
		childPath := path.Content(offset + i).Form()

		var classes []string
		if _, ok := e.(form.Component); ok {
			classes = append(classes, "component")
		} else if conspicuous(e) {
			classes = append(classes, "conspicuous")
		}

		if lists {
			r.open("li", classes)
			if err := r.member(depth, childPath, e); err != nil {
				return err
			}
			r.b.WriteString("</li>")
			continue
		}

		tag := "section"
		if !r.opts.HTML5 {
			tag = "div"
			classes = append(classes, "section")
		}
		r.open(tag, classes)
		if text, ok := heading(e); ok {
			r.heading(depth, text)
		}
		if err := r.member(depth, childPath, e); err != nil {
			return err
		}
		r.b.WriteString("</" + tag + ">")
	}

	if lists {
		r.b.WriteString("</ol>")
	}
	return nil
}

// member renders the body of a series member addressed by path.
func (r *renderer) member(depth int, path form.Path, e form.Element) error {
	switch v := e.(type) {
	case form.Child:
		if v.Form == nil {
			return &MissingFieldError{Field: "form", Path: path}
		}
		return r.child(depth, path, v.Form)
	case form.Component:
		return r.component(depth, path, v)
	}
	return nil
}

func (r *renderer) heading(depth int, text string) {
	var id string
	if r.opts.IDs {
		id = ` id="` + url.PathEscape(r.headings.Slug(text)) + `"`
	}
	if depth <= 6 {
		level := strconv.Itoa(depth)
		r.b.WriteString("<h" + level + id + ">" + html.EscapeString(text) + "</h" + level + ">")
		return
	}
	// There is no h7.
	r.b.WriteString(`<span class="h` + strconv.Itoa(depth) + `"` + id + ">" + html.EscapeString(text) + "</span>")
}

func heading(e form.Element) (string, bool) {
	switch v := e.(type) {
	case form.Child:
		return v.Heading, v.HasHeading()
	case form.Component:
		return v.Heading, v.HasHeading()
	}
	return "", false
}

func conspicuous(e form.Element) bool {
	c, ok := e.(form.Child)
	return ok && c.Form != nil && c.Form.Conspicuous
}

func anyHeading(members []form.Element) bool {
	for _, e := range members {
		if form.ContainsHeading(e) {
			return true
		}
	}
	return false
}
