package render

import (
	"golang.org/x/net/html"

	"github.com/hhhapz/formhtml/form"
)

// annotations renders the annotations attached to the form at path: those
// whose own path, less its last two segments, equals path.
func (r *renderer) annotations(path form.Path) {
	tag := "div"
	if r.opts.HTML5 {
		tag = "aside"
	}
	for _, a := range r.opts.Annotations {
		if !a.Path.Parent().Equal(path) {
			continue
		}
		r.open(tag, []string{"annotation", a.Level})
		r.b.WriteString("<p>" + html.EscapeString(a.Message) + "</p>")
		r.b.WriteString("</" + tag + ">")
	}
}
