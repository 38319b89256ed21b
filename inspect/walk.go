package inspect

import "github.com/hhhapz/formhtml/form"

// walk calls fn for every element below f in document order, with the
// element's path and the depth of the series it belongs to.
func walk(f *form.Form, path form.Path, depth int, fn func(e form.Element, path form.Path, depth int)) {
	if f == nil {
		return
	}
	for i, e := range f.Content {
		p := path.Content(i)
		fn(e, p, depth)
		switch v := e.(type) {
		case form.Child:
			walk(v.Form, p.Form(), depth+1, fn)
		case form.Component:
			walk(v.Form, p.Form(), depth+1, fn)
		}
	}
}
