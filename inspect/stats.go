package inspect

import "github.com/hhhapz/formhtml/form"

// Stats counts the kinds of content in a form, components included.
type Stats struct {
	Forms       int
	Headings    int
	Depth       int
	Words       int
	Definitions int
	Uses        int
	References  int
	Blanks      int
	Filled      int
	Components  int
	Loaded      int
}

// Count tallies f. A blank counts as filled when some value addresses it.
func Count(f *form.Form, values []form.Value) Stats {
	s := Stats{Forms: 1}
	walk(f, form.Path{}, 1, func(e form.Element, path form.Path, depth int) {
		switch v := e.(type) {
		case form.Text:
			s.Words += words(string(v))
		case form.Use:
			s.Uses++
		case form.Definition:
			s.Definitions++
		case form.Reference:
			s.References++
		case form.Blank:
			s.Blanks++
			for _, value := range values {
				if value.Blank.Equal(path) {
					s.Filled++
					break
				}
			}
		case form.Child:
			s.Forms++
			if v.HasHeading() {
				s.Headings++
			}
			if depth > s.Depth {
				s.Depth = depth
			}
		case form.Component:
			s.Components++
			if v.HasHeading() {
				s.Headings++
			}
			if v.Loaded() {
				s.Loaded++
				s.Forms++
			}
			if depth > s.Depth {
				s.Depth = depth
			}
		}
	})
	return s
}

func words(text string) int {
	var n int
	inWord := false
	for _, r := range text {
		switch r {
		case ' ', '\t', '\n', '\r':
			inWord = false
		default:
			if !inWord {
				n++
			}
			inWord = true
		}
	}
	return n
}
