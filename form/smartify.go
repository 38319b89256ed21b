package form

import (
	"strings"
	"unicode"
)

// Smartify returns a copy of f with ASCII punctuation in its prose, terms,
// references and headings replaced by typographic Unicode: curly quotes and
// apostrophes, em dashes for "--" and ellipses for "...". Quote direction
// carries across adjacent inline elements of a paragraph, so a quote that
// follows a defined term closes rather than opens.
func Smartify(f *Form) *Form {
	if f == nil {
		return nil
	}
	out := &Form{
		Content:     make([]Element, len(f.Content)),
		Conspicuous: f.Conspicuous,
	}
	var s smartener
	for i, e := range f.Content {
		switch v := e.(type) {
		case Text:
			out.Content[i] = Text(s.convert(string(v)))
		case Use:
			out.Content[i] = Use(s.convert(string(v)))
		case Definition:
			out.Content[i] = Definition(s.convert(string(v)))
		case Reference:
			out.Content[i] = Reference(s.convert(string(v)))
		case Blank:
			s.last = 'x'
			out.Content[i] = v
		case Child:
			s = smartener{}
			out.Content[i] = Child{
				Heading:      smartString(v.Heading),
				EmptyHeading: v.EmptyHeading,
				Form:         Smartify(v.Form),
			}
		case Component:
			s = smartener{}
			v.Heading = smartString(v.Heading)
			v.Form = Smartify(v.Form)
			out.Content[i] = v
		default:
			out.Content[i] = e
		}
	}
	return out
}

func smartString(str string) string {
	var s smartener
	return s.convert(str)
}

var dashes = strings.NewReplacer("...", "…", "--", "—")

// smartener converts quotes by looking at the rune before them, which may
// belong to an earlier string of the same paragraph.
type smartener struct {
	last rune
}

func (s *smartener) convert(str string) string {
	str = dashes.Replace(str)
	var b strings.Builder
	b.Grow(len(str))
	for _, r := range str {
		switch r {
		case '"':
			if s.opens() {
				r = '“'
			} else {
				r = '”'
			}
		case '\'':
			if s.opens() {
				r = '‘'
			} else {
				r = '’'
			}
		}
		b.WriteRune(r)
		s.last = r
	}
	return b.String()
}

func (s *smartener) opens() bool {
	switch {
	case s.last == 0, unicode.IsSpace(s.last):
		return true
	case strings.ContainsRune("([{—–‘“", s.last):
		return true
	}
	return false
}
