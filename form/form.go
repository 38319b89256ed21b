// Package form models a structured contract document: a tree of forms whose
// content mixes text, defined terms, fill-in blanks, cross-references, child
// forms and embedded components.
package form

// Form is a node of the document tree. Forms are never modified by the
// packages that consume them.
type Form struct {
	Content     []Element
	Conspicuous bool
}

// Element is one entry of a form's content. It is implemented by Text, Use,
// Definition, Blank, Reference, Child and Component, and nothing else.
type Element interface {
	element()
}

type (
	// Text is a literal run of prose.
	Text string
	// Use refers to a term defined elsewhere.
	Use string
	// Definition is the defining occurrence of a term.
	Definition string
	// Reference points at a heading by its text.
	Reference string
)

// Blank is a fill-in-the-blank marker. Its value is bound externally by path.
type Blank struct{}

// Child is a nested form, optionally headed. EmptyHeading marks a heading
// that is present but has no text; it still renders as a heading.
type Child struct {
	Heading      string
	EmptyHeading bool
	Form         *Form
}

// Component includes an external sub-document. A component whose Form is
// nil is reference-only: only Reference identifies it. A loaded component
// also carries the resolved Form and the publisher metadata in Meta.
type Component struct {
	Heading      string
	EmptyHeading bool
	Reference    ComponentReference
	Meta         *ComponentMeta
	Form         *Form
}

// ComponentReference identifies a component release and the substitutions
// made when incorporating it.
type ComponentReference struct {
	Component     string
	Version       string
	Substitutions Substitutions
}

// ComponentMeta describes a loaded component.
type ComponentMeta struct {
	Publisher string
	Name      string
	Version   string
}

// Substitutions lists replacements applied to a component. Blanks is keyed
// by the 1-based ordinal of the blank within the component.
type Substitutions struct {
	Terms    map[string]string
	Headings map[string]string
	Blanks   map[int]string
}

func (Text) element()       {}
func (Use) element()        {}
func (Definition) element() {}
func (Blank) element()      {}
func (Reference) element()  {}
func (Child) element()      {}
func (Component) element()  {}

// HasHeading reports whether the child carries a heading.
func (c Child) HasHeading() bool {
	return c.Heading != "" || c.EmptyHeading
}

// HasHeading reports whether the component carries a heading.
func (c Component) HasHeading() bool {
	return c.Heading != "" || c.EmptyHeading
}

// Loaded reports whether the component's own form was resolved.
func (c Component) Loaded() bool {
	return c.Form != nil
}

// Empty reports whether no substitution of any kind is listed.
func (s Substitutions) Empty() bool {
	return len(s.Terms) == 0 && len(s.Headings) == 0 && len(s.Blanks) == 0
}

// InSeries reports whether e is a series member: a child form or a component.
func InSeries(e Element) bool {
	switch e.(type) {
	case Child, Component:
		return true
	}
	return false
}

// ContainsHeading reports whether a series member, or any series member
// nested below it, carries a heading.
func ContainsHeading(e Element) bool {
	var f *Form
	switch v := e.(type) {
	case Child:
		if v.HasHeading() {
			return true
		}
		f = v.Form
	case Component:
		if v.HasHeading() {
			return true
		}
		f = v.Form
	default:
		return false
	}
	if f == nil {
		return false
	}
	for _, c := range f.Content {
		if InSeries(c) && ContainsHeading(c) {
			return true
		}
	}
	return false
}

// Value binds a fill-in value to the blank at a path.
type Value struct {
	Blank Path   `json:"blank" yaml:"blank"`
	Value string `json:"value" yaml:"value"`
}

// Annotation is a marginal note about the node at Path.
type Annotation struct {
	Path    Path   `json:"path" yaml:"path"`
	Level   string `json:"level" yaml:"level"`
	Message string `json:"message" yaml:"message"`
}
