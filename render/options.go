package render

import "github.com/hhhapz/formhtml/form"

// ComponentStyle selects how loaded components are shown.
type ComponentStyle string

const (
	// StyleCopy renders the component's form in place, like any child.
	StyleCopy ComponentStyle = "copy"
	// StyleReference renders only a notice incorporating the component.
	StyleReference ComponentStyle = "reference"
	// StyleBoth renders the notice followed by the quoted component.
	StyleBoth ComponentStyle = "both"
)

const (
	DefaultIncorporateText = "Incorporate"
	DefaultQuoteText       = "Quoting for convenience, with any conflicts resolved in favor of the standard:"
)

// Options controls a render. The zero value renders legacy div markup with
// default component handling.
type Options struct {
	// HTML5 switches from div-based markup to article, section, aside and
	// dfn elements.
	HTML5 bool
	// Lists renders series without any headings as ordered lists.
	Lists bool
	// IDs gives headings slug IDs and turns references into links.
	IDs bool
	// Complete makes a blank without a value an error.
	Complete bool
	// Smartify converts ASCII punctuation in the form to Unicode.
	Smartify bool
	// Hash adds a line with the form's BLAKE3 content hash. See form.Hash.
	Hash bool

	Title   string
	Edition string

	ComponentStyle  ComponentStyle
	IncorporateText string
	QuoteText       string

	Annotations []form.Annotation

	// Depth is added to the heading level of every section.
	Depth int
	// ClassNames are added to the outermost element.
	ClassNames []string
}

// normalize resolves defaults and rejects unknown settings.
func (o Options) normalize() (Options, error) {
	switch o.ComponentStyle {
	case "":
		o.ComponentStyle = StyleBoth
	case StyleCopy, StyleReference, StyleBoth:
	default:
		return o, &ConfigError{Option: "component style", Value: string(o.ComponentStyle)}
	}
	if o.IncorporateText == "" {
		o.IncorporateText = DefaultIncorporateText
	}
	if o.QuoteText == "" {
		o.QuoteText = DefaultQuoteText
	}
	o.ClassNames = append([]string(nil), o.ClassNames...)
	return o, nil
}
