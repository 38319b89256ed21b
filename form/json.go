package form

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// Parse decodes a form from its JSON representation. Strings in a content
// array are text; objects are recognized by their keys: "use",
// "definition", "blank", "reference", "component" (a string for a
// reference-only component, an object of metadata for a loaded one) and
// "form" for a child.
func Parse(data []byte) (*Form, error) {
	return decodeForm(data, Path{})
}

func (f *Form) UnmarshalJSON(data []byte) error {
	parsed, err := decodeForm(data, Path{})
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}

type rawForm struct {
	Content     []json.RawMessage `json:"content"`
	Conspicuous json.RawMessage   `json:"conspicuous"`
}

func decodeForm(data []byte, path Path) (*Form, error) {
	var raw rawForm
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "form at %s", path)
	}
	if raw.Content == nil {
		return nil, errors.Errorf("form at %s: missing content", path)
	}

	f := &Form{Content: make([]Element, 0, len(raw.Content))}
	conspicuous, err := decodeConspicuous(raw.Conspicuous)
	if err != nil {
		return nil, errors.Wrapf(err, "form at %s", path)
	}
	f.Conspicuous = conspicuous

	for i, r := range raw.Content {
		e, err := decodeElement(r, path.Content(i))
		if err != nil {
			return nil, err
		}
		f.Content = append(f.Content, e)
	}
	return f, nil
}

// decodeConspicuous accepts a boolean or the string marker used by older
// documents ("yes").
func decodeConspicuous(raw json.RawMessage) (bool, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false, errors.New("conspicuous must be a boolean or a string")
	}
	return s != "", nil
}

func decodeElement(data json.RawMessage, path Path) (Element, error) {
	if string(data) == "null" {
		return nil, errors.Errorf("content at %s is neither a string nor an object", path)
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		return Text(text), nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, errors.Errorf("content at %s is neither a string nor an object", path)
	}

	str := func(key string) (string, error) {
		var s string
		if err := json.Unmarshal(obj[key], &s); err != nil {
			return "", errors.Errorf("content at %s: %q must be a string", path, key)
		}
		return s, nil
	}

	switch {
	case has(obj, "use"):
		s, err := str("use")
		return Use(s), err
	case has(obj, "definition"):
		s, err := str("definition")
		return Definition(s), err
	case has(obj, "blank"):
		return Blank{}, nil
	case has(obj, "component"):
		return decodeComponent(data, obj, path)
	case has(obj, "reference"):
		s, err := str("reference")
		return Reference(s), err
	case has(obj, "form"), has(obj, "heading"):
		return decodeChild(obj, path)
	}
	return nil, errors.Errorf("content at %s: unrecognized element", path)
}

func has(obj map[string]json.RawMessage, key string) bool {
	_, ok := obj[key]
	return ok
}

// decodeHeading returns the heading and whether the key is present at all.
func decodeHeading(obj map[string]json.RawMessage, path Path) (string, bool, error) {
	if !has(obj, "heading") {
		return "", false, nil
	}
	var heading string
	if err := json.Unmarshal(obj["heading"], &heading); err != nil {
		return "", false, errors.Errorf("content at %s: heading must be a string", path)
	}
	return heading, true, nil
}

func decodeChild(obj map[string]json.RawMessage, path Path) (Element, error) {
	heading, headed, err := decodeHeading(obj, path)
	if err != nil {
		return nil, err
	}
	if !has(obj, "form") {
		return nil, errors.Errorf("content at %s: child is missing its form", path)
	}
	f, err := decodeForm(obj["form"], path.Form())
	if err != nil {
		return nil, err
	}
	return Child{Heading: heading, EmptyHeading: headed && heading == "", Form: f}, nil
}

type rawReference struct {
	Component     string           `json:"component"`
	Version       string           `json:"version"`
	Substitutions rawSubstitutions `json:"substitutions"`
}

type rawSubstitutions struct {
	Terms    map[string]string `json:"terms"`
	Headings map[string]string `json:"headings"`
	Blanks   map[string]string `json:"blanks"`
}

func (r rawSubstitutions) decode(path Path) (Substitutions, error) {
	subs := Substitutions{
		Terms:    r.Terms,
		Headings: r.Headings,
	}
	if len(r.Blanks) > 0 {
		subs.Blanks = make(map[int]string, len(r.Blanks))
		for key, value := range r.Blanks {
			n, err := strconv.Atoi(key)
			if err != nil || n < 1 {
				return Substitutions{}, errors.Errorf("content at %s: blank substitution %q is not a positive ordinal", path, key)
			}
			subs.Blanks[n] = value
		}
	}
	return subs, nil
}

func decodeComponent(data json.RawMessage, obj map[string]json.RawMessage, path Path) (Element, error) {
	heading, headed, err := decodeHeading(obj, path)
	if err != nil {
		return nil, err
	}
	c := Component{Heading: heading, EmptyHeading: headed && heading == ""}

	var id string
	if err := json.Unmarshal(obj["component"], &id); err == nil {
		// Reference-only: identifying fields sit beside "component".
		var ref rawReference
		if err := json.Unmarshal(data, &ref); err != nil {
			return nil, errors.Wrapf(err, "content at %s", path)
		}
		if c.Reference, err = ref.decode(path); err != nil {
			return nil, err
		}
		return c, nil
	}

	var meta ComponentMeta
	if err := json.Unmarshal(obj["component"], &meta); err != nil {
		return nil, errors.Errorf("content at %s: component must be a string or an object", path)
	}
	c.Meta = &meta

	if !has(obj, "reference") {
		return nil, errors.Errorf("content at %s: loaded component is missing its reference", path)
	}
	var ref rawReference
	if err := json.Unmarshal(obj["reference"], &ref); err != nil {
		return nil, errors.Wrapf(err, "content at %s: reference", path)
	}
	if c.Reference, err = ref.decode(path); err != nil {
		return nil, err
	}

	if !has(obj, "form") {
		return nil, errors.Errorf("content at %s: loaded component is missing its form", path)
	}
	if c.Form, err = decodeForm(obj["form"], path.Form()); err != nil {
		return nil, err
	}
	return c, nil
}

func (r rawReference) decode(path Path) (ComponentReference, error) {
	subs, err := r.Substitutions.decode(path)
	if err != nil {
		return ComponentReference{}, err
	}
	return ComponentReference{
		Component:     r.Component,
		Version:       r.Version,
		Substitutions: subs,
	}, nil
}

// MarshalJSON encodes the form canonically, with object keys sorted.
func (f *Form) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.tree())
}

func (f *Form) tree() map[string]any {
	content := make([]any, len(f.Content))
	for i, e := range f.Content {
		content[i] = elementTree(e)
	}
	obj := map[string]any{"content": content}
	if f.Conspicuous {
		obj["conspicuous"] = true
	}
	return obj
}

func elementTree(e Element) any {
	switch v := e.(type) {
	case Text:
		return string(v)
	case Use:
		return map[string]any{"use": string(v)}
	case Definition:
		return map[string]any{"definition": string(v)}
	case Blank:
		return map[string]any{"blank": ""}
	case Reference:
		return map[string]any{"reference": string(v)}
	case Child:
		obj := map[string]any{}
		if v.Form != nil {
			obj["form"] = v.Form.tree()
		}
		if v.HasHeading() {
			obj["heading"] = v.Heading
		}
		return obj
	case Component:
		var obj map[string]any
		if v.Loaded() {
			obj = map[string]any{
				"reference": referenceTree(v.Reference),
				"form":      v.Form.tree(),
			}
			if v.Meta != nil {
				obj["component"] = map[string]any{
					"publisher": v.Meta.Publisher,
					"name":      v.Meta.Name,
					"version":   v.Meta.Version,
				}
			}
		} else {
			obj = referenceTree(v.Reference)
		}
		if v.HasHeading() {
			obj["heading"] = v.Heading
		}
		return obj
	}
	return nil
}

func referenceTree(r ComponentReference) map[string]any {
	blanks := make(map[string]string, len(r.Substitutions.Blanks))
	for n, value := range r.Substitutions.Blanks {
		blanks[strconv.Itoa(n)] = value
	}
	terms, headings := r.Substitutions.Terms, r.Substitutions.Headings
	if terms == nil {
		terms = map[string]string{}
	}
	if headings == nil {
		headings = map[string]string{}
	}
	return map[string]any{
		"component": r.Component,
		"version":   r.Version,
		"substitutions": map[string]any{
			"terms":    terms,
			"headings": headings,
			"blanks":   blanks,
		},
	}
}
