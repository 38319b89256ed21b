package form

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Segment is one step of a Path: a field name such as "content" or "form",
// or a content offset when Field is empty.
type Segment struct {
	Field string
	Index int
}

// IsIndex reports whether s is a content offset.
func (s Segment) IsIndex() bool {
	return s.Field == ""
}

func (s Segment) String() string {
	if s.IsIndex() {
		return strconv.Itoa(s.Index)
	}
	return s.Field
}

// Path addresses a node by its position from the root form, alternating
// "content", an offset into the parent's content, and "form" when the path
// descends into a child's form. Methods never modify the receiver.
type Path []Segment

// Content returns p extended by the content offset.
func (p Path) Content(offset int) Path {
	return p.extend(Segment{Field: "content"}, Segment{Index: offset})
}

// Form returns p extended by a descent into a child's form.
func (p Path) Form() Path {
	return p.extend(Segment{Field: "form"})
}

func (p Path) extend(segs ...Segment) Path {
	q := make(Path, len(p), len(p)+len(segs))
	copy(q, p)
	return append(q, segs...)
}

// Parent returns p without its last two segments. Annotations attach to
// the form containing the node they address.
func (p Path) Parent() Path {
	if len(p) < 2 {
		return Path{}
	}
	return p[:len(p)-2 : len(p)-2]
}

// Equal reports whether p and q have the same segments in the same order.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (p Path) MarshalJSON() ([]byte, error) {
	raw := make([]any, len(p))
	for i, s := range p {
		if s.IsIndex() {
			raw[i] = s.Index
		} else {
			raw[i] = s.Field
		}
	}
	return json.Marshal(raw)
}

func (p *Path) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "path must be an array")
	}
	path := make(Path, 0, len(raw))
	for i, r := range raw {
		var field string
		if err := json.Unmarshal(r, &field); err == nil {
			if field == "" {
				return errors.Errorf("path segment %d is an empty string", i)
			}
			path = append(path, Segment{Field: field})
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(r))
		dec.UseNumber()
		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return errors.Errorf("path segment %d is neither a string nor an integer", i)
		}
		index, err := strconv.Atoi(n.String())
		if err != nil {
			return errors.Errorf("path segment %d is not an integer: %s", i, n)
		}
		path = append(path, Segment{Index: index})
	}
	*p = path
	return nil
}

func (p *Path) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return errors.Errorf("line %d: path must be a sequence", node.Line)
	}
	path := make(Path, 0, len(node.Content))
	for _, n := range node.Content {
		if n.Kind != yaml.ScalarNode {
			return errors.Errorf("line %d: path segment must be a scalar", n.Line)
		}
		if n.Tag == "!!int" {
			index, err := strconv.Atoi(n.Value)
			if err != nil {
				return errors.Wrapf(err, "line %d", n.Line)
			}
			path = append(path, Segment{Index: index})
			continue
		}
		if n.Value == "" {
			return errors.Errorf("line %d: empty path segment", n.Line)
		}
		path = append(path, Segment{Field: n.Value})
	}
	*p = path
	return nil
}
