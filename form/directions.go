package form

// Direction names the blank at a path so values can be supplied by label.
type Direction struct {
	Label string `json:"label" yaml:"label"`
	Blank Path   `json:"blank" yaml:"blank"`
}

// PrepareValues binds values to blanks through directions. Bindings follow
// the order of directions; directions without a value are skipped.
func PrepareValues(values map[string]string, directions []Direction) []Value {
	var bound []Value
	for _, d := range directions {
		value, ok := values[d.Label]
		if !ok {
			continue
		}
		bound = append(bound, Value{Blank: d.Blank, Value: value})
	}
	return bound
}
