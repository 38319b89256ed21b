package form

// GroupType tells prose runs from series runs.
type GroupType int

const (
	// Paragraph is a maximal run of inline elements.
	Paragraph GroupType = iota
	// Series is a maximal run of child forms and components.
	Series
)

func (t GroupType) String() string {
	if t == Series {
		return "series"
	}
	return "paragraph"
}

// Group is a run of consecutive content elements of one GroupType.
type Group struct {
	Type    GroupType
	Content []Element
}

// Groups splits f's content into alternating paragraph and series runs.
// The groups cover the content exactly once and in order, so summing the
// lengths of preceding groups gives a group's offset into f.Content.
func Groups(f *Form) []Group {
	var groups []Group
	start := 0
	for i := 1; i <= len(f.Content); i++ {
		if i < len(f.Content) && InSeries(f.Content[i]) == InSeries(f.Content[start]) {
			continue
		}
		typ := Paragraph
		if InSeries(f.Content[start]) {
			typ = Series
		}
		groups = append(groups, Group{
			Type:    typ,
			Content: f.Content[start:i:i],
		})
		start = i
	}
	return groups
}
