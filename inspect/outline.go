package inspect

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/hhhapz/formhtml/form"
)

// Outline draws the tree of child forms, components and blanks in f, each
// labelled with its path. Bound values are shown next to their blanks.
func Outline(f *form.Form, values []form.Value) string {
	tree := treeprint.NewWithRoot("form")
	outline(tree, f, form.Path{}, values)
	return tree.String()
}

func outline(tree treeprint.Tree, f *form.Form, path form.Path, values []form.Value) {
	if f == nil {
		return
	}
	for i, e := range f.Content {
		p := path.Content(i)
		switch v := e.(type) {
		case form.Blank:
			text := "blank " + p.String()
			for _, value := range values {
				if value.Blank.Equal(p) {
					text += fmt.Sprintf(" = %q", value.Value)
					break
				}
			}
			tree.AddNode(text)
		case form.Child:
			branch := tree.AddBranch(label("form", v.Heading, p.Form()))
			outline(branch, v.Form, p.Form(), values)
		case form.Component:
			name := v.Reference.Component + "/" + v.Reference.Version
			if !v.Loaded() {
				tree.AddNode(label("component "+name, v.Heading, p.Form()))
				continue
			}
			branch := tree.AddBranch(label("component "+name, v.Heading, p.Form()))
			outline(branch, v.Form, p.Form(), values)
		}
	}
}

func label(kind, heading string, path form.Path) string {
	if heading == "" {
		return kind + " " + path.String()
	}
	return fmt.Sprintf("%s %q %s", kind, heading, path)
}
