package xmltree

// Attr is an attribute on an element. Space holds the resolved namespace URI,
// or the literal "xmlns" for prefixed namespace declarations. Attributes are
// preserved so sorted documents round-trip, but they carry no ordering
// significance.
type Attr struct {
	Space string
	Local string
	Value string
}

// Element is a node in a parsed XML document: a tag name, the text directly
// under the tag, and an ordered list of child elements. Name is the local tag
// name; Space is the resolved namespace URI, empty for unqualified elements.
// The parent exclusively owns its children; elements never reference
// ancestors.
type Element struct {
	Name     string
	Space    string
	Text     string
	Attrs    []Attr
	Children []*Element
}

// Clone returns a deep copy of the element and its subtree.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	out := &Element{
		Name:  e.Name,
		Space: e.Space,
		Text:  e.Text,
	}
	if len(e.Attrs) > 0 {
		out.Attrs = make([]Attr, len(e.Attrs))
		copy(out.Attrs, e.Attrs)
	}
	if len(e.Children) > 0 {
		out.Children = make([]*Element, len(e.Children))
		for i, c := range e.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// ChildNames returns the tag names of the direct children, in document order.
func (e *Element) ChildNames() []string {
	names := make([]string, len(e.Children))
	for i, c := range e.Children {
		names[i] = c.Name
	}
	return names
}
