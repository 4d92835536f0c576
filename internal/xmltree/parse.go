package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse reads an XML document and returns its root element. Comments and
// processing instructions are dropped; character data directly under an
// element becomes its Text, exactly as written (whitespace included). The
// decoder resolves namespace prefixes, so element and attribute names are
// stored as a local name plus the namespace URI; the xmlns declarations
// themselves survive as ordinary attributes.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local, Space: t.Name.Space}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Space: a.Name.Space, Local: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("malformed XML: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				// The decoder reuses the CharData buffer.
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("document has no root element")
	}
	return root, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(doc string) (*Element, error) {
	return Parse(strings.NewReader(doc))
}
