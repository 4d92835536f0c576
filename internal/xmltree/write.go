package xmltree

import (
	"encoding/xml"
	"io"
	"strings"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Write serializes the tree as an XML document with the given indent width.
// Leaf text is written as parsed; whitespace-only text is normalized away by
// the indentation. For an element carrying both text and children, the text
// is emitted before the children, so the interleaving of mixed content is not
// preserved. Namespace prefixes are rebuilt from the xmlns declarations in
// scope; an element whose namespace has no declaration in scope is written
// with its bare local name.
func Write(w io.Writer, root *Element, indent int) error {
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	if err := writeElement(w, root, 0, indent, nsScope{}); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// nsScope tracks the namespace declarations visible at the current element.
type nsScope struct {
	defaultNS string
	prefixes  map[string]string // URI to prefix
}

func (s nsScope) push(attrs []Attr) nsScope {
	for _, a := range attrs {
		switch {
		case a.Space == "" && a.Local == "xmlns":
			s.defaultNS = a.Value
		case a.Space == "xmlns":
			m := make(map[string]string, len(s.prefixes)+1)
			for k, v := range s.prefixes {
				m[k] = v
			}
			m[a.Value] = a.Local
			s.prefixes = m
		}
	}
	return s
}

func (s nsScope) tagName(el *Element) string {
	if el.Space == "" || el.Space == s.defaultNS {
		return el.Name
	}
	if p, ok := s.prefixes[el.Space]; ok {
		return p + ":" + el.Name
	}
	return el.Name
}

func (s nsScope) attrName(a Attr) string {
	switch {
	case a.Space == "":
		return a.Local
	case a.Space == "xmlns":
		return "xmlns:" + a.Local
	}
	if p, ok := s.prefixes[a.Space]; ok {
		return p + ":" + a.Local
	}
	return a.Local
}

func writeElement(w io.Writer, el *Element, depth, indent int, scope nsScope) error {
	scope = scope.push(el.Attrs)
	tag := scope.tagName(el)

	pad := strings.Repeat(" ", depth*indent)
	open := pad + "<" + tag
	for _, a := range el.Attrs {
		open += ` ` + scope.attrName(a) + `="` + escape(a.Value) + `"`
	}

	text := strings.TrimSpace(el.Text)
	switch {
	case len(el.Children) == 0 && text == "":
		_, err := io.WriteString(w, open+"/>")
		return err
	case len(el.Children) == 0:
		_, err := io.WriteString(w, open+">"+escape(text)+"</"+tag+">")
		return err
	}

	if _, err := io.WriteString(w, open+">\n"); err != nil {
		return err
	}
	if text != "" {
		inner := strings.Repeat(" ", (depth+1)*indent)
		if _, err := io.WriteString(w, inner+escape(text)+"\n"); err != nil {
			return err
		}
	}
	for _, c := range el.Children {
		if err := writeElement(w, c, depth+1, indent, scope); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, pad+"</"+tag+">")
	return err
}

func escape(s string) string {
	var b strings.Builder
	// EscapeText only fails on a failing writer; strings.Builder cannot fail.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
