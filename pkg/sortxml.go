// Package pkg is the public library surface of sortxml: parsing, canonical
// sorting and order verification of XML element trees.
package pkg

import (
	"io"

	"github.com/sortxml/sortxml/internal/sorter"
	"github.com/sortxml/sortxml/internal/verify"
	"github.com/sortxml/sortxml/internal/xmltree"
)

// Element is the parsed XML tree consumed and produced by this package.
type Element = xmltree.Element

// OrderedResult describes the outcome of an order verification.
type OrderedResult = verify.OrderedResult

// Parse reads an XML document into an element tree.
func Parse(r io.Reader) (*Element, error) {
	return xmltree.Parse(r)
}

// Sort returns a canonically ordered copy of the tree; names on the order
// list sort first, the rest alphabetically. The input is not mutated.
func Sort(el *Element, order []string) *Element {
	return sorter.Sort(el, sorter.NewOrder(order))
}

// Compare reports whether original is already in canonical's sibling order.
func Compare(original, canonical *Element) OrderedResult {
	return verify.Compare(original, canonical)
}

// VerifyDocument sorts the tree and compares the original against it.
func VerifyDocument(el *Element, order []string) OrderedResult {
	return verify.Compare(el, Sort(el, order))
}
