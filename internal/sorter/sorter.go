// Package sorter produces the canonical ordering of an XML tree: siblings
// are reordered by a configured priority list, then lexicographically, while
// same-named siblings keep their relative order.
package sorter

import (
	"sort"

	"github.com/sortxml/sortxml/internal/xmltree"
)

// Order ranks element names. Names on the priority list sort before unlisted
// names and keep the list's relative order; unlisted names sort
// lexicographically.
type Order struct {
	priority map[string]int
}

// NewOrder builds an Order from a priority list of element names.
func NewOrder(names []string) Order {
	priority := make(map[string]int, len(names))
	for i, n := range names {
		if _, ok := priority[n]; ok {
			continue
		}
		priority[n] = i
	}
	return Order{priority: priority}
}

// Less reports whether an element named a sorts before one named b.
func (o Order) Less(a, b string) bool {
	ra, aListed := o.priority[a]
	rb, bListed := o.priority[b]
	switch {
	case aListed && bListed:
		return ra < rb
	case aListed:
		return true
	case bListed:
		return false
	}
	return a < b
}

// Sort returns a canonically ordered deep copy of the tree. The input is
// never mutated. The sort is stable, so duplicate-named siblings keep their
// document order, which is what makes occurrence-based verification exact.
func Sort(el *xmltree.Element, order Order) *xmltree.Element {
	out := el.Clone()
	sortInPlace(out, order)
	return out
}

func sortInPlace(el *xmltree.Element, order Order) {
	sort.SliceStable(el.Children, func(i, j int) bool {
		return order.Less(el.Children[i].Name, el.Children[j].Name)
	})
	for _, c := range el.Children {
		sortInPlace(c, order)
	}
}
