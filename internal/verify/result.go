package verify

import "fmt"

type kind int

const (
	kindOrdered kind = iota
	kindNameDiffers
	kindTextDiffers
	kindChildrenDiffer
	kindChildCountDiffers
	kindChildOccurrencesDiffer
)

// OrderedResult is the outcome of comparing an original element tree against
// its canonical counterpart. Exactly one variant is populated per value; a
// result is created once, consumed, and never mutated.
type OrderedResult struct {
	kind kind

	// kindNameDiffers
	expectedName string
	actualName   string

	// kindTextDiffers; texts are kept raw for diagnostics
	elementName  string
	originalText string
	newText      string

	// kindChildrenDiffer / kindChildCountDiffers
	parentName     string
	index          int
	originalChild  string
	canonicalChild string
	originalCount  int
	canonicalCount int
}

// Ordered reports that the trees are order-equivalent.
func Ordered() OrderedResult {
	return OrderedResult{kind: kindOrdered}
}

// NameDiffers reports mismatched tag names at corresponding tree positions.
func NameDiffers(expected, actual string) OrderedResult {
	return OrderedResult{
		kind:         kindNameDiffers,
		expectedName: expected,
		actualName:   actual,
	}
}

// TextDiffers reports text content that differs even after whitespace is
// removed. The raw, unstripped values are carried for display.
func TextDiffers(element, originalText, newText string) OrderedResult {
	return OrderedResult{
		kind:         kindTextDiffers,
		elementName:  element,
		originalText: originalText,
		newText:      newText,
	}
}

// ChildrenDiffer reports a sibling-order divergence under parent at the given
// child index. Either child name may be empty when one side has no
// counterpart at that position.
func ChildrenDiffer(parent string, index int, originalChild, canonicalChild string) OrderedResult {
	return OrderedResult{
		kind:           kindChildrenDiffer,
		parentName:     parent,
		index:          index,
		originalChild:  originalChild,
		canonicalChild: canonicalChild,
	}
}

// ChildCountDiffers reports that parent has a different number of child
// elements than its canonical counterpart.
func ChildCountDiffers(parent string, originalCount, canonicalCount int) OrderedResult {
	return OrderedResult{
		kind:           kindChildCountDiffers,
		parentName:     parent,
		originalCount:  originalCount,
		canonicalCount: canonicalCount,
	}
}

// ChildOccurrencesDiffer reports that the child name appears a different
// number of times under parent than in the canonical sequence, even though
// the total child counts agree.
func ChildOccurrencesDiffer(parent, child string, originalCount, canonicalCount int) OrderedResult {
	return OrderedResult{
		kind:           kindChildOccurrencesDiffer,
		parentName:     parent,
		originalChild:  child,
		originalCount:  originalCount,
		canonicalCount: canonicalCount,
	}
}

// IsOrdered reports whether the compared trees were order-equivalent.
func (r OrderedResult) IsOrdered() bool {
	return r.kind == kindOrdered
}

// ErrorMessage renders the divergence as a single descriptive line. It is
// defined only for non-ordered results.
func (r OrderedResult) ErrorMessage() string {
	switch r.kind {
	case kindNameDiffers:
		return fmt.Sprintf("element name mismatch: expected <%s>, found <%s>",
			r.expectedName, r.actualName)
	case kindTextDiffers:
		return fmt.Sprintf("text content of <%s> differs: %q should be %q",
			r.elementName, r.originalText, r.newText)
	case kindChildrenDiffer:
		switch {
		case r.originalChild == "":
			return fmt.Sprintf("children of <%s> differ at position %d: element <%s> has no counterpart",
				r.parentName, r.index, r.canonicalChild)
		case r.canonicalChild == "":
			return fmt.Sprintf("children of <%s> differ at position %d: element <%s> has no counterpart",
				r.parentName, r.index, r.originalChild)
		case r.originalChild == r.canonicalChild:
			return fmt.Sprintf("children of <%s> differ at position %d: the <%s> elements are in a different order",
				r.parentName, r.index, r.originalChild)
		default:
			return fmt.Sprintf("children of <%s> differ at position %d: found <%s>, expected <%s>",
				r.parentName, r.index, r.originalChild, r.canonicalChild)
		}
	case kindChildCountDiffers:
		return fmt.Sprintf("<%s> has %d child elements but should have %d",
			r.parentName, r.originalCount, r.canonicalCount)
	case kindChildOccurrencesDiffer:
		return fmt.Sprintf("<%s> has %d <%s> child elements but should have %d",
			r.parentName, r.originalCount, r.originalChild, r.canonicalCount)
	}
	return ""
}
