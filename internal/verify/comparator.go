package verify

import (
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/sortxml/sortxml/internal/xmltree"
)

// Compare walks the original and canonical trees in lock-step and decides
// whether the original is already in canonical sibling order. At every level
// the checks run in order: tag name, whitespace-insensitive text, children;
// the first failing check wins. Compare is pure and never returns an error;
// a malformed pairing surfaces as an ordinary divergence result.
func Compare(original, canonical *xmltree.Element) OrderedResult {
	if original.Name != canonical.Name {
		return NameDiffers(canonical.Name, original.Name)
	}
	if stripWhitespace(original.Text) != stripWhitespace(canonical.Text) {
		return TextDiffers(original.Name, original.Text, canonical.Text)
	}
	return compareChildren(original.Name, original.Children, canonical.Children)
}

// stripWhitespace removes every whitespace rune, not just the ends. The
// canonicalizer reformats indentation freely, so "a b" and "ab" are equal
// but "a b" and "ba" are not.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// compareChildren decides whether original already matches canonical's
// sibling order. Correspondence between same-named siblings is positional
// within the name group: the k-th occurrence of a name in the original pairs
// with the k-th occurrence of that name in the canonical sequence. No
// content-based matching is attempted.
func compareChildren(parent string, original, canonical []*xmltree.Element) OrderedResult {
	if len(original) != len(canonical) {
		return ChildCountDiffers(parent, len(original), len(canonical))
	}

	originalCounts := nameCounts(original)
	canonicalCounts := nameCounts(canonical)

	// A name present on one side only is structural damage, not reordering.
	originalNames := mapset.NewThreadUnsafeSet(names(original)...)
	canonicalNames := mapset.NewThreadUnsafeSet(names(canonical)...)
	if diff := originalNames.SymmetricDifference(canonicalNames); diff.Cardinality() > 0 {
		for i, c := range original {
			if diff.Contains(c.Name) {
				return ChildrenDiffer(parent, i, c.Name, "")
			}
		}
		for i, c := range canonical {
			if diff.Contains(c.Name) {
				return ChildrenDiffer(parent, i, "", c.Name)
			}
		}
	}
	for _, c := range original {
		if oc, cc := originalCounts[c.Name], canonicalCounts[c.Name]; oc != cc {
			return ChildOccurrencesDiffer(parent, c.Name, oc, cc)
		}
	}

	canonicalOccurrences := occurrencesByName(canonical)
	seen := make(map[string]int, len(originalCounts))
	for i, child := range original {
		k := seen[child.Name]
		seen[child.Name]++

		// Unique names must line up positionally; a mismatch that involves
		// a duplicate-name group is resolved by occurrence pairing below.
		if child.Name != canonical[i].Name &&
			originalCounts[child.Name] == 1 && originalCounts[canonical[i].Name] == 1 {
			return ChildrenDiffer(parent, i, child.Name, canonical[i].Name)
		}

		partner := canonical[canonicalOccurrences[child.Name][k]]
		if res := Compare(child, partner); !res.IsOrdered() {
			if originalCounts[child.Name] > 1 {
				return ChildrenDiffer(parent, i, child.Name, child.Name)
			}
			return res
		}
	}
	return Ordered()
}

func names(els []*xmltree.Element) []string {
	out := make([]string, len(els))
	for i, e := range els {
		out[i] = e.Name
	}
	return out
}

func nameCounts(els []*xmltree.Element) map[string]int {
	counts := make(map[string]int, len(els))
	for _, e := range els {
		counts[e.Name]++
	}
	return counts
}

func occurrencesByName(els []*xmltree.Element) map[string][]int {
	occ := make(map[string][]int)
	for i, e := range els {
		occ[e.Name] = append(occ[e.Name], i)
	}
	return occ
}
