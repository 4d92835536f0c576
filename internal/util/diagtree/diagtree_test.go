package diagtree

import (
	"bytes"
	"strings"
	"testing"
)

func TestPathTitles(t *testing.T) {
	root := &Node{}
	leaf := root.Label("Documents").Value("pom.xml").Label("children")
	leaf.SetDescription(Warn, "out of order")

	parts := leaf.PathTitles()
	want := []string{"Documents", `"pom.xml"`, "children"}
	if len(parts) != len(want) {
		t.Fatalf("unexpected length %d (%v)", len(parts), parts)
	}
	for i := range parts {
		if parts[i] != want[i] {
			t.Fatalf("unexpected part[%d]=%q want %q (%v)", i, parts[i], want[i], parts)
		}
	}
}

func TestWalkDisplayed(t *testing.T) {
	root := &Node{}
	shown := root.Label("Documents").Value("a.xml")
	shown.SetDescription(Danger, "unordered")
	root.Label("Documents").Value("b.xml")

	count := 0
	root.WalkDisplayed(func(n *Node) {
		if n.Title != "" {
			count++
		}
	})

	if count != 2 {
		t.Fatalf("expected 2 displayed titled nodes, got %d", count)
	}
}

func TestDisplayCountsDescribedEntries(t *testing.T) {
	root := &Node{}
	root.Value("a.xml").SetDescription(Warn, "unordered")
	root.Value("b.xml").SetDescription(Danger, "unordered")
	root.Value("c.xml")

	var out bytes.Buffer
	n := root.Display(&out, -1)

	if n != 2 {
		t.Fatalf("expected 2 described entries, got %d", n)
	}
	text := out.String()
	if !strings.Contains(text, `- [warn] "a.xml": unordered`) {
		t.Fatalf("missing warn entry in:\n%s", text)
	}
	if strings.Contains(text, "c.xml") {
		t.Fatalf("undisplayed node rendered:\n%s", text)
	}
}

func TestDisplayCapStillCountsAll(t *testing.T) {
	root := &Node{}
	root.Value("a.xml").SetDescription(Warn, "unordered")
	root.Value("b.xml").SetDescription(Warn, "unordered")
	root.Value("c.xml").SetDescription(Warn, "unordered")

	var out bytes.Buffer
	n := root.Display(&out, 1)

	if n != 3 {
		t.Fatalf("expected count 3 with cap 1, got %d", n)
	}
	if lines := strings.Count(out.String(), "\n"); lines != 1 {
		t.Fatalf("expected 1 rendered line, got %d:\n%s", lines, out.String())
	}
}

func TestPruneDropsEmptySubtrees(t *testing.T) {
	root := &Node{}
	root.Label("Documents").Value("kept.xml").SetDescription(Info, "sorted")
	root.Label("Documents").Value("dropped.xml")

	root.Prune()

	docs := root.children[0]
	if len(docs.children) != 1 || docs.children[0].Title != `"kept.xml"` {
		t.Fatalf("unexpected children after prune: %+v", docs.children)
	}
}
