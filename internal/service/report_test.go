package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sortxml/sortxml/internal/util/diagtree"
)

func TestRenderTextSummaryLine(t *testing.T) {
	tests := []struct {
		name     string
		report   Report
		expected string
	}{
		{
			name:     "no findings",
			report:   Report{RunID: "run", Violations: &diagtree.Node{}},
			expected: "Looking good! All documents are in canonical order.",
		},
		{
			name:     "one finding",
			report:   Report{RunID: "run", Violations: violations("a.xml")},
			expected: "Found 1 unordered or unreadable document:",
		},
		{
			name:     "many findings",
			report:   Report{RunID: "run", Violations: violations("a.xml", "b.xml")},
			expected: "Found 2 unordered or unreadable documents:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			RenderText(&out, tt.report, 500)
			if !strings.Contains(out.String(), tt.expected) {
				t.Fatalf("expected output to contain %q, got:\n%s", tt.expected, out.String())
			}
		})
	}
}

func TestRenderTextListsDocuments(t *testing.T) {
	report := Report{
		RunID:      "run",
		Violations: violations("unordered.xml"),
		Unordered:  1,
		Verified:   2,
	}

	var out bytes.Buffer
	RenderText(&out, report, 500)

	text := out.String()
	if !strings.Contains(text, `"unordered.xml"`) {
		t.Fatalf("expected document entry, got:\n%s", text)
	}
	if !strings.Contains(text, "2 verified, 1 unordered, 0 failed") {
		t.Fatalf("expected totals line, got:\n%s", text)
	}
}

func violations(targets ...string) *diagtree.Node {
	root := &diagtree.Node{}
	for _, target := range targets {
		root.Label("Documents").Value(target).SetDescription(diagtree.Warn, "out of order")
	}
	return root
}
