// Package diagtree builds the diagnostics tree rendered by batch
// verification reports. Nodes are created lazily while walking documents and
// only nodes that received a description (or have descendants that did) are
// displayed.
package diagtree

import (
	"fmt"
	"io"
	"strings"
)

type Node struct {
	Title       string
	Description string
	Severity    Severity

	children      []*Node
	childrenByKey map[string]*Node
	doDisplay     bool
	parent        *Node
}

func (n *Node) child(title string) *Node {
	if n.childrenByKey != nil {
		if v, ok := n.childrenByKey[title]; ok {
			return v
		}
	}
	v := &Node{
		Title:  title,
		parent: n,
	}
	if n.childrenByKey == nil {
		n.childrenByKey = map[string]*Node{}
	}
	n.childrenByKey[title] = v
	n.children = append(n.children, v)
	return v
}

// Label adds or retrieves a child node for a fixed category name.
func (n *Node) Label(name string) *Node {
	return n.child(name)
}

// Value adds or retrieves a child node for a domain value such as a file
// path or element name.
func (n *Node) Value(value string) *Node {
	return n.child(fmt.Sprintf("%q", value))
}

// SetDescription marks the node displayed, along with its ancestors.
func (n *Node) SetDescription(severity Severity, msg string, a ...any) {
	for v := n; v != nil && !v.doDisplay; v = v.parent {
		v.doDisplay = true
	}
	n.Description = fmt.Sprintf(msg, a...)
	n.Severity = severity
}

// PathTitles returns the titles from the root down to this node.
func (n *Node) PathTitles() []string {
	if n == nil {
		return nil
	}
	var parts []string
	for v := n; v != nil; v = v.parent {
		if v.Title == "" {
			continue
		}
		parts = append(parts, v.Title)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return parts
}

// Prune drops every subtree that has nothing to display.
func (n *Node) Prune() {
	var kept []*Node
	for _, c := range n.children {
		if !c.doDisplay {
			continue
		}
		kept = append(kept, c)
		c.Prune()
	}
	n.children = kept
	if len(kept) == 0 {
		n.childrenByKey = nil
		return
	}
	n.childrenByKey = make(map[string]*Node, len(kept))
	for _, c := range kept {
		n.childrenByKey[c.Title] = c
	}
}

// WalkDisplayed visits every displayed node in document order.
func (n *Node) WalkDisplayed(visit func(*Node)) {
	if n == nil || visit == nil || !n.doDisplay {
		return
	}
	visit(n)
	for _, c := range n.children {
		c.WalkDisplayed(visit)
	}
}

// cappedWriter silently swallows writes after max lines have been written;
// max of -1 means unlimited.
type cappedWriter struct {
	remaining int
	out       io.Writer
}

func (c *cappedWriter) line(s string) {
	if c.remaining == 0 {
		return
	}
	if c.remaining > 0 {
		c.remaining--
	}
	// Writing to the report buffer cannot meaningfully fail.
	_, _ = io.WriteString(c.out, s+"\n")
}

// Display renders the displayed nodes as an indented list and returns the
// number of described entries, counting entries suppressed by max.
func (n *Node) Display(out io.Writer, max int) int {
	w := &cappedWriter{remaining: max, out: out}
	return n.display(w, 0)
}

func (n *Node) display(w *cappedWriter, depth int) int {
	if n == nil || !n.doDisplay {
		return 0
	}

	described := 0
	if n.Title != "" {
		line := strings.Repeat("  ", depth) + "- "
		if n.Severity != None {
			line += n.Severity.String() + " "
		}
		line += n.Title
		if n.Description != "" {
			described++
			line += ": " + n.Description
		}
		w.line(line)
		depth++
	}

	for _, c := range n.children {
		described += c.display(w, depth)
	}
	return described
}

// Severity of a displayed node.
type Severity struct{ s string }

var (
	None   = Severity{""}
	Info   = Severity{"[info]"}
	Warn   = Severity{"[warn]"}
	Danger = Severity{"[error]"}
)

func (s Severity) String() string {
	return s.s
}
