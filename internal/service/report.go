package service

import (
	"bytes"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/sortxml/sortxml/internal/util/diagtree"
	"github.com/sortxml/sortxml/internal/verify"
)

// FileResult is the verification outcome for a single document.
type FileResult struct {
	Target string
	Result verify.OrderedResult
	Err    error
}

// Report captures a batch verification run for the text renderer and for
// policy decisions.
type Report struct {
	RunID      string
	Results    []FileResult
	Violations *diagtree.Node

	Verified  int
	Unordered int
	Failed    int
}

// VerifyFiles verifies every target and aggregates the outcomes.
func (s *Service) VerifyFiles(targets []string) Report {
	report := Report{
		RunID:      uuid.NewString(),
		Violations: &diagtree.Node{},
	}

	for _, target := range targets {
		s.log.Info("Verifying file " + target)
		res, err := s.VerifyTarget(target)
		report.Results = append(report.Results, FileResult{Target: target, Result: res, Err: err})

		node := report.Violations.Label("Documents").Value(target)
		switch {
		case err != nil:
			report.Failed++
			node.SetDescription(diagtree.Danger, "%v", err)
		case !res.IsOrdered():
			report.Unordered++
			node.SetDescription(diagtree.Warn, "%s", res.ErrorMessage())
		default:
			report.Verified++
		}
	}

	report.Violations.Prune()
	return report
}

// ApplyPolicy runs the configured on-unordered policy over a report. Load
// failures always make the run fail.
func (s *Service) ApplyPolicy(report Report) error {
	var firstErr error
	for _, r := range report.Results {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		if err := s.Remediate(r.Target, r.Result); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// RenderText writes the human-readable verification report.
func RenderText(out io.Writer, report Report, maxEntries int) {
	fmt.Fprintf(out, "Verification run %s\n\n", report.RunID)

	displayed := new(bytes.Buffer)
	entries := report.Violations.Display(displayed, maxEntries)
	switch entries {
	case 0:
		fmt.Fprintln(out, "Looking good! All documents are in canonical order.")
	case 1:
		fmt.Fprintln(out, "Found 1 unordered or unreadable document:")
	default:
		fmt.Fprintf(out, "Found %d unordered or unreadable documents:\n", entries)
	}
	_, _ = out.Write(displayed.Bytes())

	fmt.Fprintf(out, "\n%d verified, %d unordered, %d failed\n",
		report.Verified, report.Unordered, report.Failed)
}
