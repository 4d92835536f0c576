// Package service orchestrates sorting and verification of XML files:
// loading, canonicalizing, backup creation, violation reports and the
// on-unordered policy. The comparison itself stays in internal/verify.
package service

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sortxml/sortxml/internal/config"
	"github.com/sortxml/sortxml/internal/pkg"
	"github.com/sortxml/sortxml/internal/sorter"
	"github.com/sortxml/sortxml/internal/verify"
	"github.com/sortxml/sortxml/internal/xmltree"
)

// Policy is what to do with a document that is not in canonical order.
type Policy string

const (
	// PolicyWarn logs the divergence and continues.
	PolicyWarn Policy = "warn"
	// PolicySort rewrites the file into canonical order.
	PolicySort Policy = "sort"
	// PolicyStop fails the run.
	PolicyStop Policy = "stop"
)

// ParsePolicy validates a policy name from a flag or config file.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyWarn, PolicySort, PolicyStop:
		return Policy(s), nil
	}
	return "", fmt.Errorf("invalid policy %q (valid: warn, sort, stop)", s)
}

// Service ties the sorter and the verifier to files on disk.
type Service struct {
	cfg   *config.Config
	log   Logger
	order sorter.Order
}

func New(cfg *config.Config, log Logger) *Service {
	if log == nil {
		log = NewLogger(os.Stderr)
	}
	return &Service{
		cfg:   cfg,
		log:   log,
		order: sorter.NewOrder(cfg.SortOrder),
	}
}

// SortFile rewrites the file into canonical order. Files already in order
// are left untouched; otherwise a backup is created first when enabled.
func (s *Service) SortFile(path string) error {
	s.log.Info("Sorting file " + path)

	root, err := pkg.LoadLocalDocument(path)
	if err != nil {
		return err
	}

	sorted := sorter.Sort(root, s.order)
	if verify.Compare(root, sorted).IsOrdered() {
		s.log.Info("File " + path + " is already sorted, skipping")
		return nil
	}

	if err := s.writeSorted(path, sorted); err != nil {
		return err
	}
	s.log.Info("Saved sorted file to " + path)
	return nil
}

// VerifyTarget verifies one document, identified by a local path or an
// HTTP(S) URL, against its canonical ordering.
func (s *Service) VerifyTarget(target string) (verify.OrderedResult, error) {
	root, err := pkg.LoadDocument(target)
	if err != nil {
		return verify.Ordered(), err
	}
	canonical := sorter.Sort(root, s.order)
	return verify.Compare(root, canonical), nil
}

// Remediate applies the configured on-unordered policy to a single verified
// document. Ordered results are a no-op.
func (s *Service) Remediate(target string, res verify.OrderedResult) error {
	if res.IsOrdered() {
		return nil
	}

	if err := s.saveViolation(target, res); err != nil {
		return err
	}

	notSorted := fmt.Sprintf("The file %s is not sorted", target)
	switch Policy(s.cfg.Verify.OnUnordered) {
	case PolicySort:
		s.log.Info(res.ErrorMessage())
		s.log.Info(notSorted)
		if pkg.IsURL(target) {
			return fmt.Errorf("cannot sort remote document %s", target)
		}
		return s.SortFile(target)
	case PolicyStop:
		s.log.Error(res.ErrorMessage())
		s.log.Error(notSorted)
		return fmt.Errorf("the file %s is not sorted", target)
	default:
		s.log.Warn(res.ErrorMessage())
		s.log.Warn(notSorted)
		return nil
	}
}

func (s *Service) writeSorted(path string, sorted *xmltree.Element) error {
	if s.cfg.Backup.Enabled {
		if err := s.createBackup(path); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := xmltree.Write(&buf, sorted, s.cfg.Indent); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func (s *Service) createBackup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	backupPath := path + s.cfg.Backup.Extension
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	s.log.Info("Saved backup of " + path + " to " + backupPath)
	return nil
}
