package service

import (
	"encoding/xml"
	"os"
	"strings"

	"github.com/sortxml/sortxml/internal/verify"
)

type violationReport struct {
	XMLName xml.Name `xml:"violation"`
	File    string   `xml:"file"`
	Message string   `xml:"message"`
}

// saveViolation persists an XML description of the divergence, when a
// violation file is configured.
func (s *Service) saveViolation(target string, res verify.OrderedResult) error {
	path := s.cfg.Verify.ViolationFile
	if path == "" || res.IsOrdered() {
		return nil
	}

	report := violationReport{File: target, Message: res.ErrorMessage()}
	data, err := xml.MarshalIndent(report, "", strings.Repeat(" ", s.cfg.Indent))
	if err != nil {
		return err
	}

	doc := append([]byte(xml.Header), data...)
	doc = append(doc, '\n')
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return err
	}
	s.log.Info("Saved violation report to " + path)
	return nil
}
