package pkg

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/sortxml/sortxml/internal/xmltree"
)

// DownloadDocument fetches an XML document over HTTP and parses it.
func DownloadDocument(documentURL string) (*xmltree.Element, error) {
	resp, err := http.Get(documentURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("received a 404 response attempting to download document from '%s'",
			documentURL)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%d HTTP error fetching document from %s", resp.StatusCode, documentURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return xmltree.Parse(bytes.NewReader(body))
}

// LoadLocalDocument reads and parses an XML file from disk.
func LoadLocalDocument(filePath string) (*xmltree.Element, error) {
	body, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	el, err := xmltree.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return el, nil
}

// LoadDocument resolves a target that is either a local path or an HTTP(S)
// URL.
func LoadDocument(target string) (*xmltree.Element, error) {
	if IsURL(target) {
		return DownloadDocument(target)
	}
	return LoadLocalDocument(target)
}

// IsURL reports whether the target names a remote document.
func IsURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}
