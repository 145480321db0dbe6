// File: internal/services/indexer/pdf.go
package indexer

import (
	"fmt"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// PageText is the extracted text of one PDF page.
type PageText struct {
	Page int
	Text string
}

// ExtractPages reads a PDF and returns the plain text of every non-empty
// page. Page numbers are 1-based, matching what readers see.
func ExtractPages(path string) ([]PageText, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()

	pages := make([]PageText, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extracting page %d: %w", i, err)
		}
		text = collapseWhitespace(text)
		if text == "" {
			continue
		}
		pages = append(pages, PageText{Page: i, Text: text})
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("pdf %s contains no extractable text", path)
	}
	return pages, nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
