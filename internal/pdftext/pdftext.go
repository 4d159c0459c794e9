// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts the full text content of a PDF document.
// The extractor is the pipeline's only external collaborator: it turns
// a file path into one concatenated string, and everything downstream
// operates on that string in memory.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor turns a document at a file path into its full text content.
// A failure (missing, unreadable, or corrupt file) is fatal to the run.
type Extractor interface {
	Extract(path string) (string, error)
}

// PDFExtractor reads every page's plain text in page order and joins
// the pages with newlines. Pages whose content cannot be decoded are
// skipped; an entirely text-free document is an error, since the
// parser has nothing to work with.
type PDFExtractor struct{}

// NewPDFExtractor returns the default PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract implements Extractor.
func (e *PDFExtractor) Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	var text strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Unreadable pages are skipped, not fatal; scanned or
			// malformed pages must not sink the whole document.
			continue
		}

		text.WriteString(pageText)
		text.WriteString("\n")
	}

	if strings.TrimSpace(text.String()) == "" {
		return "", fmt.Errorf("no text extracted from %s: document is empty or image-only", path)
	}

	return text.String(), nil
}
