// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtract_MissingFile(t *testing.T) {
	e := NewPDFExtractor()
	_, err := e.Extract(filepath.Join(t.TempDir(), "does-not-exist.pdf"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExtract_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewPDFExtractor()
	if _, err := e.Extract(path); err == nil {
		t.Fatal("expected error for non-PDF content")
	}
}
