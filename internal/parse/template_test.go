// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplateCompiles(t *testing.T) {
	_, err := New(DefaultTemplate())
	require.NoError(t, err)
}

func TestLoadTemplateOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.yaml")
	content := "languages:\n  - En\n  - Fr\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tpl, err := LoadTemplate(path)
	require.NoError(t, err)

	// Overridden list replaces the default; omitted lists keep theirs.
	assert.Equal(t, []string{"En", "Fr"}, tpl.Languages)
	assert.Equal(t, DefaultTemplate().Grades, tpl.Grades)
	assert.Equal(t, DefaultTemplate().FooterMarkers, tpl.FooterMarkers)
}

func TestLoadTemplateMissingFile(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading template file")
}

func TestLoadTemplateMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.yaml")
	require.NoError(t, os.WriteFile(path, []byte("languages: [unclosed"), 0o644))

	_, err := LoadTemplate(path)
	require.Error(t, err)
}

func TestNewRejectsEmptyLists(t *testing.T) {
	_, err := New(Template{Grades: []string{"AA"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "languages")

	_, err = New(Template{Languages: []string{"Tr"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grades")
}
