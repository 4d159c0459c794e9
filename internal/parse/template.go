// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Template carries the document-specific label sets the parser needs.
// Everything tied to one institution's transcript layout lives here, so
// adapting the tool to a template revision is a data edit, not a code
// change.
type Template struct {
	// Languages are the accepted instruction-language labels. The first
	// token of a row's numeric section must be one of these.
	Languages []string `yaml:"languages"`

	// Grades is the closed set of grade symbols, including the "--"
	// placeholder for ungraded rows. Alternation order in compiled
	// patterns is derived by length, so the list itself may be in any
	// order.
	Grades []string `yaml:"grades"`

	// NoiseSubstrings mark structural noise lines: column headers,
	// running totals, summary labels. A line containing any of these is
	// dropped before row splitting. Matching is substring containment,
	// so a legitimate course name containing one of these strings is
	// dropped too; that is a known limitation of the source template's
	// heuristic, kept as-is.
	NoiseSubstrings []string `yaml:"noise_substrings"`

	// FooterMarkers are page-boilerplate fragments that pagination can
	// inject mid-row. Row text is truncated at the first marker found,
	// checked in list order.
	FooterMarkers []string `yaml:"footer_markers"`
}

// DefaultTemplate returns the built-in template for the ITU bilingual
// transcript layout ("NOT DÖKÜM BELGESİ").
func DefaultTemplate() Template {
	return Template{
		Languages: []string{"Tr", "İng."},
		Grades: []string{
			"AA", "BA+", "BA", "BB+", "BB", "CB+", "CB", "CC+", "CC",
			"DC+", "DC", "DD+", "DD", "FF", "VF", "BL", "SG", "DK", "KL",
			"--",
		},
		NoiseSubstrings: []string{
			"Dersin Statüsü", "Öğretim Dili", "T U UK", "AKTS",
			"Not", "Puan", "Açıklama",
			"DNO:", "GNO:", "TUK:", "TAKTS:", "DSD:",
			"Başarılı", "Pass",
		},
		FooterMarkers: []string{
			"www.turkiye.gov.tr",
			"Öğrenci No",
			"T.C. Kimlik No",
			"İSTANBUL TEKNİK ÜNİVERSİTESİ",
			"NOT DÖKÜM BELGESİ",
			"YOKTR",
			"Ders kodunun başında * olan dersler",
		},
	}
}

// LoadTemplate reads a Template from a YAML file. Lists omitted from
// the file fall back to the built-in defaults, so a template file may
// override only the lists that changed.
func LoadTemplate(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("reading template file: %w", err)
	}

	tpl := DefaultTemplate()
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return Template{}, fmt.Errorf("parsing template file %s: %w", path, err)
	}

	if err := tpl.validate(); err != nil {
		return Template{}, fmt.Errorf("template file %s: %w", path, err)
	}
	return tpl, nil
}

func (t Template) validate() error {
	if len(t.Languages) == 0 {
		return fmt.Errorf("languages list is empty")
	}
	if len(t.Grades) == 0 {
		return fmt.Errorf("grades list is empty")
	}
	return nil
}
