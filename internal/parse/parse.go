// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse segments extracted transcript text into semester blocks
// and course rows, and extracts structured course records from each row.
//
// The pipeline is one pass over an in-memory string: locate semester
// headers, clean each block of structural noise, split the block on
// course codes, then run field extraction per row with an ordered
// two-path strategy (combined pattern first, positional token fallback
// second). Rows that defeat both paths are skipped; that is expected
// behavior over noisy extracted text, not an error.
package parse

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/transcript-engine/pkg/types"
)

var (
	// semesterRE matches the two accepted header shapes: a year range
	// with one of the three term labels, or a year range with the fixed
	// summer-school label.
	semesterRE = regexp.MustCompile(`20\d{2}-20\d{2}\s+(?:Güz|Bahar|Yaz)\s+Dönemi|20\d{2}-20\d{2}\s+Yaz Okulu`)

	// courseCodeRE matches a course code at the start of a row: three
	// uppercase letters, whitespace, three digits, optional trailing
	// letters (e.g. "FIZ 102EL"), optionally prefixed with the
	// repeated-course asterisk. The trailing whitespace anchors the code
	// against matching inside longer tokens.
	courseCodeRE = regexp.MustCompile(`(\*?\s*[A-Z]{3}\s+\d{3}[A-Z]*)\s`)

	parenRE = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	spaceRE = regexp.MustCompile(`\s+`)
)

// Parser extracts course records from transcript text according to one
// document template. A Parser is cheap to keep around and deterministic:
// the same text always yields the same ordered records.
type Parser struct {
	tpl Template

	langRE  *regexp.Regexp
	guardRE *regexp.Regexp
	rowRE   *regexp.Regexp

	gradeSet map[string]bool
	skipped  int
}

// New compiles the template's label sets into the extraction patterns.
func New(tpl Template) (*Parser, error) {
	if err := tpl.validate(); err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}

	langAlt := alternation(tpl.Languages, false)
	gradeAlt := alternation(tpl.Grades, true)

	p := &Parser{
		tpl:      tpl,
		langRE:   regexp.MustCompile(`(` + langAlt + `)`),
		guardRE:  regexp.MustCompile(`(?:` + langAlt + `)\s+\d+\s+\d+\s+\d+`),
		gradeSet: make(map[string]bool, len(tpl.Grades)),
	}

	// Language, four numerics (theory, lab, local credits, ECTS), grade,
	// points, optional two-letter comment code.
	p.rowRE = regexp.MustCompile(
		`(` + langAlt + `)\s+(\d+)\s+(\d+)\s+(\d+\.?\d*)\s+(\d+\.?\d*)\s+(` +
			gradeAlt + `)\s+(\d+\.?\d*)(?:\s+([A-Z]{2}))?`)

	for _, g := range tpl.Grades {
		p.gradeSet[g] = true
	}
	return p, nil
}

// alternation builds a regexp alternation from literal tokens. With
// longestFirst set, longer tokens come first so a symbol is never
// shadowed by its own prefix (DD+ before DD).
func alternation(tokens []string, longestFirst bool) string {
	quoted := make([]string, len(tokens))
	copy(quoted, tokens)
	if longestFirst {
		sort.SliceStable(quoted, func(i, j int) bool {
			return len(quoted[i]) > len(quoted[j])
		})
	}
	for i, tok := range quoted {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	return strings.Join(quoted, "|")
}

// Parse extracts every course record from the document text, in
// document order. Zero semester headers yields an empty result, not an
// error. Rows that pass the guard but fail both extraction paths are
// dropped silently; Skipped reports how many.
func (p *Parser) Parse(text string) []types.Course {
	p.skipped = 0

	var records []types.Course
	for _, b := range segment(text) {
		cleaned := cleanBlock(b.text, p.tpl.NoiseSubstrings)
		for _, r := range splitRows(cleaned) {
			rowText := truncateFooter(r.text, p.tpl.FooterMarkers)

			// Rows without a language-then-numbers section are leftover
			// noise, not course rows.
			if !p.guardRE.MatchString(rowText) {
				continue
			}

			course, ok := p.extractPrimary(rowText)
			if !ok {
				course, ok = p.extractFallback(rowText)
			}
			if !ok {
				p.skipped++
				continue
			}

			course.Semester = b.semester
			course.Code = r.code
			records = append(records, course)
		}
	}
	return records
}

// Skipped reports how many candidate rows of the last Parse call failed
// both extraction paths. Diagnostic only; skipped rows never surface in
// the output.
func (p *Parser) Skipped() int {
	return p.skipped
}

// block is a contiguous span of document text under one semester header.
type block struct {
	semester string
	text     string
}

// segment splits the text on semester headers. Each block runs from the
// end of its header to the start of the next (or end of text), so the
// blocks cover the headed portion of the document with no gaps and no
// overlaps.
func segment(text string) []block {
	locs := semesterRE.FindAllStringIndex(text, -1)

	blocks := make([]block, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		blocks = append(blocks, block{
			semester: text[loc[0]:loc[1]],
			text:     text[loc[1]:end],
		})
	}
	return blocks
}

// cleanBlock drops structural noise lines: blank lines and lines
// containing any denylist substring. Relative order of surviving lines
// is preserved.
func cleanBlock(text string, noise []string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if containsAny(line, noise) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// row is one course-code occurrence and the text that follows it up to
// the next code.
type row struct {
	code string
	text string
}

// splitRows cuts cleaned block text on course-code matches. The stored
// code is normalized: asterisk stripped, whitespace collapsed. The
// asterisk's repeated-course meaning is not otherwise tracked.
func splitRows(text string) []row {
	matches := courseCodeRE.FindAllStringSubmatchIndex(text, -1)

	rows := make([]row, 0, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		rows = append(rows, row{
			code: normalizeCode(text[m[2]:m[3]]),
			text: strings.TrimSpace(text[m[1]:end]),
		})
	}
	return rows
}

// normalizeCode strips the repeated-course asterisk and collapses
// whitespace runs, so "* MAT  101" and "MAT 101" store identically.
func normalizeCode(raw string) string {
	raw = strings.ReplaceAll(raw, "*", "")
	return strings.Join(strings.Fields(raw), " ")
}
