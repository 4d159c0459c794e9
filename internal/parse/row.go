// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"strings"

	"github.com/pdiddy/transcript-engine/pkg/types"
)

// truncateFooter cuts row text at the first footer marker found,
// checking markers in list order. Pagination can inject cross-page
// boilerplate mid-row; field extraction must never run into it.
func truncateFooter(text string, markers []string) string {
	for _, marker := range markers {
		if idx := strings.Index(text, marker); idx != -1 {
			return strings.TrimSpace(text[:idx])
		}
	}
	return text
}

// extractPrimary applies the combined row pattern: language, four
// numerics, grade, points, optional comment code. Everything before the
// language match is the course name. Returns false when the row's
// layout defeats the pattern (irregular spacing, line breaks inside the
// numeric section).
func (p *Parser) extractPrimary(rowText string) (types.Course, bool) {
	m := p.rowRE.FindStringSubmatchIndex(rowText)
	if m == nil {
		return types.Course{}, false
	}

	group := func(i int) string {
		if m[2*i] < 0 {
			return ""
		}
		return rowText[m[2*i]:m[2*i+1]]
	}

	return types.Course{
		Name:         cleanName(rowText[:m[0]]),
		Language:     strings.TrimSpace(group(1)),
		TheoryHours:  group(2),
		LabHours:     group(3),
		LocalCredits: group(4),
		ECTSCredits:  group(5),
		Grade:        strings.TrimSpace(group(6)),
		Points:       group(7),
		Comment:      group(8),
	}, true
}

// extractFallback recovers rows the combined pattern missed by
// positional token order. It anchors on the LAST language token: the
// name text may coincidentally contain a language-like token, but the
// true field-section token is the one closest to the trailing numeric
// data. The first four tokens after it are the hour/credit figures;
// tokens five and six are grade and points, with order resolved by
// grade-set membership; a seventh token is the comment code.
func (p *Parser) extractFallback(rowText string) (types.Course, bool) {
	locs := p.langRE.FindAllStringIndex(rowText, -1)
	if len(locs) == 0 {
		return types.Course{}, false
	}
	last := locs[len(locs)-1]

	fields := strings.Fields(rowText[last[1]:])
	if len(fields) < 6 {
		return types.Course{}, false
	}

	grade, points := fields[4], fields[5]
	if !p.gradeSet[grade] {
		grade, points = points, grade
	}

	comment := ""
	if len(fields) > 6 {
		comment = fields[6]
	}

	return types.Course{
		Name:         cleanName(rowText[:last[0]]),
		Language:     rowText[last[0]:last[1]],
		TheoryHours:  fields[0],
		LabHours:     fields[1],
		LocalCredits: fields[2],
		ECTSCredits:  fields[3],
		Grade:        grade,
		Points:       points,
		Comment:      comment,
	}, true
}

// cleanName strips parenthetical translation segments and collapses
// whitespace runs to single spaces.
func cleanName(raw string) string {
	name := parenRE.ReplaceAllString(raw, "")
	name = spaceRE.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
