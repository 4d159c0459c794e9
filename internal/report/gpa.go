// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report computes GPA and credit summaries over course
// summaries. Best-effort like the rest of the tool: courses with
// unparseable credits or grades outside the point table are left out of
// the computation rather than failing it.
package report

import (
	"strconv"

	"github.com/pdiddy/transcript-engine/pkg/types"
)

// gradePoints maps grade symbols to 4.0-scale points. Symbols absent
// from the table (placeholders like "--", remark-only grades) do not
// count toward the GPA.
var gradePoints = map[string]float64{
	"AA": 4.0, "BA": 3.5, "BB": 3.0, "CB": 2.5,
	"CC": 2.0, "DC": 1.5, "DD": 1.0, "FD": 0.5,
	"FF": 0.0, "VF": 0.0, "BL": 0.0,
}

// Summary holds the aggregate figures for a set of courses.
type Summary struct {
	// GPA is the credit-weighted grade point average. Zero when no
	// course was countable.
	GPA float64 `json:"gpa" yaml:"gpa"`

	// TotalCredits sums the credits of counted courses.
	TotalCredits float64 `json:"total_credits" yaml:"total_credits"`

	// Courses is the number of courses that entered the computation.
	Courses int `json:"courses" yaml:"courses"`
}

// Compute aggregates GPA, total credits, and counted-course figures.
func Compute(courses []types.CourseSummary) Summary {
	var totalPoints, totalCredits float64
	var counted int

	for _, c := range courses {
		credits, err := strconv.ParseFloat(c.Credits, 64)
		if err != nil {
			continue
		}
		points, ok := gradePoints[c.Grade]
		if !ok {
			continue
		}

		totalPoints += points * credits
		totalCredits += credits
		counted++
	}

	var gpa float64
	if totalCredits > 0 {
		gpa = totalPoints / totalCredits
	}

	return Summary{
		GPA:          gpa,
		TotalCredits: totalCredits,
		Courses:      counted,
	}
}

// FilterSemester returns the courses whose semester label matches.
func FilterSemester(courses []types.CourseSummary, semester string) []types.CourseSummary {
	var filtered []types.CourseSummary
	for _, c := range courses {
		if c.Semester == semester {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// FilterGrade returns the courses whose grade symbol matches.
func FilterGrade(courses []types.CourseSummary, grade string) []types.CourseSummary {
	var filtered []types.CourseSummary
	for _, c := range courses {
		if c.Grade == grade {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
