// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records shared between the extraction
// pipeline, the transcript store, and the CLI.
package types

// Course is a fully-extracted transcript row with every field the
// source template carries.
type Course struct {
	// Semester is the header label of the block the row was found in,
	// copied verbatim (e.g. "2023-2024 Güz Dönemi").
	Semester string `json:"semester" yaml:"semester"`

	// Code is the normalized course code: leading * stripped, internal
	// whitespace collapsed to single spaces (e.g. "FIZ 102EL").
	Code string `json:"code" yaml:"code"`

	// Name is the course name with parenthetical translations removed
	// and whitespace collapsed.
	Name string `json:"name" yaml:"name"`

	// Language is the instruction-language label ("Tr" or "İng.").
	Language string `json:"language" yaml:"language"`

	// TheoryHours, LabHours, LocalCredits and ECTSCredits are kept as
	// the numeric strings that appear in the document; no arithmetic is
	// performed during extraction.
	TheoryHours  string `json:"theory_hours" yaml:"theory_hours"`
	LabHours     string `json:"lab_hours" yaml:"lab_hours"`
	LocalCredits string `json:"local_credits" yaml:"local_credits"`
	ECTSCredits  string `json:"ects_credits" yaml:"ects_credits"`

	// Grade is one of the template's grade symbols, or "--" for rows
	// without a final grade.
	Grade string `json:"grade" yaml:"grade"`

	// Points is the weighted grade-point figure for the row.
	Points string `json:"points" yaml:"points"`

	// Comment is the optional two-letter remark code at the end of a
	// row. Empty when absent.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// CourseSummary is the public projection of a Course: the five fields
// the converter emits. Credits carries the course's local credits.
type CourseSummary struct {
	Semester string `json:"semester" yaml:"semester"`
	Code     string `json:"code" yaml:"code"`
	Name     string `json:"name" yaml:"name"`
	Credits  string `json:"credits" yaml:"credits"`
	Grade    string `json:"grade" yaml:"grade"`
}

// Summary projects the course to its public shape. Pure field
// selection; values are copied unchanged.
func (c Course) Summary() CourseSummary {
	return CourseSummary{
		Semester: c.Semester,
		Code:     c.Code,
		Name:     c.Name,
		Credits:  c.LocalCredits,
		Grade:    c.Grade,
	}
}

// Summarize projects a slice of courses, preserving order. The result
// is never nil so an empty parse serializes as an empty JSON array.
func Summarize(courses []Course) []CourseSummary {
	out := make([]CourseSummary, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Summary())
	}
	return out
}
