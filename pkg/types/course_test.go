// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestCourseSummary(t *testing.T) {
	c := Course{
		Semester:     "2023-2024 Güz Dönemi",
		Code:         "MAT 101",
		Name:         "Calculus I",
		Language:     "Tr",
		TheoryHours:  "3",
		LabHours:     "0",
		LocalCredits: "3.0",
		ECTSCredits:  "5.0",
		Grade:        "AA",
		Points:       "4.00",
		Comment:      "MU",
	}

	got := c.Summary()
	want := CourseSummary{
		Semester: "2023-2024 Güz Dönemi",
		Code:     "MAT 101",
		Name:     "Calculus I",
		Credits:  "3.0",
		Grade:    "AA",
	}
	if got != want {
		t.Errorf("Summary = %+v, want %+v", got, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if got == nil {
		t.Fatal("Summarize(nil) = nil, want empty slice")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(got); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty summary encodes as %q, want []", strings.TrimSpace(buf.String()))
	}
}

func TestSummarizePreservesOrder(t *testing.T) {
	courses := []Course{
		{Code: "MAT 101", LocalCredits: "3.0"},
		{Code: "FIZ 101E", LocalCredits: "3.0"},
		{Code: "KIM 101", LocalCredits: "2.0"},
	}

	got := Summarize(courses)
	if len(got) != 3 {
		t.Fatalf("Summarize = %d records, want 3", len(got))
	}
	for i := range courses {
		if got[i].Code != courses[i].Code {
			t.Errorf("record %d code = %q, want %q", i, got[i].Code, courses[i].Code)
		}
		if got[i].Credits != courses[i].LocalCredits {
			t.Errorf("record %d credits = %q, want %q", i, got[i].Credits, courses[i].LocalCredits)
		}
	}
}
