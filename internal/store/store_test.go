// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdiddy/transcript-engine/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.StoreConfig{DBPath: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleCourses() []types.CourseSummary {
	return []types.CourseSummary{
		{Semester: "2022-2023 Güz Dönemi", Code: "MAT 101", Name: "Calculus I", Credits: "3.0", Grade: "AA"},
		{Semester: "2022-2023 Güz Dönemi", Code: "FIZ 101E", Name: "Physics I", Credits: "3.0", Grade: "BB"},
		{Semester: "2022-2023 Bahar Dönemi", Code: "MAT 102", Name: "Calculus II", Credits: "4.0", Grade: "BA"},
	}
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "12345", sampleCourses()))

	got, err := s.Get(ctx, "12345")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "12345", got.StudentID)
	require.Equal(t, sampleCourses(), got.Courses)
}

func TestSaveReplacesCourses(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "12345", sampleCourses()))

	replacement := []types.CourseSummary{
		{Semester: "2023-2024 Güz Dönemi", Code: "BLG 102E", Name: "Intro to Programming", Credits: "3.0", Grade: "CC"},
	}
	require.NoError(t, s.Save(ctx, "12345", replacement))

	got, err := s.Get(ctx, "12345")
	require.NoError(t, err)
	require.Equal(t, replacement, got.Courses)
}

func TestSaveValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.Error(t, s.Save(ctx, "", sampleCourses()))
	require.Error(t, s.Save(ctx, "12345", nil))
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Get(context.Background(), "nobody")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "12345", sampleCourses()))
	require.NoError(t, s.Delete(ctx, "12345"))

	got, err := s.Get(ctx, "12345")
	require.NoError(t, err)
	require.Nil(t, got)

	err = s.Delete(ctx, "12345")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no transcript found")
}

func TestList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	transcripts, err := s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, transcripts)

	require.NoError(t, s.Save(ctx, "11111", sampleCourses()))
	require.NoError(t, s.Save(ctx, "22222", sampleCourses()[:1]))

	transcripts, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, transcripts, 2)

	// Most recently updated first.
	require.Equal(t, "22222", transcripts[0].StudentID)
	require.Len(t, transcripts[0].Courses, 1)
	require.Equal(t, "11111", transcripts[1].StudentID)
	require.Len(t, transcripts[1].Courses, 3)
}

func TestCoursesBySemester(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "12345", sampleCourses()))

	got, err := s.CoursesBySemester(ctx, "12345", "2022-2023 Güz Dönemi")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "MAT 101", got[0].Code)
	require.Equal(t, "FIZ 101E", got[1].Code)

	_, err = s.CoursesBySemester(ctx, "nobody", "2022-2023 Güz Dönemi")
	require.Error(t, err)
}

func TestCoursesByGrade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "12345", sampleCourses()))

	got, err := s.CoursesByGrade(ctx, "12345", "BA")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "MAT 102", got[0].Code)

	got, err = s.CoursesByGrade(ctx, "12345", "FF")
	require.NoError(t, err)
	require.Empty(t, got)
}
