// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists parsed transcripts in a local SQLite database,
// keyed by student ID. Course rows keep their document order through a
// position column, so a stored transcript reads back exactly as it was
// parsed.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/transcript-engine/pkg/types"
)

// Transcript is one student's stored course list.
type Transcript struct {
	ID        int64                 `json:"id" yaml:"id"`
	StudentID string                `json:"student_id" yaml:"student_id"`
	Courses   []types.CourseSummary `json:"courses" yaml:"courses"`
}

// Store manages the transcript SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the database at cfg.DBPath, creating the
// schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS transcripts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			student_id TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			transcript_id INTEGER NOT NULL REFERENCES transcripts(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			semester TEXT NOT NULL,
			code TEXT NOT NULL,
			name TEXT NOT NULL,
			credits TEXT NOT NULL,
			grade TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_courses_transcript_id ON courses(transcript_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save upserts a student's transcript. An existing transcript's course
// rows are replaced wholesale; rerunning a parse and saving is safe.
func (s *Store) Save(ctx context.Context, studentID string, courses []types.CourseSummary) error {
	if studentID == "" {
		return fmt.Errorf("student ID is required")
	}
	if len(courses) == 0 {
		return fmt.Errorf("courses cannot be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO transcripts (student_id, created_at, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(student_id) DO UPDATE SET updated_at=excluded.updated_at`,
		studentID, now, now,
	); err != nil {
		return fmt.Errorf("upserting transcript: %w", err)
	}

	var transcriptID int64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM transcripts WHERE student_id = ?`, studentID,
	).Scan(&transcriptID); err != nil {
		return fmt.Errorf("reading transcript id: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM courses WHERE transcript_id = ?`, transcriptID,
	); err != nil {
		return fmt.Errorf("deleting old courses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO courses (transcript_id, position, semester, code, name, credits, grade)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range courses {
		if _, err := stmt.ExecContext(ctx,
			transcriptID, i, c.Semester, c.Code, c.Name, c.Credits, c.Grade,
		); err != nil {
			return fmt.Errorf("inserting course %s: %w", c.Code, err)
		}
	}

	return tx.Commit()
}

// Get retrieves one student's transcript. Returns (nil, nil) when the
// student has no stored transcript.
func (s *Store) Get(ctx context.Context, studentID string) (*Transcript, error) {
	var t Transcript
	err := s.db.QueryRowContext(ctx,
		`SELECT id, student_id FROM transcripts WHERE student_id = ?`, studentID,
	).Scan(&t.ID, &t.StudentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading transcript: %w", err)
	}

	t.Courses, err = s.courses(ctx, t.ID, "", "")
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List retrieves every stored transcript, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Transcript, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, student_id FROM transcripts ORDER BY updated_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing transcripts: %w", err)
	}
	defer rows.Close()

	var transcripts []Transcript
	for rows.Next() {
		var t Transcript
		if err := rows.Scan(&t.ID, &t.StudentID); err != nil {
			return nil, fmt.Errorf("scanning transcript: %w", err)
		}
		transcripts = append(transcripts, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range transcripts {
		transcripts[i].Courses, err = s.courses(ctx, transcripts[i].ID, "", "")
		if err != nil {
			return nil, err
		}
	}
	return transcripts, nil
}

// Delete removes a student's transcript. Deleting an absent transcript
// is an error so callers can report the miss.
func (s *Store) Delete(ctx context.Context, studentID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM transcripts WHERE student_id = ?`, studentID)
	if err != nil {
		return fmt.Errorf("deleting transcript: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no transcript found for student %s", studentID)
	}
	return nil
}

// CoursesBySemester returns a student's stored courses for one semester
// label, in document order.
func (s *Store) CoursesBySemester(ctx context.Context, studentID, semester string) ([]types.CourseSummary, error) {
	return s.coursesFiltered(ctx, studentID, semester, "")
}

// CoursesByGrade returns a student's stored courses with one grade
// symbol, in document order.
func (s *Store) CoursesByGrade(ctx context.Context, studentID, grade string) ([]types.CourseSummary, error) {
	return s.coursesFiltered(ctx, studentID, "", grade)
}

func (s *Store) coursesFiltered(ctx context.Context, studentID, semester, grade string) ([]types.CourseSummary, error) {
	var transcriptID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM transcripts WHERE student_id = ?`, studentID,
	).Scan(&transcriptID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no transcript found for student %s", studentID)
		}
		return nil, fmt.Errorf("reading transcript: %w", err)
	}
	return s.courses(ctx, transcriptID, semester, grade)
}

func (s *Store) courses(ctx context.Context, transcriptID int64, semester, grade string) ([]types.CourseSummary, error) {
	query := `SELECT semester, code, name, credits, grade FROM courses WHERE transcript_id = ?`
	args := []any{transcriptID}

	if semester != "" {
		query += ` AND semester = ?`
		args = append(args, semester)
	}
	if grade != "" {
		query += ` AND grade = ?`
		args = append(args, grade)
	}
	query += ` ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	var courses []types.CourseSummary
	for rows.Next() {
		var c types.CourseSummary
		if err := rows.Scan(&c.Semester, &c.Code, &c.Name, &c.Credits, &c.Grade); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
