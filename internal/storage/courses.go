package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coursepath/coursepath/internal/common"
	"github.com/coursepath/coursepath/internal/model"
)

// SaveCourses upserts a batch of catalog entries in one transaction.
func (s *SQLiteStorage) SaveCourses(ctx context.Context, courses []model.Course) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCourses(courses); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO courses (code, dept, number, title, description, credits, prerequisites_raw, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(code) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			credits = excluded.credits,
			prerequisites_raw = excluded.prerequisites_raw,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare course upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range courses {
		c := &courses[i]
		if _, err := stmt.ExecContext(ctx,
			c.Code, c.Dept, c.Number, c.Title, c.Description, c.Credits, c.PrereqRaw,
		); err != nil {
			return fmt.Errorf("failed to save course %s: %w", c.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit courses: %w", err)
	}
	return nil
}

// GetCourse fetches one catalog entry by canonical code.
func (s *SQLiteStorage) GetCourse(ctx context.Context, code model.CourseCode) (*model.Course, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateCode(code); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT code, dept, number, title, COALESCE(description, ''), credits, COALESCE(prerequisites_raw, '')
		FROM courses WHERE code = ?
	`, code)

	var c model.Course
	err := row.Scan(&c.Code, &c.Dept, &c.Number, &c.Title, &c.Description, &c.Credits, &c.PrereqRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("course %s: %w", code, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course %s: %w", code, err)
	}
	return &c, nil
}

// ListCourses returns catalog entries ordered by code, optionally filtered to
// one department. An empty dept means the whole catalog.
func (s *SQLiteStorage) ListCourses(ctx context.Context, dept string) ([]model.Course, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT code, dept, number, title, COALESCE(description, ''), credits, COALESCE(prerequisites_raw, '')
		FROM courses
	`
	var args []any
	if dept != "" {
		query += ` WHERE dept = ?`
		args = append(args, dept)
	}
	query += ` ORDER BY dept, number`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.Code, &c.Dept, &c.Number, &c.Title, &c.Description, &c.Credits, &c.PrereqRaw); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}
	return courses, nil
}

// CourseCount returns the number of catalog entries.
func (s *SQLiteStorage) CourseCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}
