package storage

import (
	"context"
	"fmt"

	"github.com/coursepath/coursepath/internal/common"
	"github.com/coursepath/coursepath/internal/model"
)

// GetTranscript loads the stored set of completed courses.
func (s *SQLiteStorage) GetTranscript(ctx context.Context) (model.Transcript, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT code FROM transcript_courses`)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}
	defer func() { _ = rows.Close() }()

	transcript := model.NewTranscript()
	for rows.Next() {
		var code model.CourseCode
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan transcript entry: %w", err)
		}
		transcript.Add(code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transcript: %w", err)
	}
	return transcript, nil
}

// AddTranscriptCourse records a completed course. Recording the same course
// twice is a duplicate-entry error.
func (s *SQLiteStorage) AddTranscriptCourse(ctx context.Context, code model.CourseCode) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCode(code); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO transcript_courses (code) VALUES (?)`, code)
	if err != nil {
		return fmt.Errorf("failed to add %s to transcript: %w", code, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to add %s to transcript: %w", code, err)
	}
	if affected == 0 {
		return fmt.Errorf("transcript already has %s: %w", code, common.ErrDuplicateEntry)
	}
	return nil
}

// RemoveTranscriptCourse deletes a completed course from the transcript.
func (s *SQLiteStorage) RemoveTranscriptCourse(ctx context.Context, code model.CourseCode) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCode(code); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM transcript_courses WHERE code = ?`, code)
	if err != nil {
		return fmt.Errorf("failed to remove %s from transcript: %w", code, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to remove %s from transcript: %w", code, err)
	}
	if affected == 0 {
		return fmt.Errorf("transcript has no %s: %w", code, common.ErrNotFound)
	}
	return nil
}
