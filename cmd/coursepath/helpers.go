package main

import (
	"context"
	"fmt"

	"github.com/coursepath/coursepath/internal/config"
	"github.com/coursepath/coursepath/internal/model"
	"github.com/coursepath/coursepath/internal/storage"
)

// initStorage opens the catalog database and brings the schema up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadTranscript reads the saved transcript and merges any extra codes the
// user supplied on the command line.
func loadTranscript(ctx context.Context, store *storage.SQLiteStorage, extra []string) (model.Transcript, error) {
	completed, err := store.GetTranscript(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}

	for _, raw := range extra {
		code, err := model.ParseCourseCode(raw)
		if err != nil {
			return nil, err
		}
		completed.Add(code)
	}
	return completed, nil
}
