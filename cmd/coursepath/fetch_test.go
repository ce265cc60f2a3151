package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentTerm(t *testing.T) {
	tests := []struct {
		date     string
		wantYear string
		wantTerm string
	}{
		{"2025-01-15", "2025", "spring"},
		{"2025-04-30", "2025", "spring"},
		{"2025-05-01", "2025", "summer"},
		{"2025-08-31", "2025", "summer"},
		{"2025-09-01", "2025", "fall"},
		{"2025-12-31", "2025", "fall"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			now, err := time.Parse("2006-01-02", tt.date)
			assert.NoError(t, err)

			year, term := currentTerm(now)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantTerm, term)
		})
	}
}
