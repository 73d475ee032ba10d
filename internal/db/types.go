package db

import (
	"time"

	"github.com/google/uuid"
)

// MatchRun represents a match run record
type MatchRun struct {
	ID            uuid.UUID  `json:"id"`
	CandidateName string     `json:"candidate_name"`
	JobCount      int        `json:"job_count"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// Run status constants
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
