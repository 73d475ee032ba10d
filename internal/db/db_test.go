package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusConstants(t *testing.T) {
	// Verify status constants are defined
	statuses := []string{
		StatusRunning,
		StatusCompleted,
		StatusFailed,
	}

	for _, status := range statuses {
		assert.NotEmpty(t, status, "status constant should not be empty")
	}
}

func TestMatchRunType(t *testing.T) {
	// Verify MatchRun struct can be instantiated
	run := MatchRun{
		CandidateName: "Jane Doe",
		JobCount:      3,
		Status:        StatusRunning,
	}

	assert.Equal(t, "Jane Doe", run.CandidateName)
	assert.Equal(t, 3, run.JobCount)
	assert.Equal(t, "running", run.Status)
	assert.Nil(t, run.CompletedAt)
}
