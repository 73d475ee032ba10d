package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

const testJobsJSON = `[
	{"id": "job-1", "title": "Backend Engineer", "description": "Requires Python, Docker, AWS"},
	{"id": "job-2", "title": "Go Engineer", "description": "Requires Go and Docker"},
	{"id": "job-3", "title": "Gardener", "description": "No technology required at all"}
]`

func TestRankJobsCommand_ValidInput(t *testing.T) {
	modelPath := writeTestModelFile(t)
	jobsPath := writeTempFile(t, "jobs.json", testJobsJSON)
	resumePath := writeTempFile(t, "resume.txt", "Experienced in Python and Docker")
	outPath := filepath.Join(t.TempDir(), "ranked.json")

	rankJobsModel = modelPath
	rankJobsJobs = jobsPath
	rankJobsResume = resumePath
	rankJobsOutput = outPath
	rankJobsThreshold = 0
	rankJobsConcurrent = 2
	rankJobsVerbose = false

	err := runRankJobs(nil, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var ranked types.RankedMatches
	require.NoError(t, json.Unmarshal(data, &ranked))

	require.Len(t, ranked.Ranked, 3)
	for i := 1; i < len(ranked.Ranked); i++ {
		assert.GreaterOrEqual(t, ranked.Ranked[i-1].Score, ranked.Ranked[i].Score)
	}
}

func TestRankJobsCommand_InvalidJobsJSON(t *testing.T) {
	rankJobsModel = writeTestModelFile(t)
	rankJobsJobs = writeTempFile(t, "jobs.json", "{ not an array }")
	rankJobsResume = writeTempFile(t, "resume.txt", "Experienced in Python")
	rankJobsOutput = filepath.Join(t.TempDir(), "ranked.json")
	rankJobsThreshold = 0
	rankJobsConcurrent = 0
	rankJobsVerbose = false

	err := runRankJobs(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal job postings JSON")
}

func TestRankJobsCommand_MissingJobsFile(t *testing.T) {
	rankJobsModel = writeTestModelFile(t)
	rankJobsJobs = "/nonexistent/jobs.json"
	rankJobsResume = writeTempFile(t, "resume.txt", "Experienced in Python")
	rankJobsOutput = filepath.Join(t.TempDir(), "ranked.json")

	err := runRankJobs(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read jobs file")
}

func TestLoadJobPostings(t *testing.T) {
	jobsPath := writeTempFile(t, "jobs.json", testJobsJSON)

	jobs, err := loadJobPostings(jobsPath)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "job-1", jobs[0].ID)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
}
