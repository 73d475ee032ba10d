package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/encoder"
)

// writeTestModelFile creates a small deterministic model snapshot on disk.
func writeTestModelFile(t *testing.T) string {
	t.Helper()

	cfg := encoder.Config{
		VocabSize: 64,
		HiddenDim: 8,
		NumHeads:  2,
		NumLayers: 2,
		MaxSeqLen: 32,
		FFDim:     16,
		Dropout:   0.1,
	}
	terms := []string{
		"python", "docker", "aws", "go", "engineer", "backend",
		"requires", "experienced", "in", "and", "with",
	}
	params, err := encoder.NewInitializedParameters(cfg, terms, 7)
	require.NoError(t, err)

	blob, err := params.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, blob, 0644))
	return path
}

// writeTempFile writes content into a fresh temp dir and returns the path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
