package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/encoder"
)

func setInitModelDefaults() {
	defaults := encoder.DefaultConfig()
	initModelVocabSize = defaults.VocabSize
	initModelHidden = defaults.HiddenDim
	initModelHeads = defaults.NumHeads
	initModelLayers = defaults.NumLayers
	initModelMaxSeqLen = defaults.MaxSeqLen
	initModelFFDim = defaults.FFDim
	initModelSeed = 42
}

func TestInitModelCommand_ProducesLoadableSnapshot(t *testing.T) {
	setInitModelDefaults()
	// Small dimensions keep the snapshot quick to generate and parse.
	initModelVocabSize = 128
	initModelHidden = 8
	initModelHeads = 2
	initModelLayers = 2
	initModelMaxSeqLen = 16
	initModelFFDim = 16
	initModelOutput = filepath.Join(t.TempDir(), "model.json")

	err := runInitModel(nil, nil)
	require.NoError(t, err)

	blob, err := os.ReadFile(initModelOutput)
	require.NoError(t, err)

	enc, err := encoder.Load(blob)
	require.NoError(t, err)
	assert.Equal(t, 8, enc.Config().HiddenDim)
	assert.Equal(t, 2, enc.Config().NumLayers)
}

func TestInitModelCommand_DeterministicForSeed(t *testing.T) {
	setInitModelDefaults()
	initModelVocabSize = 128
	initModelHidden = 8
	initModelHeads = 2
	initModelLayers = 1
	initModelMaxSeqLen = 16
	initModelFFDim = 16
	initModelSeed = 7

	firstPath := filepath.Join(t.TempDir(), "first.json")
	initModelOutput = firstPath
	require.NoError(t, runInitModel(nil, nil))

	secondPath := filepath.Join(t.TempDir(), "second.json")
	initModelOutput = secondPath
	require.NoError(t, runInitModel(nil, nil))

	first, err := os.ReadFile(firstPath)
	require.NoError(t, err)
	second, err := os.ReadFile(secondPath)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInitModelCommand_InvalidConfig(t *testing.T) {
	setInitModelDefaults()
	// Heads must divide the hidden dimension.
	initModelHidden = 10
	initModelHeads = 3
	initModelOutput = filepath.Join(t.TempDir(), "model.json")

	err := runInitModel(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize model")
}
