package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/encoder"
	"github.com/jonathan/job-matcher/internal/types"
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Encode a text file into a pooled embedding",
	Long:  "Runs the encoder over a text file and writes the pooled embedding vector as JSON. The same snapshot and text always produce the same vector.",
	RunE:  runEmbed,
}

var (
	embedModel  string
	embedInput  string
	embedOutput string
	embedMaxLen int
)

func init() {
	embedCmd.Flags().StringVarP(&embedModel, "model", "m", "", "Path to model snapshot JSON (required)")
	embedCmd.Flags().StringVarP(&embedInput, "in", "i", "", "Path to input text file (required)")
	embedCmd.Flags().StringVarP(&embedOutput, "out", "o", "", "Path to output embedding JSON file (required)")
	embedCmd.Flags().IntVar(&embedMaxLen, "max-len", 0, "Sequence length override (0 = snapshot max_seq_len)")

	for _, flag := range []string{"model", "in", "out"} {
		if err := embedCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(embedCmd)
}

func runEmbed(_ *cobra.Command, _ []string) error {
	enc, err := loadEncoder(embedModel)
	if err != nil {
		return err
	}

	textContent, err := os.ReadFile(embedInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", embedInput, err)
	}

	maxLen := embedMaxLen
	if maxLen <= 0 {
		maxLen = enc.Config().MaxSeqLen
	}

	vector, err := enc.EmbedPooled(string(textContent), maxLen)
	if err != nil {
		return fmt.Errorf("failed to encode text: %w", err)
	}

	embedding := &types.PooledEmbedding{
		Dimension: len(vector),
		Vector:    vector,
	}
	if err := writeJSONOutput(embedOutput, embedding); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote %d-dimensional embedding to %s\n", embedding.Dimension, embedOutput)
	return nil
}

// loadEncoder reads and deserializes a model snapshot.
func loadEncoder(path string) (*encoder.Encoder, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model snapshot %s: %w", path, err)
	}
	enc, err := encoder.Load(blob)
	if err != nil {
		return nil, fmt.Errorf("failed to load model snapshot: %w", err)
	}
	return enc, nil
}
