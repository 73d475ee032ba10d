// Package main implements the match_agent CLI for scoring and ranking job
// postings against a candidate resume.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Job posting / candidate matching engine",
	Long:  "match_agent scores free-text job postings against a candidate resume by combining neural text embeddings with deterministic skill matching, and produces an explainable, reproducible ranking.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
