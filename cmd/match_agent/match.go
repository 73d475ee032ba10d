package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/scoring"
	"github.com/jonathan/job-matcher/internal/skills"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one job posting against a resume",
	Long:  "Scores a single (job, candidate) pair and writes the full MatchResult JSON: blended score, cosine similarity, skill overlap, and recommendation.",
	RunE:  runMatch,
}

var (
	matchModel   string
	matchJob     string
	matchResume  string
	matchJobID   string
	matchOutput  string
	matchVerbose bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchModel, "model", "m", "", "Path to model snapshot JSON (required)")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job posting text file (required)")
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume text file (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output MatchResult JSON file (required)")
	matchCmd.Flags().StringVar(&matchJobID, "job-id", "job-1", "Identifier recorded in the result")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print the match result")

	for _, flag := range []string{"model", "job", "resume", "out"} {
		if err := matchCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	enc, err := loadEncoder(matchModel)
	if err != nil {
		return err
	}

	jobContent, err := os.ReadFile(matchJob)
	if err != nil {
		return fmt.Errorf("failed to read job file %s: %w", matchJob, err)
	}
	resumeContent, err := os.ReadFile(matchResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", matchResume, err)
	}

	scorer := scoring.NewScorer(enc, skills.NewExtractor())
	result, err := scorer.Score(matchJobID, string(jobContent), string(resumeContent))
	if err != nil {
		return fmt.Errorf("failed to score pair: %w", err)
	}

	if matchVerbose {
		observability.NewPrinter(os.Stdout).PrintMatchResult(result)
	}

	if err := writeJSONOutput(matchOutput, result); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Scored %s: %.2f (%s), written to %s\n",
		result.JobID, result.Score, result.Recommendation, matchOutput)
	return nil
}
