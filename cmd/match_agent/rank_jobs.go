package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/logging"
	"github.com/jonathan/job-matcher/internal/pipeline"
	"github.com/jonathan/job-matcher/internal/types"
)

var rankJobsCmd = &cobra.Command{
	Use:   "rank-jobs",
	Short: "Score and rank a batch of job postings against a resume",
	Long:  "Scores every posting in a job postings JSON file against a resume and writes a deterministically ordered RankedMatches JSON, best match first.",
	RunE:  runRankJobs,
}

var (
	rankJobsModel      string
	rankJobsJobs       string
	rankJobsResume     string
	rankJobsOutput     string
	rankJobsThreshold  float64
	rankJobsConcurrent int
	rankJobsVerbose    bool
)

func init() {
	rankJobsCmd.Flags().StringVarP(&rankJobsModel, "model", "m", "", "Path to model snapshot JSON (required)")
	rankJobsCmd.Flags().StringVarP(&rankJobsJobs, "jobs", "j", "", "Path to job postings JSON file (required)")
	rankJobsCmd.Flags().StringVarP(&rankJobsResume, "resume", "r", "", "Path to resume text file (required)")
	rankJobsCmd.Flags().StringVarP(&rankJobsOutput, "out", "o", "", "Path to output RankedMatches JSON file (required)")
	rankJobsCmd.Flags().Float64VarP(&rankJobsThreshold, "threshold", "t", 0, "Drop matches scoring below this value (0 keeps everything)")
	rankJobsCmd.Flags().IntVar(&rankJobsConcurrent, "max-concurrent", 0, "Parallel scoring workers (0 = number of CPUs)")
	rankJobsCmd.Flags().BoolVarP(&rankJobsVerbose, "verbose", "v", false, "Print the top ranked matches")

	for _, flag := range []string{"model", "jobs", "resume", "out"} {
		if err := rankJobsCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(rankJobsCmd)
}

func runRankJobs(_ *cobra.Command, _ []string) error {
	jobs, err := loadJobPostings(rankJobsJobs)
	if err != nil {
		return err
	}

	resumeContent, err := os.ReadFile(rankJobsResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", rankJobsResume, err)
	}

	logger, err := logging.New(false, rankJobsVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ranked, err := pipeline.Run(context.Background(), pipeline.RunOptions{
		ModelPath:     rankJobsModel,
		Jobs:          jobs,
		Candidate:     buildCandidateProfile(string(resumeContent), ""),
		Threshold:     rankJobsThreshold,
		MaxConcurrent: rankJobsConcurrent,
		Verbose:       rankJobsVerbose,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	if err := writeJSONOutput(rankJobsOutput, ranked); err != nil {
		return err
	}
	validateOutput("ranked_matches.schema.json", rankJobsOutput)

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d jobs to %s\n", len(ranked.Ranked), rankJobsOutput)
	return nil
}

// loadJobPostings reads and parses a job postings JSON file.
func loadJobPostings(path string) ([]types.JobPosting, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}

	var jobs []types.JobPosting
	if err := json.Unmarshal(content, &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job postings JSON: %w", err)
	}
	return jobs, nil
}
