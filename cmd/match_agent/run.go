package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/logging"
	"github.com/jonathan/job-matcher/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full matching pipeline end-to-end",
	Long: `Orchestrates the entire matching process: profile extraction -> encoding -> scoring -> ranking, with optional database persistence.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runModel       string
	runJobs        string
	runResume      string
	runOutput      string
	runThreshold   float64
	runConcurrent  int
	runVerbose     bool
	runLogJSON     bool
	runDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runModel, "model", "m", "", "Path to model snapshot JSON")
	runCommand.Flags().StringVarP(&runJobs, "jobs", "j", "", "Path to job postings JSON file")
	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to resume text file")
	runCommand.Flags().StringVarP(&runOutput, "out", "o", "", "Path to output RankedMatches JSON file")
	runCommand.Flags().Float64VarP(&runThreshold, "threshold", "t", 0, "Drop matches scoring below this value")
	runCommand.Flags().IntVar(&runConcurrent, "max-concurrent", 0, "Parallel scoring workers (0 = number of CPUs)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")
	runCommand.Flags().BoolVar(&runLogJSON, "log-json", false, "Emit logs as JSON")

	// Database URL for result persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("model") {
		cfg.Model = runModel
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = runJobs
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = runResume
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = runThreshold
	}
	if cmd.Flags().Changed("max-concurrent") {
		cfg.MaxConcurrent = runConcurrent
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Output: "ranked_matches.json",
	})

	// Step 4: Validate required fields
	if cfg.Model == "" {
		return fmt.Errorf("--model is required (via flag or config)")
	}
	if cfg.Jobs == "" {
		return fmt.Errorf("--jobs is required (via flag or config)")
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}

	// Step 5: Database URL handling (optional)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	jobs, err := loadJobPostings(cfg.Jobs)
	if err != nil {
		return err
	}

	resumeContent, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", cfg.Resume, err)
	}

	logger, err := logging.New(runLogJSON, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ranked, err := pipeline.Run(ctx, pipeline.RunOptions{
		ModelPath:     cfg.Model,
		Jobs:          jobs,
		Candidate:     buildCandidateProfile(string(resumeContent), ""),
		Threshold:     cfg.Threshold,
		MaxConcurrent: cfg.MaxConcurrent,
		Verbose:       cfg.Verbose,
		DatabaseURL:   cfg.DatabaseURL,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	if err := writeJSONOutput(cfg.Output, ranked); err != nil {
		return err
	}
	validateOutput("ranked_matches.schema.json", cfg.Output)

	_, _ = fmt.Fprintf(os.Stdout, "Done! Ranked %d jobs to %s\n", len(ranked.Ranked), cfg.Output)
	return nil
}
