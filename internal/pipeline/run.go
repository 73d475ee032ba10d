// Package pipeline provides the high-level orchestration for a match run:
// load the encoder, profile the candidate, score every job, rank.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/db"
	"github.com/jonathan/job-matcher/internal/encoder"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/scoring"
	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// RunOptions holds configuration for running a match run
type RunOptions struct {
	ModelPath     string
	Jobs          []types.JobPosting
	Candidate     *types.CandidateProfile
	Threshold     float64
	MaxConcurrent int
	Verbose       bool
	DatabaseURL   string
	Logger        *zap.Logger
}

// Run scores the candidate against every job posting and returns the ranked,
// threshold-filtered result set. Scoring runs concurrently; the final order
// is deterministic regardless of worker interleaving.
func Run(ctx context.Context, opts RunOptions) (*types.RankedMatches, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.Candidate == nil {
		return nil, fmt.Errorf("candidate profile is missing")
	}
	if err := opts.Candidate.Validate(); err != nil {
		return nil, fmt.Errorf("invalid candidate profile: %w", err)
	}
	if len(opts.Jobs) == 0 {
		return nil, fmt.Errorf("no job postings to match")
	}
	for i := range opts.Jobs {
		if err := opts.Jobs[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid job posting at index %d: %w", i, err)
		}
	}

	printer := observability.NewPrinter(os.Stdout)

	logger.Info("loading model snapshot", zap.String("path", opts.ModelPath))
	blob, err := os.ReadFile(opts.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read model snapshot: %w", err)
	}
	enc, err := encoder.Load(blob)
	if err != nil {
		return nil, fmt.Errorf("failed to load model snapshot: %w", err)
	}

	scorer := scoring.NewScorer(enc, skills.NewExtractor())

	// Initialize database connection if configured
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			logger.Warn("failed to connect to database, continuing without persistence", zap.Error(err))
			database = nil
		} else {
			defer database.Close()
			runID, err = database.CreateMatchRun(ctx, opts.Candidate.Name, len(opts.Jobs))
			if err != nil {
				logger.Warn("failed to create match run record", zap.Error(err))
				runID = uuid.Nil
			}
		}
	}
	if runID == uuid.Nil {
		runID = uuid.New()
	}

	if opts.Verbose {
		printer.PrintCandidateProfile(opts.Candidate)
	}

	workers := opts.MaxConcurrent
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger.Info("scoring jobs",
		zap.String("run_id", runID.String()),
		zap.Int("jobs", len(opts.Jobs)),
		zap.Int("workers", workers))

	// Score concurrently; results land at their input index so the
	// subsequent sort sees the same multiset every run.
	results := make([]types.MatchResult, len(opts.Jobs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range opts.Jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			job := &opts.Jobs[i]
			result, err := scorer.Score(job.ID, job.FullText(), opts.Candidate.ResumeText)
			if err != nil {
				return fmt.Errorf("scoring job %s failed: %w", job.ID, err)
			}
			logger.Debug("scored job",
				zap.String("job_id", job.ID),
				zap.Float64("score", result.Score),
				zap.String("recommendation", result.Recommendation))
			results[i] = *result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if database != nil {
			_ = database.CompleteMatchRun(ctx, runID, db.StatusFailed)
		}
		return nil, err
	}

	ranked := ranking.Rank(results)
	ranked.RunID = runID.String()
	if opts.Threshold > 0 {
		ranked = ranking.FilterRelevant(ranked, opts.Threshold)
	}

	if opts.Verbose {
		printer.PrintRankedMatches(ranked)
	}

	if database != nil {
		if err := database.SaveRankedMatches(ctx, runID, ranked); err != nil {
			logger.Warn("failed to persist ranked matches", zap.Error(err))
		}
		_ = database.CompleteMatchRun(ctx, runID, db.StatusCompleted)
	}

	logger.Info("match run complete",
		zap.String("run_id", runID.String()),
		zap.Int("ranked", len(ranked.Ranked)))

	return ranked, nil
}
