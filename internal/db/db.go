// Package db provides PostgreSQL persistence for match runs and their
// ranked results.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/job-matcher/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateMatchRun creates a new match run record and returns its ID
func (db *DB) CreateMatchRun(ctx context.Context, candidateName string, jobCount int) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO match_runs (candidate_name, job_count, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		candidateName, jobCount,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create match run: %w", err)
	}
	return id, nil
}

// CompleteMatchRun marks a match run as completed
func (db *DB) CompleteMatchRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE match_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete match run: %w", err)
	}
	return nil
}

// SaveRankedMatches stores the ranked result set for a match run
func (db *DB) SaveRankedMatches(ctx context.Context, runID uuid.UUID, ranked *types.RankedMatches) error {
	jsonBytes, err := json.Marshal(ranked)
	if err != nil {
		return fmt.Errorf("failed to marshal ranked matches: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_results (run_id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (run_id) DO UPDATE SET content = $2, created_at = NOW()`,
		runID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save ranked matches: %w", err)
	}
	return nil
}

// GetRankedMatches retrieves the ranked result set for a match run.
// Returns nil when no results are stored for the run.
func (db *DB) GetRankedMatches(ctx context.Context, runID uuid.UUID) (*types.RankedMatches, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM match_results WHERE run_id = $1`,
		runID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ranked matches: %w", err)
	}

	var ranked types.RankedMatches
	if err := json.Unmarshal(content, &ranked); err != nil {
		return nil, fmt.Errorf("failed to parse ranked matches: %w", err)
	}
	return &ranked, nil
}

// GetMatchRun retrieves a match run by ID
func (db *DB) GetMatchRun(ctx context.Context, runID uuid.UUID) (*MatchRun, error) {
	var run MatchRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate_name, job_count, status, created_at, completed_at
		 FROM match_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.CandidateName, &run.JobCount, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match run: %w", err)
	}
	return &run, nil
}

// ListMatchRuns retrieves recent match runs
func (db *DB) ListMatchRuns(ctx context.Context, limit int) ([]MatchRun, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_name, job_count, status, created_at, completed_at
		 FROM match_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match runs: %w", err)
	}
	defer rows.Close()

	var runs []MatchRun
	for rows.Next() {
		var run MatchRun
		if err := rows.Scan(&run.ID, &run.CandidateName, &run.JobCount, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// DeleteMatchRun deletes a match run and its results (via cascade)
func (db *DB) DeleteMatchRun(ctx context.Context, runID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM match_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete match run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("match run not found: %s", runID)
	}
	return nil
}
