// Package ranking orders match results deterministically and assigns
// recommendation bands.
package ranking

import (
	"sort"

	"github.com/jonathan/job-matcher/internal/types"
)

// Recommendation band names.
const (
	RecommendationStrong      = "strongly_recommended"
	RecommendationRecommended = "recommended"
	RecommendationNot         = "not_recommended"
)

// Band cut points. Lower bounds are inclusive: a score exactly on a boundary
// belongs to the higher band.
const (
	StrongThreshold      = 0.8
	RecommendedThreshold = 0.5
)

// Recommend maps a score in [0,1] to its recommendation band.
func Recommend(score float64) string {
	switch {
	case score >= StrongThreshold:
		return RecommendationStrong
	case score >= RecommendedThreshold:
		return RecommendationRecommended
	default:
		return RecommendationNot
	}
}

// Rank returns the results in a deterministic total order: score descending,
// then more matched skills, then fewer missing skills, then job id ascending.
// The input slice is not modified.
func Rank(results []types.MatchResult) *types.RankedMatches {
	ranked := make([]types.MatchResult, len(results))
	copy(ranked, results)

	sort.Slice(ranked, func(i, j int) bool {
		return less(&ranked[i], &ranked[j])
	})

	return &types.RankedMatches{Ranked: ranked}
}

// less is the strict total order over match results. The final job-id
// comparison guarantees determinism even when every numeric field ties.
func less(a, b *types.MatchResult) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if len(a.MatchedSkills) != len(b.MatchedSkills) {
		return len(a.MatchedSkills) > len(b.MatchedSkills)
	}
	if len(a.MissingSkills) != len(b.MissingSkills) {
		return len(a.MissingSkills) < len(b.MissingSkills)
	}
	return a.JobID < b.JobID
}

// FilterRelevant keeps results scoring at or above threshold, preserving
// order and run id.
func FilterRelevant(ranked *types.RankedMatches, threshold float64) *types.RankedMatches {
	kept := make([]types.MatchResult, 0, len(ranked.Ranked))
	for _, result := range ranked.Ranked {
		if result.Score >= threshold {
			kept = append(kept, result)
		}
	}
	return &types.RankedMatches{RunID: ranked.RunID, Ranked: kept}
}
