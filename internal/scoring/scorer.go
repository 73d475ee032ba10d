// Package scoring blends neural embedding similarity with symbolic skill-set
// matching into a single explainable relevance score.
package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/encoder"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// The final score is a fixed convex combination of the rescaled cosine
// similarity and the symbolic skill-match fraction. The 0.5/0.5 split is the
// documented production weighting, pinned by a regression test.
const (
	NeuralWeight   = 0.5
	SymbolicWeight = 0.5
)

// Notes thresholds on the skill-match fraction.
const (
	strongMatchFraction   = 0.7
	moderateMatchFraction = 0.4
)

// Scorer scores (job, candidate) text pairs against one encoder snapshot.
// It is stateless across calls and safe for concurrent use.
type Scorer struct {
	enc    *encoder.Encoder
	ext    *skills.Extractor
	maxLen int
}

// NewScorer builds a scorer over the given encoder and skill extractor,
// encoding texts at the snapshot's maximum sequence length.
func NewScorer(enc *encoder.Encoder, ext *skills.Extractor) *Scorer {
	return &Scorer{enc: enc, ext: ext, maxLen: enc.Config().MaxSeqLen}
}

// Score computes the relevance of a candidate for one job posting. It either
// returns a fully-formed MatchResult or a typed error, never a partial or
// degraded score.
func (s *Scorer) Score(jobID, jobText, candidateText string) (*types.MatchResult, error) {
	jobEmbedding, err := s.enc.EmbedPooled(jobText, s.maxLen)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job text: %w", err)
	}
	candidateEmbedding, err := s.enc.EmbedPooled(candidateText, s.maxLen)
	if err != nil {
		return nil, fmt.Errorf("failed to embed candidate text: %w", err)
	}

	cosine, err := CosineSimilarity(jobEmbedding, candidateEmbedding)
	if err != nil {
		return nil, err
	}

	jobSkills := s.ext.Extract(jobText)
	candidateSkills := s.ext.Extract(candidateText)
	matched := jobSkills.Intersect(candidateSkills)
	missing := jobSkills.Subtract(candidateSkills)
	extra := candidateSkills.Subtract(jobSkills)

	// No skills required means the symbolic requirement is trivially
	// satisfied.
	fraction := 1.0
	if len(jobSkills) > 0 {
		fraction = float64(len(matched)) / float64(len(jobSkills))
	}

	neural := (cosine + 1) / 2
	score := clamp(NeuralWeight*neural + SymbolicWeight*fraction)

	return &types.MatchResult{
		JobID:              jobID,
		Score:              score,
		CosineSimilarity:   cosine,
		SkillMatchFraction: fraction,
		MatchedSkills:      matched,
		MissingSkills:      missing,
		ExtraSkills:        extra,
		JobYearsRequired:   skills.ExtractExperienceYears(jobText),
		CandidateYears:     skills.ExtractExperienceYears(candidateText),
		Recommendation:     ranking.Recommend(score),
		Notes:              buildNotes(matched, missing, fraction),
	}, nil
}

// clamp absorbs floating-point drift at the interval boundaries.
func clamp(score float64) float64 {
	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}

// buildNotes creates a brief explanation of the match.
func buildNotes(matched, missing types.SkillSet, fraction float64) string {
	var parts []string

	if len(matched) > 0 {
		joined := strings.Join(matched, ", ")
		switch {
		case fraction >= strongMatchFraction:
			parts = append(parts, fmt.Sprintf("Strong skill match (%s)", joined))
		case fraction >= moderateMatchFraction:
			parts = append(parts, fmt.Sprintf("Moderate skill match (%s)", joined))
		default:
			parts = append(parts, fmt.Sprintf("Weak skill match (%s)", joined))
		}
	} else if len(missing) > 0 {
		parts = append(parts, "No skill matches")
	} else {
		parts = append(parts, "No skills required")
	}

	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("Missing: %s", strings.Join(missing, ", ")))
	}

	return strings.Join(parts, ". ")
}
