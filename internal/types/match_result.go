// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult represents the outcome of scoring one (job, candidate) pair.
// The score is a pure function of its inputs for a fixed model snapshot.
type MatchResult struct {
	JobID              string   `json:"job_id"`
	Score              float64  `json:"score"`
	CosineSimilarity   float64  `json:"cosine_similarity"`
	SkillMatchFraction float64  `json:"skill_match_fraction"`
	MatchedSkills      []string `json:"matched_skills"`
	MissingSkills      []string `json:"missing_skills"`
	ExtraSkills        []string `json:"extra_skills"`
	JobYearsRequired   int      `json:"job_years_required,omitempty"`
	CandidateYears     int      `json:"candidate_years,omitempty"`
	Recommendation     string   `json:"recommendation"`
	Notes              string   `json:"notes,omitempty"`
}
