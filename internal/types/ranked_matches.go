package types

// RankedMatches represents an ordered list of match results, best first.
// The order is a deterministic total order: score descending, then more
// matched skills, then fewer missing skills, then job id ascending.
type RankedMatches struct {
	RunID  string        `json:"run_id,omitempty"`
	Ranked []MatchResult `json:"ranked"`
}
