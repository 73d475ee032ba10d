package types

import "fmt"

// CandidateProfile represents a candidate's extracted profile: the free resume
// text plus the structured fields derived from it.
type CandidateProfile struct {
	Name            string   `json:"name,omitempty"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	YearsExperience int      `json:"years_experience,omitempty"`
	Skills          []string `json:"skills"`
	ResumeText      string   `json:"resume_text,omitempty"`
}

// Validate checks that the profile carries enough text to be matched.
func (c *CandidateProfile) Validate() error {
	if c.ResumeText == "" {
		return fmt.Errorf("candidate profile has no resume text")
	}
	return nil
}
