package types

import (
	"fmt"
	"strings"
)

// JobPosting represents a single free-text job posting to be matched.
type JobPosting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
}

// FullText returns the posting text used for encoding and skill extraction.
func (j *JobPosting) FullText() string {
	parts := make([]string, 0, 2)
	if j.Title != "" {
		parts = append(parts, j.Title)
	}
	if j.Description != "" {
		parts = append(parts, j.Description)
	}
	return strings.Join(parts, " ")
}

// Validate checks that the posting has the fields required for matching.
func (j *JobPosting) Validate() error {
	if j.ID == "" {
		return fmt.Errorf("job posting is missing an id")
	}
	if j.Title == "" && j.Description == "" {
		return fmt.Errorf("job posting %s has no title or description text", j.ID)
	}
	return nil
}
