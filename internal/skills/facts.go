package skills

import (
	"regexp"
	"strconv"
)

// The range pattern is tried first so "2-3 years" yields the lower bound
// instead of matching "3 years" inside the range.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*-\s*\d+\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)`),
}

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)

var phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.]?)?\(?\d{3}\)?[-.]?\d{3}[-.]?\d{4}`)

// ExtractExperienceYears parses "5 years", "3+ yrs", or "2-3 years" phrases
// and returns the first number of years found, or 0 when none is present.
func ExtractExperienceYears(text string) int {
	for _, pattern := range experiencePatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			years, err := strconv.Atoi(match[1])
			if err == nil {
				return years
			}
		}
	}
	return 0
}

// ExtractEmail returns the first email address found in text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone number found in text, or "".
func ExtractPhone(text string) string {
	return phonePattern.FindString(text)
}
