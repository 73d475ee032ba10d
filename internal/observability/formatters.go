// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidateProfile outputs a human-readable summary of the extracted
// candidate profile.
func (p *Printer) PrintCandidateProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", profile.Name))
	if profile.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", profile.Email))
	}
	if profile.YearsExperience > 0 {
		sb.WriteString(fmt.Sprintf("Years:  %d\n", profile.YearsExperience))
	}

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs one scored match with its explanation.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:            %s\n", result.JobID))
	sb.WriteString(fmt.Sprintf("Score:          %.2f (%s)\n", result.Score, result.Recommendation))
	sb.WriteString(fmt.Sprintf("Cosine:         %.3f\n", result.CosineSimilarity))
	sb.WriteString(fmt.Sprintf("Skill fraction: %.2f\n", result.SkillMatchFraction))

	if len(result.MatchedSkills) > 0 {
		matched := strings.Join(result.MatchedSkills, ", ")
		if len(matched) > 40 {
			matched = matched[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Matched:        %s\n", matched))
	}
	if len(result.MissingSkills) > 0 {
		missing := strings.Join(result.MissingSkills, ", ")
		if len(missing) > 40 {
			missing = missing[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing:        %s\n", missing))
	}
	if result.Notes != "" {
		sb.WriteString(fmt.Sprintf("\n%s", result.Notes))
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedMatches outputs the top N ranked matches with scores and
// matched skills.
func (p *Printer) PrintRankedMatches(ranked *types.RankedMatches) {
	if ranked == nil || len(ranked.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(ranked.Ranked)))

	count := min(len(ranked.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := ranked.Ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, result.JobID))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (%s)\n", result.Score, result.Recommendation))
		if len(result.MatchedSkills) > 0 {
			matched := strings.Join(result.MatchedSkills, ", ")
			if len(matched) > 40 {
				matched = matched[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", matched))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(ranked.Ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED MATCHES", sb.String())
}

// PrintSkillSet outputs an extracted skill set under the given heading.
func (p *Printer) PrintSkillSet(title string, set types.SkillSet) {
	if len(set) == 0 {
		//nolint:errcheck // writing to stdout; errors are not recoverable
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title+": none found")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d skills:\n\n", len(set)))
	for _, skill := range set {
		sb.WriteString(fmt.Sprintf("  • %s\n", skill))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}
