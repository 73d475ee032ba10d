package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Extract a candidate profile from free resume text",
	Long:  "Extracts canonical skills, experience years, and contact details from a resume text file, producing a CandidateProfile JSON.",
	RunE:  runExtractSkills,
}

var (
	extractSkillsInput   string
	extractSkillsOutput  string
	extractSkillsName    string
	extractSkillsVerbose bool
)

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractSkillsInput, "resume", "r", "", "Path to input resume text file (required)")
	extractSkillsCmd.Flags().StringVarP(&extractSkillsOutput, "out", "o", "", "Path to output CandidateProfile JSON file (required)")
	extractSkillsCmd.Flags().StringVarP(&extractSkillsName, "name", "n", "", "Candidate name (optional, detected contact fields are kept either way)")
	extractSkillsCmd.Flags().BoolVarP(&extractSkillsVerbose, "verbose", "v", false, "Print the extracted profile")

	if err := extractSkillsCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := extractSkillsCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(_ *cobra.Command, _ []string) error {
	resumeContent, err := os.ReadFile(extractSkillsInput)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", extractSkillsInput, err)
	}
	resumeText := string(resumeContent)

	profile := buildCandidateProfile(resumeText, extractSkillsName)

	if extractSkillsVerbose {
		observability.NewPrinter(os.Stdout).PrintCandidateProfile(profile)
	}

	if err := writeJSONOutput(extractSkillsOutput, profile); err != nil {
		return err
	}
	validateOutput("candidate_profile.schema.json", extractSkillsOutput)

	_, _ = fmt.Fprintf(os.Stdout, "Extracted %d skills to %s\n", len(profile.Skills), extractSkillsOutput)
	return nil
}

// buildCandidateProfile derives the structured profile from raw resume text.
func buildCandidateProfile(resumeText, name string) *types.CandidateProfile {
	extractor := skills.NewExtractor()
	return &types.CandidateProfile{
		Name:            name,
		Email:           skills.ExtractEmail(resumeText),
		Phone:           skills.ExtractPhone(resumeText),
		YearsExperience: skills.ExtractExperienceYears(resumeText),
		Skills:          extractor.Extract(resumeText),
		ResumeText:      resumeText,
	}
}
