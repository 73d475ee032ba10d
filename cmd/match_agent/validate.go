package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a JSON Schema",
	Long:  "Validates a JSON document against one of the repo schemas (job postings, candidate profile, ranked matches, model parameters), exiting non-zero on failure.",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to JSON Schema file (required)")
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to JSON file to validate (required)")

	for _, flag := range []string{"schema", "json"} {
		if err := validateCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if err := schemas.ValidateJSON(validateSchema, validateJSON); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s satisfies %s\n", validateJSON, validateSchema)
	return nil
}
