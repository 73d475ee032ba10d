package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/schemas"
)

var schemaFiles = []string{
	"job_postings.schema.json",
	"candidate_profile.schema.json",
	"ranked_matches.schema.json",
	"model_parameters.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			// Check for required JSON Schema fields
			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]

			assert.True(t, hasType || hasSchema || hasProps,
				"schema should have at least type, $schema, or properties")
		})
	}
}

func TestRankedMatchesSchema_ValidatesExample(t *testing.T) {
	schemaPath := "ranked_matches.schema.json"
	testJSONPath := "../testdata/valid/ranked_matches.json"

	_, err := os.ReadFile(schemaPath)
	require.NoError(t, err)
	_, err = os.ReadFile(testJSONPath)
	require.NoError(t, err)

	err = schemas.ValidateJSON(schemaPath, testJSONPath)
	assert.NoError(t, err, "example ranked matches document should satisfy the schema")
}

func TestJobPostingsSchema_RejectsPostingWithoutText(t *testing.T) {
	data, err := os.ReadFile("job_postings.schema.json")
	require.NoError(t, err)

	// A posting with an id but neither title nor description is unusable.
	doc := `[{"id": "job-1", "company": "Acme"}]`

	err = schemas.ValidateJSONString(string(data), doc)
	require.Error(t, err)
}

func TestCandidateProfileSchema_AcceptsMinimalProfile(t *testing.T) {
	data, err := os.ReadFile("candidate_profile.schema.json")
	require.NoError(t, err)

	doc := `{"skills": [], "resume_text": "Experienced in Python"}`

	err = schemas.ValidateJSONString(string(data), doc)
	assert.NoError(t, err)
}
