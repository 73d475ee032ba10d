package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestExtract_JobPosting(t *testing.T) {
	e := NewExtractor()

	set := e.Extract("Requires Python, Docker, AWS")

	assert.Equal(t, types.SkillSet{"aws", "docker", "python"}, set)
}

func TestExtract_CandidateText(t *testing.T) {
	e := NewExtractor()

	set := e.Extract("Experienced in Python and Docker")

	assert.Equal(t, types.SkillSet{"docker", "python"}, set)
}

func TestExtract_NoSkills(t *testing.T) {
	e := NewExtractor()

	set := e.Extract("We value teamwork and communication above all.")

	assert.Empty(t, set)
	assert.NotNil(t, set)
}

func TestExtract_EmptyText(t *testing.T) {
	e := NewExtractor()

	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   \n\t "))
}

func TestExtract_Aliases(t *testing.T) {
	e := NewExtractor()

	set := e.Extract("Golang and K8s experience, plus Postgres and JS")

	assert.Equal(t, types.SkillSet{"go", "javascript", "kubernetes", "postgresql"}, set)
}

func TestExtract_TokenBoundaries(t *testing.T) {
	e := NewExtractor()

	// "django" must not match "go", "going" must not match "go".
	set := e.Extract("Going forward we use Django")

	assert.Equal(t, types.SkillSet{"django"}, set)
}

func TestExtract_MultiWordSkills(t *testing.T) {
	e := NewExtractor()

	set := e.Extract("Background in machine learning and computer vision")

	assert.Equal(t, types.SkillSet{"computer vision", "machine learning"}, set)
}

func TestExtract_SymbolSkills(t *testing.T) {
	e := NewExtractor()

	set := e.Extract("Fluent in C++ and C#, with CI/CD pipelines")

	assert.Equal(t, types.SkillSet{"c#", "c++", "ci/cd"}, set)
}

func TestExtract_Idempotent(t *testing.T) {
	e := NewExtractor()

	first := e.Extract("Requires Python, Docker, AWS and machine learning")
	second := e.Extract(strings.Join(first, " "))

	assert.Equal(t, first, second)
}

func TestNormalizeSkillName(t *testing.T) {
	assert.Equal(t, "go", NormalizeSkillName("Golang"))
	assert.Equal(t, "kubernetes", NormalizeSkillName("K8s"))
	assert.Equal(t, "python", NormalizeSkillName(" Python "))
	assert.Equal(t, "", NormalizeSkillName(""))
}
