// Package skills provides pure-function extraction of canonical skill names
// and candidate facts from free text.
package skills

import (
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vocab"
)

// skillAliases maps normalized skill-name variants to canonical names.
var skillAliases = map[string]string{
	"golang":   "go",
	"js":       "javascript",
	"ts":       "typescript",
	"k8s":      "kubernetes",
	"postgres": "postgresql",
	"reactjs":  "react",
	"vuejs":    "vue",
	"nodejs":   "nodejs",
	"node":     "nodejs",
}

// knownSkills is the canonical skill lexicon. Multi-word entries are matched
// against the normalized text; single-word entries against its tokens.
var knownSkills = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go", "rust", "swift",
	"react", "angular", "vue", "nodejs", "express", "django", "flask", "fastapi", "spring",
	"docker", "kubernetes", "jenkins", "gitlab", "github", "terraform", "ansible",
	"aws", "azure", "gcp", "cloud", "serverless", "lambda",
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra",
	"rest", "graphql", "grpc", "api", "microservices", "kafka", "rabbitmq",
	"machine learning", "deep learning", "nlp", "computer vision", "tensorflow", "pytorch", "scikit-learn",
	"git", "agile", "scrum", "ci/cd", "devops", "linux", "bash", "shell",
}

// NormalizeSkillName normalizes a skill name to its canonical form.
func NormalizeSkillName(name string) string {
	normalized := vocab.Normalize(name)
	if canonical, ok := skillAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// Extractor matches normalized text against the known skill lexicon. It
// never fails on arbitrary text; absence of skills yields an empty set.
type Extractor struct {
	single  map[string]bool
	multi   []string
	aliases map[string]string
}

// NewExtractor builds an extractor over the default lexicon and alias table.
func NewExtractor() *Extractor {
	e := &Extractor{
		single:  make(map[string]bool, len(knownSkills)),
		aliases: skillAliases,
	}
	for _, skill := range knownSkills {
		if strings.Contains(skill, " ") {
			e.multi = append(e.multi, skill)
		} else {
			e.single[NormalizeSkillName(skill)] = true
		}
	}
	return e
}

// Extract returns the canonical skill set found in text. Matching is
// token-boundary aware so short skill names never match inside longer words,
// and re-extracting from already-normalized text yields the same set.
func (e *Extractor) Extract(text string) types.SkillSet {
	normalized := vocab.Normalize(text)
	if normalized == "" {
		return types.NewSkillSet(nil)
	}

	found := make([]string, 0, 8)
	for _, token := range strings.Split(normalized, " ") {
		if canonical, ok := e.aliases[token]; ok {
			token = canonical
		}
		if e.single[token] {
			found = append(found, token)
		}
	}

	padded := " " + normalized + " "
	for _, skill := range e.multi {
		if strings.Contains(padded, " "+skill+" ") {
			found = append(found, skill)
		}
	}

	return types.NewSkillSet(found)
}
