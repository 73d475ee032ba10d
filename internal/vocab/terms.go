package vocab

// commonTerms seeds the default vocabulary with terms that dominate resumes
// and job postings, so the encoder sees meaningful ids even without a custom
// vocabulary in the model snapshot.
var commonTerms = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "go", "rust", "swift",
	// Frameworks & libraries
	"react", "angular", "vue", "django", "flask", "spring", "nodejs", "express",
	// DevOps & cloud
	"docker", "kubernetes", "aws", "azure", "gcp", "jenkins", "gitlab", "terraform",
	// Databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	// Action verbs
	"developed", "implemented", "designed", "engineered", "architected",
	"led", "managed", "coordinated", "optimized", "improved", "accelerated",
	"launched", "delivered", "built", "created", "maintained", "scaled",
	// Nouns
	"team", "project", "feature", "product", "system", "application",
	"service", "platform", "infrastructure", "api", "microservice", "database",
	// Seniority & role adjectives
	"senior", "junior", "lead", "principal", "staff", "full-stack", "back-end", "front-end",
	// General
	"experience", "years", "skills", "proficiency", "expertise", "knowledge",
	"requirements", "responsibilities", "qualifications", "benefits",
}

// SeedTerms returns a copy of the default vocabulary seed terms.
func SeedTerms() []string {
	terms := make([]string, len(commonTerms))
	copy(terms, commonTerms)
	return terms
}
