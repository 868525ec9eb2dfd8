package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"resumelens/internal/errors"
)

// Vocabulary holds every keyword and phrase table the lenses match against.
// Tables are data, not code: scoring logic never embeds a word list directly,
// so tables can be extended or overridden without touching the analyzers.
type Vocabulary struct {
	// RoleOrder preserves lookup precedence for RoleKeywords: the first
	// role name contained in the target role string wins.
	RoleOrder    []string
	RoleKeywords map[string][]string

	ResumeSignals []string

	GoodHeaders []string
	BadHeaders  []string

	WeakPhrases []string
	StrongVerbs []string

	IndustryTerms []string

	EduTerms     []string
	ProjectTerms []string
	ExpTerms     []string
}

// DefaultRole is assumed when the caller's profile carries no target role.
const DefaultRole = "software engineer"

// DefaultVocabulary returns the built-in tables. Callers get a fresh copy;
// mutating the result never affects other auditors.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		RoleOrder: []string{
			"software engineer",
			"web developer",
			"data scientist",
			"frontend developer",
			"backend developer",
			"devops engineer",
			"default",
		},
		RoleKeywords: map[string][]string{
			"software engineer": {
				"react", "javascript", "typescript", "node", "python", "java", "api", "rest",
				"graphql", "sql", "nosql", "mongodb", "postgresql", "docker", "kubernetes",
				"ci/cd", "aws", "azure", "gcp", "git", "agile", "scrum", "microservices",
				"scalability", "testing", "unit test", "tdd", "oop", "design patterns",
				"data structures", "algorithms",
			},
			"web developer": {
				"html", "css", "javascript", "typescript", "react", "vue", "angular",
				"next.js", "node", "express", "tailwind", "sass", "responsive",
				"accessibility", "seo", "webpack", "vite", "api", "rest", "graphql", "git",
				"figma", "ui/ux", "performance", "cross-browser", "progressive web app", "pwa",
			},
			"data scientist": {
				"python", "r", "sql", "machine learning", "deep learning", "tensorflow",
				"pytorch", "scikit-learn", "pandas", "numpy", "statistics",
				"data visualization", "tableau", "power bi", "nlp", "neural network",
				"regression", "classification", "clustering", "feature engineering",
				"a/b testing", "jupyter", "spark", "hadoop", "etl",
			},
			"frontend developer": {
				"html", "css", "javascript", "typescript", "react", "vue", "angular",
				"next.js", "tailwind", "sass", "responsive", "accessibility", "seo",
				"webpack", "vite", "figma", "ui/ux", "performance", "state management",
				"redux", "testing", "jest", "cypress", "storybook", "design system",
			},
			"backend developer": {
				"python", "java", "node", "go", "rust", "api", "rest", "graphql", "sql",
				"nosql", "mongodb", "postgresql", "redis", "docker", "kubernetes", "aws",
				"microservices", "message queue", "kafka", "rabbitmq", "ci/cd",
				"authentication", "security", "caching", "load balancing",
			},
			"devops engineer": {
				"docker", "kubernetes", "terraform", "ansible", "jenkins", "ci/cd", "aws",
				"azure", "gcp", "linux", "bash", "python", "monitoring", "prometheus",
				"grafana", "elk", "infrastructure as code", "networking", "security",
				"automation", "git", "helm", "istio",
			},
			"default": {
				"communication", "teamwork", "leadership", "problem solving", "analytical",
				"project management", "agile", "scrum", "git", "python", "javascript",
				"sql", "api", "cloud", "docker", "testing", "ci/cd", "data analysis",
			},
		},
		ResumeSignals: []string{
			"experience", "education", "skills", "projects", "work", "employment",
			"intern", "developer", "engineer", "summary", "objective", "certifications",
			"resume", "curriculum vitae", "cv",
		},
		GoodHeaders: []string{
			"experience", "education", "skills", "projects", "certifications", "summary",
			"objective", "work history", "professional experience", "technical skills",
		},
		BadHeaders: []string{
			"my journey", "my story", "about me", "who i am", "my background",
			"professional story", "career narrative",
		},
		WeakPhrases: []string{
			"responsible for", "helped", "assisted", "worked on", "involved in",
			"participated in", "tasked with", "duties included", "contributed to",
			"supported", "handled", "managed to",
		},
		StrongVerbs: []string{
			"engineered", "architected", "spearheaded", "optimized", "automated",
			"reduced", "increased", "delivered", "launched", "designed", "implemented",
			"scaled", "migrated", "built", "transformed", "accelerated", "streamlined",
			"pioneered",
		},
		IndustryTerms: []string{
			"2024", "2025", "2026", "cloud", "ai", "machine learning", "devops", "security",
		},
		EduTerms: []string{
			"computer science", "software", "engineering", "information technology",
			"data science", "mathematics", "statistics", "bca", "mca", "b.tech", "m.tech",
			"bsc", "msc", "bachelor", "master", "degree",
		},
		ProjectTerms: []string{
			"project", "built", "developed", "created", "designed", "implemented",
			"application", "system", "platform", "tool", "website", "app",
		},
		ExpTerms: []string{
			"intern", "developer", "engineer", "analyst", "associate", "assistant",
			"junior", "senior", "lead", "manager", "experience", "worked at", "employment",
		},
	}
}

// resolveRole returns the first known role name contained in the lowercased
// target role, falling back to the generic default set.
func (v *Vocabulary) resolveRole(targetRole string) string {
	for _, name := range v.RoleOrder {
		if name == "default" {
			continue
		}
		if strings.Contains(targetRole, name) {
			return name
		}
	}
	return "default"
}

// vocabOverlay mirrors the YAML shape of a vocabulary override file. Every
// field is optional; present fields replace the corresponding default table.
type vocabOverlay struct {
	RoleKeywords  map[string][]string `mapstructure:"role_keywords"`
	ResumeSignals []string            `mapstructure:"resume_signals"`
	GoodHeaders   []string            `mapstructure:"good_headers"`
	BadHeaders    []string            `mapstructure:"bad_headers"`
	WeakPhrases   []string            `mapstructure:"weak_phrases"`
	StrongVerbs   []string            `mapstructure:"strong_verbs"`
	IndustryTerms []string            `mapstructure:"industry_terms"`
	EduTerms      []string            `mapstructure:"edu_terms"`
	ProjectTerms  []string            `mapstructure:"project_terms"`
	ExpTerms      []string            `mapstructure:"exp_terms"`
}

// LoadVocabulary builds a vocabulary from the defaults plus an optional YAML
// overlay file. Overlay roles are merged into the role table; new role names
// are appended to the lookup order ahead of the default fallback.
func LoadVocabulary(path string) (*Vocabulary, error) {
	vocab := DefaultVocabulary()
	if path == "" {
		return vocab, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("failed to read vocabulary file: %s", path), err)
	}

	var overlay vocabOverlay
	if err := v.Unmarshal(&overlay); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("failed to parse vocabulary file: %s", path), err)
	}

	vocab.apply(&overlay)
	return vocab, nil
}

func (v *Vocabulary) apply(overlay *vocabOverlay) {
	for role, kws := range overlay.RoleKeywords {
		role = strings.ToLower(role)
		if _, known := v.RoleKeywords[role]; !known {
			// Keep "default" last so it stays the fallback.
			idx := slices.Index(v.RoleOrder, "default")
			if idx < 0 {
				v.RoleOrder = append(v.RoleOrder, role)
			} else {
				v.RoleOrder = slices.Insert(v.RoleOrder, idx, role)
			}
		}
		v.RoleKeywords[role] = lowerAll(kws)
	}
	if len(overlay.ResumeSignals) > 0 {
		v.ResumeSignals = lowerAll(overlay.ResumeSignals)
	}
	if len(overlay.GoodHeaders) > 0 {
		v.GoodHeaders = lowerAll(overlay.GoodHeaders)
	}
	if len(overlay.BadHeaders) > 0 {
		v.BadHeaders = lowerAll(overlay.BadHeaders)
	}
	if len(overlay.WeakPhrases) > 0 {
		v.WeakPhrases = lowerAll(overlay.WeakPhrases)
	}
	if len(overlay.StrongVerbs) > 0 {
		v.StrongVerbs = lowerAll(overlay.StrongVerbs)
	}
	if len(overlay.IndustryTerms) > 0 {
		v.IndustryTerms = lowerAll(overlay.IndustryTerms)
	}
	if len(overlay.EduTerms) > 0 {
		v.EduTerms = lowerAll(overlay.EduTerms)
	}
	if len(overlay.ProjectTerms) > 0 {
		v.ProjectTerms = lowerAll(overlay.ProjectTerms)
	}
	if len(overlay.ExpTerms) > 0 {
		v.ExpTerms = lowerAll(overlay.ExpTerms)
	}
}
