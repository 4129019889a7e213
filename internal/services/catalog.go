package services

import (
	"regexp"
	"strings"
)

// SkillCatalog is the static reference set of known skill terms,
// grouped by category and flattened into lookup structures for
// matching. It is built once at process start and never mutated, so
// sharing it across concurrent requests is safe.
type SkillCatalog struct {
	Categories map[string][]string

	terms    []string                  // flattened, lowercase
	termSet  map[string]struct{}       // membership by lowercase term
	patterns map[string]*regexp.Regexp // whole-word matcher per term
}

var skillCategories = map[string][]string{
	"programming_languages": {
		"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift", "kotlin", "go", "rust",
		"typescript", "html", "css", "sql", "r", "matlab", "scala", "perl", "bash", "shell",
	},
	"web_frameworks": {
		"django", "flask", "fastapi", "spring", "express", "react", "angular", "vue", "laravel", "ruby on rails",
		"asp.net", "jquery", "bootstrap", "tailwind", "sass", "less",
	},
	"data_science": {
		"machine learning", "deep learning", "natural language processing", "nlp", "computer vision",
		"data analysis", "data visualization", "statistical modeling", "predictive modeling",
		"neural networks", "tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy",
		"matplotlib", "seaborn", "plotly", "tableau", "power bi",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "sql server", "cassandra",
		"elasticsearch", "dynamodb", "firebase",
	},
	"cloud_technologies": {
		"aws", "azure", "google cloud", "docker", "kubernetes", "terraform", "jenkins", "ci/cd",
		"serverless", "lambda", "s3", "ec2", "rds",
	},
	"tools_methodologies": {
		"git", "github", "gitlab", "jira", "agile", "scrum", "devops", "rest api", "graphql",
		"microservices", "oauth", "jwt", "linux", "unix",
	},
}

var defaultCatalog = NewSkillCatalog(skillCategories)

// DefaultSkillCatalog returns the process-wide catalog.
func DefaultSkillCatalog() *SkillCatalog {
	return defaultCatalog
}

func NewSkillCatalog(categories map[string][]string) *SkillCatalog {
	c := &SkillCatalog{
		Categories: categories,
		termSet:    make(map[string]struct{}),
		patterns:   make(map[string]*regexp.Regexp),
	}

	for _, terms := range categories {
		for _, term := range terms {
			term = strings.ToLower(term)
			if _, ok := c.termSet[term]; ok {
				continue
			}
			c.termSet[term] = struct{}{}
			c.terms = append(c.terms, term)
			// \b matching so "java" does not hit inside "javascript".
			// \b misfires next to non-word characters, so terms like
			// "c++" get explicit boundary classes instead.
			c.patterns[term] = compileWholeWord(term)
		}
	}

	return c
}

func compileWholeWord(term string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(term)

	prefix := `\b`
	if !startsWithWordChar(term) {
		prefix = `(?:^|[^\w])`
	}
	suffix := `\b`
	if !endsWithWordChar(term) {
		suffix = `(?:[^\w]|$)`
	}

	return regexp.MustCompile(prefix + quoted + suffix)
}

func startsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	r := rune(s[0])
	return r == '_' || ('a' <= r && r <= 'z') || ('0' <= r && r <= '9')
}

func endsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	r := rune(s[len(s)-1])
	return r == '_' || ('a' <= r && r <= 'z') || ('0' <= r && r <= '9')
}

// Terms returns every catalog term, lowercase.
func (c *SkillCatalog) Terms() []string {
	return c.terms
}

// Contains reports whether term is a catalog skill (case-insensitive).
func (c *SkillCatalog) Contains(term string) bool {
	_, ok := c.termSet[strings.ToLower(term)]
	return ok
}

// MatchWholeWord reports whether term occurs as a whole word in the
// given lowercase text.
func (c *SkillCatalog) MatchWholeWord(term, lowerText string) bool {
	pattern, ok := c.patterns[term]
	if !ok {
		return false
	}
	return pattern.MatchString(lowerText)
}
