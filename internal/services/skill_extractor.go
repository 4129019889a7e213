package services

import (
	"context"
	"log"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entity labels the extractor treats as technology-like.
var skillEntityLabels = map[string]struct{}{
	"ORG":     {},
	"PRODUCT": {},
	"TECH":    {},
}

type SkillExtractorService interface {
	// ExtractSkills returns the sorted, deduplicated skill terms found
	// in text. Empty or whitespace-only input yields an empty result.
	ExtractSkills(ctx context.Context, text string) []string

	// MissingSkills returns the skills required by the job description
	// that are absent from resumeSkills.
	MissingSkills(ctx context.Context, resumeSkills []string, jobDescription string) []string
}

type skillExtractorService struct {
	catalog    *SkillCatalog
	recognizer EntityRecognizer // nil when the capability is unavailable
}

// NewSkillExtractorService builds the extractor. recognizer may be nil;
// extraction then runs on catalog matching alone.
func NewSkillExtractorService(catalog *SkillCatalog, recognizer EntityRecognizer) SkillExtractorService {
	return &skillExtractorService{
		catalog:    catalog,
		recognizer: recognizer,
	}
}

// titleCase builds its caser per call; a shared cases.Caser is not safe
// across concurrent requests.
func titleCase(v string) string {
	return cases.Title(language.English).String(v)
}

// ExtractSkills implements SkillExtractorService.
func (s *skillExtractorService) ExtractSkills(ctx context.Context, text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	lowerText := strings.ToLower(text)

	found := make(map[string]string) // lowercase -> display form

	// Whole-word catalog matching is the deterministic baseline.
	for _, term := range s.catalog.Terms() {
		if s.catalog.MatchWholeWord(term, lowerText) {
			found[term] = titleCase(term)
		}
	}

	// Entity recognition is best effort on top of that; when it fails
	// we keep whatever the catalog pass found.
	if s.recognizer != nil {
		entities, err := s.recognizer.RecognizeEntities(ctx, text)
		if err != nil {
			log.Printf("⚠️  Entity recognition unavailable, skipping enrichment: %v\n", err)
		} else {
			for _, ent := range entities {
				if _, ok := skillEntityLabels[ent.Label]; !ok {
					continue
				}
				entLower := strings.ToLower(ent.Text)
				for _, term := range s.catalog.Terms() {
					if strings.Contains(entLower, term) {
						if _, seen := found[entLower]; !seen {
							found[entLower] = titleCase(ent.Text)
						}
						break
					}
				}
			}
		}
	}

	skills := make([]string, 0, len(found))
	for _, display := range found {
		skills = append(skills, display)
	}
	sort.Strings(skills)

	return skills
}

// MissingSkills implements SkillExtractorService.
func (s *skillExtractorService) MissingSkills(ctx context.Context, resumeSkills []string, jobDescription string) []string {
	if strings.TrimSpace(jobDescription) == "" {
		return []string{}
	}

	have := make(map[string]struct{}, len(resumeSkills))
	for _, skill := range resumeSkills {
		have[strings.ToLower(skill)] = struct{}{}
	}

	missing := []string{}
	for _, skill := range s.ExtractSkills(ctx, jobDescription) {
		if _, ok := have[strings.ToLower(skill)]; !ok {
			missing = append(missing, skill)
		}
	}

	return missing
}
