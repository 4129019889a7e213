package services

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// maxVocabulary caps the vectorizer at the most frequent terms of the
// two-document corpus.
const maxVocabulary = 1000

type SimilarityService interface {
	// Score computes a 0-100 similarity between a resume and a job
	// description. Empty input on either side scores 0; so does any
	// internal vectorization failure.
	Score(resumeText, jobDescription string) float64
}

type similarityService struct{}

func NewSimilarityService() SimilarityService {
	return &similarityService{}
}

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// normalizeText lowercases, strips punctuation, and collapses
// whitespace before vectorization.
func normalizeText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = nonWordPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// tokenize splits normalized text into terms, dropping stop words and
// single-character tokens.
func tokenize(text string) []string {
	var tokens []string
	for _, tok := range strings.Fields(text) {
		if len(tok) < 2 {
			continue
		}
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Score implements SimilarityService.
func (s *similarityService) Score(resumeText, jobDescription string) float64 {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return 0.0
	}

	resumeTokens := tokenize(normalizeText(resumeText))
	jdTokens := tokenize(normalizeText(jobDescription))
	if len(resumeTokens) == 0 || len(jdTokens) == 0 {
		return 0.0
	}

	vocabulary := buildVocabulary(resumeTokens, jdTokens)
	if len(vocabulary) == 0 {
		return 0.0
	}

	resumeVec := tfidfVector(resumeTokens, jdTokens, vocabulary)
	jdVec := tfidfVector(jdTokens, resumeTokens, vocabulary)

	similarity := cosineSimilarity(resumeVec, jdVec) * 100
	return math.Min(similarity, 100.0)
}

// buildVocabulary selects up to maxVocabulary terms, keeping the most
// frequent across both documents. Ties break alphabetically so the
// score is deterministic for fixed inputs.
func buildVocabulary(docA, docB []string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range docA {
		counts[tok]++
	}
	for _, tok := range docB {
		counts[tok]++
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > maxVocabulary {
		terms = terms[:maxVocabulary]
	}

	vocabulary := make(map[string]int, len(terms))
	for i, term := range terms {
		vocabulary[term] = i
	}
	return vocabulary
}

// tfidfVector weights doc's term frequencies by smoothed inverse
// document frequency over the two-document corpus.
func tfidfVector(doc, other []string, vocabulary map[string]int) []float64 {
	tf := make(map[string]int, len(doc))
	for _, tok := range doc {
		tf[tok]++
	}
	otherSet := make(map[string]struct{}, len(other))
	for _, tok := range other {
		otherSet[tok] = struct{}{}
	}

	const corpusSize = 2.0
	vec := make([]float64, len(vocabulary))
	for term, idx := range vocabulary {
		count, ok := tf[term]
		if !ok {
			continue
		}
		df := 1.0
		if _, inOther := otherSet[term]; inOther {
			df = 2.0
		}
		idf := math.Log((1+corpusSize)/(1+df)) + 1
		vec[idx] = float64(count) * idf
	}
	return vec
}

func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
