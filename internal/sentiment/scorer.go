// Package sentiment scores free text against a word valence lexicon.
package sentiment

import (
	"strings"

	"github.com/Anway-Kapoor/SentiNews/internal/models"
)

// Scorer holds the merged lexicon. It is stateless after construction
// and safe for concurrent use.
type Scorer struct {
	lexicon map[string]int
}

// NewScorer builds a scorer from the base lexicon with the domain
// table merged on top. Domain entries win on conflict.
func NewScorer() *Scorer {
	merged := make(map[string]int, len(baseLexicon)+len(domainLexicon))
	for word, weight := range baseLexicon {
		merged[word] = weight
	}
	for word, weight := range domainLexicon {
		merged[word] = weight
	}
	return &Scorer{lexicon: merged}
}

// Score evaluates one text. It is total: every input, including empty
// or whitespace-only text, yields a result.
func (s *Scorer) Score(text string) models.SentimentResult {
	tokens := strings.Fields(strings.ToLower(text))

	result := models.SentimentResult{
		Category: models.CategoryNeutral,
		Words: models.ContributingWords{
			Positive: []string{},
			Negative: []string{},
		},
	}
	if len(tokens) == 0 {
		return result
	}

	for _, token := range tokens {
		word, weight, ok := s.lookup(token)
		if !ok {
			continue
		}
		result.Score += weight
		if weight > 0 {
			result.Words.Positive = append(result.Words.Positive, word)
		} else {
			result.Words.Negative = append(result.Words.Negative, word)
		}
	}

	result.Comparative = float64(result.Score) / float64(len(tokens))
	result.Category = categorize(result.Score)
	return result
}

// lookup tries the raw token first so emoticon entries match, then
// retries with surrounding punctuation trimmed.
func (s *Scorer) lookup(token string) (string, int, bool) {
	if weight, ok := s.lexicon[token]; ok {
		return token, weight, true
	}
	trimmed := strings.Trim(token, `.,!?;"'()[]{}<>*#@&%~`)
	if trimmed == "" || trimmed == token {
		return "", 0, false
	}
	if weight, ok := s.lexicon[trimmed]; ok {
		return trimmed, weight, true
	}
	return "", 0, false
}

// categorize maps a raw score to a category. The asymmetric 4/-4 and
// 1/-1 boundaries mirror the lexicon design and must stay as-is.
func categorize(score int) string {
	switch {
	case score >= 4:
		return models.CategoryVeryPositive
	case score >= 1:
		return models.CategoryPositive
	case score > -1 && score < 1:
		return models.CategoryNeutral
	case score <= -4:
		return models.CategoryVeryNegative
	default:
		return models.CategoryNegative
	}
}

// CollapseCategory folds the very positive and very negative
// categories into their plain buckets for display-level aggregation.
// The stored category on a ScoredPost is never altered.
func CollapseCategory(category string) string {
	switch category {
	case models.CategoryVeryPositive:
		return models.CategoryPositive
	case models.CategoryVeryNegative:
		return models.CategoryNegative
	default:
		return category
	}
}
