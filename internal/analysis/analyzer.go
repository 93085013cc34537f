// Package analysis turns a batch of raw posts into scored posts plus
// the aggregate views the dashboard renders.
package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Anway-Kapoor/SentiNews/internal/models"
	"github.com/Anway-Kapoor/SentiNews/internal/sentiment"
)

const (
	topPostCount   = 5
	keyPhraseCount = 5
)

var nonWord = regexp.MustCompile(`\W+`)

// stopWords are skipped during key phrase extraction.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "but": {}, "or": {},
	"for": {}, "nor": {}, "on": {}, "at": {}, "to": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "i": {}, "you": {}, "he": {}, "she": {}, "it": {},
	"we": {}, "they": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "of": {}, "in": {}, "with": {}, "about": {}, "from": {},
}

// Analyzer scores a batch and derives its aggregates. It holds no
// state beyond the scorer and is safe to call concurrently.
type Analyzer struct {
	scorer *sentiment.Scorer
}

// NewAnalyzer creates an analyzer backed by the given scorer.
func NewAnalyzer(scorer *sentiment.Scorer) *Analyzer {
	return &Analyzer{scorer: scorer}
}

// Analyze scores every post and builds the aggregate views. The input
// is never mutated; an empty batch yields empty (non-nil) slices and a
// zero distribution.
func (a *Analyzer) Analyze(posts []models.Post) models.AnalysisResult {
	scored := make([]models.ScoredPost, len(posts))
	for i, post := range posts {
		scored[i] = models.ScoredPost{
			Post:      post,
			Sentiment: a.scorer.Score(post.Text),
		}
	}

	// Ascending by date; stable so equal timestamps keep input order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Date.Before(scored[j].Date)
	})

	return models.AnalysisResult{
		AnalyzedPosts: scored,
		TimeSeries:    buildTimeSeries(scored),
		Distribution:  buildDistribution(scored),
		TopPosts:      rankTopPosts(scored),
		KeyPhrases:    extractKeyPhrases(scored, keyPhraseCount),
	}
}

// extractKeyPhrases returns the most frequent non-trivial terms across
// the batch. Ties keep first-seen order.
func extractKeyPhrases(posts []models.ScoredPost, count int) []string {
	frequency := make(map[string]int)
	firstSeen := make(map[string]int)

	for _, post := range posts {
		for _, token := range nonWord.Split(strings.ToLower(post.Text), -1) {
			if len(token) <= 2 {
				continue
			}
			if _, skip := stopWords[token]; skip {
				continue
			}
			if isAllDigits(token) {
				continue
			}
			if _, seen := frequency[token]; !seen {
				firstSeen[token] = len(firstSeen)
			}
			frequency[token]++
		}
	}

	terms := make([]string, 0, len(frequency))
	for term := range frequency {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if frequency[terms[i]] != frequency[terms[j]] {
			return frequency[terms[i]] > frequency[terms[j]]
		}
		return firstSeen[terms[i]] < firstSeen[terms[j]]
	})

	if len(terms) > count {
		terms = terms[:count]
	}
	return terms
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// buildTimeSeries groups posts by calendar day in each post's own
// location, counting collapsed sentiment buckets. Days come out sorted
// ascending; the yyyy-MM-dd format makes lexicographic chronological.
func buildTimeSeries(posts []models.ScoredPost) []models.DayCounts {
	byDay := make(map[string]*models.DayCounts)

	for _, post := range posts {
		day := post.Date.Format("2006-01-02")
		counts, ok := byDay[day]
		if !ok {
			counts = &models.DayCounts{Date: day}
			byDay[day] = counts
		}
		switch sentiment.CollapseCategory(post.Sentiment.Category) {
		case models.CategoryPositive:
			counts.Positive++
		case models.CategoryNegative:
			counts.Negative++
		default:
			counts.Neutral++
		}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make([]models.DayCounts, 0, len(days))
	for _, day := range days {
		series = append(series, *byDay[day])
	}
	return series
}

func buildDistribution(posts []models.ScoredPost) models.Distribution {
	var dist models.Distribution
	for _, post := range posts {
		switch sentiment.CollapseCategory(post.Sentiment.Category) {
		case models.CategoryPositive:
			dist.Positive++
		case models.CategoryNegative:
			dist.Negative++
		default:
			dist.Neutral++
		}
	}
	return dist
}

// rankTopPosts orders by engagement times sentiment intensity. The
// stable sort keeps the incoming (date-sorted) order on ties.
func rankTopPosts(posts []models.ScoredPost) []models.ScoredPost {
	ranked := make([]models.ScoredPost, len(posts))
	copy(ranked, posts)

	sort.SliceStable(ranked, func(i, j int) bool {
		return engagementScore(ranked[i]) > engagementScore(ranked[j])
	})

	if len(ranked) > topPostCount {
		ranked = ranked[:topPostCount]
	}
	return ranked
}

func engagementScore(post models.ScoredPost) int {
	score := post.Sentiment.Score
	if score < 0 {
		score = -score
	}
	return (post.Likes + post.Shares) * score
}
