package sentiment

import (
	"testing"

	"github.com/Anway-Kapoor/SentiNews/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestScorer_EmptyInput(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name string
		text string
	}{
		{name: "Empty string", text: ""},
		{name: "Whitespace only", text: "   \t\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Score(tt.text)
			assert.Equal(t, 0, result.Score)
			assert.Equal(t, 0.0, result.Comparative)
			assert.Equal(t, models.CategoryNeutral, result.Category)
			assert.Empty(t, result.Words.Positive)
			assert.Empty(t, result.Words.Negative)
		})
	}
}

func TestScorer_Categories(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name     string
		text     string
		score    int
		category string
	}{
		{
			name:     "Very positive from domain lexicon",
			text:     "amazing product",
			score:    4,
			category: models.CategoryVeryPositive,
		},
		{
			name:     "Very negative from domain lexicon",
			text:     "terrible bug",
			score:    -6,
			category: models.CategoryVeryNegative,
		},
		{
			name:     "Neutral with no lexicon hits",
			text:     "it is okay",
			score:    0,
			category: models.CategoryNeutral,
		},
		{
			name:     "Plain positive",
			text:     "good weather",
			score:    3,
			category: models.CategoryPositive,
		},
		{
			name:     "Plain negative",
			text:     "slow and laggy",
			score:    -3,
			category: models.CategoryNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Score(tt.text)
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.category, result.Category)
		})
	}
}

func TestScorer_DomainOverridesBase(t *testing.T) {
	scorer := NewScorer()

	// "fantastic" lives in both tables, "laggy" and "terrible" only in
	// the domain table. All must resolve through the merged lexicon,
	// with domain weights winning on overlap.
	assert.Equal(t, 4, scorer.Score("fantastic").Score)
	assert.Equal(t, -2, scorer.Score("laggy").Score)
	assert.Equal(t, -4, scorer.Score("terrible").Score)
}

func TestScorer_Comparative(t *testing.T) {
	scorer := NewScorer()

	// "amazing product launch" = 4 over 3 tokens.
	result := scorer.Score("amazing product launch")
	assert.Equal(t, 4, result.Score)
	assert.InDelta(t, 4.0/3.0, result.Comparative, 1e-9)
}

func TestScorer_ContributingWords(t *testing.T) {
	scorer := NewScorer()

	result := scorer.Score("amazing feature but terrible bug")
	assert.Equal(t, []string{"amazing", "feature"}, result.Words.Positive)
	assert.Equal(t, []string{"terrible", "bug"}, result.Words.Negative)
}

func TestScorer_PunctuationAndEmoticons(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name  string
		text  string
		score int
	}{
		{name: "Trailing punctuation trimmed", text: "amazing!", score: 4},
		{name: "Smiley matches raw", text: "launched today :)", score: 2},
		{name: "Frown matches raw", text: "servers down :(", score: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Score(tt.text)
			assert.Equal(t, tt.score, result.Score)
		})
	}
}

func TestScorer_Deterministic(t *testing.T) {
	scorer := NewScorer()

	first := scorer.Score("the release was great but the rollout was a disaster")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scorer.Score("the release was great but the rollout was a disaster"))
	}
}

func TestCollapseCategory(t *testing.T) {
	assert.Equal(t, models.CategoryPositive, CollapseCategory(models.CategoryVeryPositive))
	assert.Equal(t, models.CategoryNegative, CollapseCategory(models.CategoryVeryNegative))
	assert.Equal(t, models.CategoryPositive, CollapseCategory(models.CategoryPositive))
	assert.Equal(t, models.CategoryNeutral, CollapseCategory(models.CategoryNeutral))
	assert.Equal(t, models.CategoryNegative, CollapseCategory(models.CategoryNegative))
}
