package models

import "time"

// TimeRange is the lookback window requested by a search.
type TimeRange string

const (
	TimeRangeDay   TimeRange = "day"
	TimeRangeWeek  TimeRange = "week"
	TimeRangeMonth TimeRange = "month"
)

// ParseTimeRange maps a query parameter to a TimeRange, defaulting to week.
func ParseTimeRange(s string) TimeRange {
	switch TimeRange(s) {
	case TimeRangeDay, TimeRangeWeek, TimeRangeMonth:
		return TimeRange(s)
	default:
		return TimeRangeWeek
	}
}

// Days returns the number of days covered by the range.
func (t TimeRange) Days() int {
	switch t {
	case TimeRangeDay:
		return 1
	case TimeRangeMonth:
		return 30
	default:
		return 7
	}
}

// Duration returns the range as a time.Duration.
func (t TimeRange) Duration() time.Duration {
	return time.Duration(t.Days()) * 24 * time.Hour
}

// Post is one unit of content fetched from a provider. IDs are
// provider-prefixed ("news-", "hn-", "mock-") so they never collide
// across providers. Posts are never mutated after fetch; scoring
// wraps them in a ScoredPost instead.
type Post struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Date     time.Time `json:"date"`
	Platform string    `json:"platform"`
	Source   string    `json:"source,omitempty"`
	URL      string    `json:"url,omitempty"`
	Likes    int       `json:"likes"`
	Shares   int       `json:"shares"`
}

// Sentiment categories, from most positive to most negative.
const (
	CategoryVeryPositive = "very positive"
	CategoryPositive     = "positive"
	CategoryNeutral      = "neutral"
	CategoryNegative     = "negative"
	CategoryVeryNegative = "very negative"
)

// ContributingWords lists the lexicon hits behind a score, per polarity.
type ContributingWords struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// SentimentResult is the scorer's verdict for one text.
type SentimentResult struct {
	Score       int               `json:"score"`
	Comparative float64           `json:"comparative"`
	Category    string            `json:"category"`
	Words       ContributingWords `json:"words"`
}

// ScoredPost is a Post plus its sentiment. The base post is embedded
// unchanged; the pair is immutable once built.
type ScoredPost struct {
	Post
	Sentiment SentimentResult `json:"sentiment"`
}

// DayCounts holds the per-day sentiment counts for the time series
// view. Very positive and very negative are collapsed into the plain
// buckets for this view only; the stored category is untouched.
type DayCounts struct {
	Date     string `json:"date"`
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
}

// Distribution holds collapsed-bucket totals for a whole batch.
type Distribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// AnalysisResult is the analyzer's output for one batch. It is fully
// derived from the input posts and cheap to recompute; it is never
// patched incrementally.
type AnalysisResult struct {
	AnalyzedPosts []ScoredPost `json:"analyzedPosts"`
	TimeSeries    []DayCounts  `json:"timeSeriesData"`
	Distribution  Distribution `json:"distributionData"`
	TopPosts      []ScoredPost `json:"topPosts"`
	KeyPhrases    []string     `json:"keyPhrases"`
}
