package sources

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Anway-Kapoor/SentiNews/internal/models"
)

const syntheticBatchSize = 100

var positiveTemplates = []string{
	"I'm really impressed with %s! The quality exceeded my expectations.",
	"%s is absolutely fantastic. I can't recommend it enough!",
	"Just tried %s and I'm blown away. This is a game-changer.",
	"%s has completely transformed how I work. So much more efficient now.",
	"I love how %s solves problems I didn't even know I had. Brilliant!",
}

var negativeTemplates = []string{
	"%s was a disappointment. Not worth the hype at all.",
	"I had high hopes for %s, but it fell short in several key areas.",
	"The problems with %s outweigh any benefits. Would not recommend.",
	"%s needs significant improvements before I'd consider using it again.",
	"I regret spending time with %s. There are much better alternatives.",
}

var neutralTemplates = []string{
	"%s has some good features, but also some drawbacks to consider.",
	"I've been using %s for a while. It's adequate for basic needs.",
	"%s is neither exceptional nor terrible. It gets the job done.",
	"My experience with %s has been mixed. Some things work well, others don't.",
	"%s is okay for the price point, but don't expect anything revolutionary.",
}

// Generator produces a synthetic fallback batch for a topic so a cold
// search always has displayable data. The shape is deterministic
// (batch size, sentiment mix, date window); the individual picks are
// randomized.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a generator seeded from the clock.
func NewGenerator() *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// NewGeneratorWithSeed creates a generator with a fixed seed and
// clock, for reproducible tests.
func NewGeneratorWithSeed(seed int64, now func() time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Generate builds the fallback batch, dated within the requested
// range. Roughly 40% positive, 30% neutral, 30% negative templates,
// with engagement ranges keyed to the template polarity.
func (g *Generator) Generate(topic string, timeRange models.TimeRange) []models.Post {
	g.mu.Lock()
	defer g.mu.Unlock()

	window := timeRange.Duration()
	now := g.now()

	posts := make([]models.Post, 0, syntheticBatchSize)
	for i := 0; i < syntheticBatchSize; i++ {
		age := time.Duration(g.rng.Float64() * float64(window))
		date := now.Add(-age)

		var template string
		var likesBase, sharesBase int
		switch draw := g.rng.Float64(); {
		case draw < 0.4:
			template = positiveTemplates[g.rng.Intn(len(positiveTemplates))]
			likesBase, sharesBase = 500, 100
		case draw < 0.7:
			template = neutralTemplates[g.rng.Intn(len(neutralTemplates))]
			likesBase, sharesBase = 100, 30
		default:
			template = negativeTemplates[g.rng.Intn(len(negativeTemplates))]
			likesBase, sharesBase = 300, 80
		}

		platform := "News"
		if g.rng.Float64() > 0.5 {
			platform = "HackerNews"
		}

		posts = append(posts, models.Post{
			ID:       fmt.Sprintf("mock-%d", i),
			Text:     fmt.Sprintf(template, topic),
			Date:     date,
			Platform: platform,
			Likes:    g.rng.Intn(likesBase) + 10,
			Shares:   g.rng.Intn(sharesBase) + 5,
		})
	}
	return posts
}
