// Package fetch fans a topic search out to the configured providers
// and applies the synthetic fallback policy.
package fetch

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Anway-Kapoor/SentiNews/internal/models"
	"github.com/Anway-Kapoor/SentiNews/internal/sources"
)

// ErrMissingTopic is returned for caller misuse; provider failures are
// never surfaced.
var ErrMissingTopic = errors.New("topic is required")

const providerTimeout = 10 * time.Second

// Fallback produces a synthetic batch when no provider has data.
type Fallback interface {
	Generate(topic string, timeRange models.TimeRange) []models.Post
}

// Service queries all enabled providers concurrently and concatenates
// their results.
type Service struct {
	providers []sources.Provider
	fallback  Fallback
}

// NewService creates a fetcher over the given providers.
func NewService(providers []sources.Provider, fallback Fallback) *Service {
	return &Service{
		providers: providers,
		fallback:  fallback,
	}
}

// Fetch retrieves posts for a topic. A single provider failure is
// logged and contributes zero posts. When every provider comes back
// empty, a non-realtime call substitutes the synthetic fallback; a
// realtime call returns an empty batch so monitoring cycles never
// fabricate content.
func (s *Service) Fetch(ctx context.Context, topic string, timeRange models.TimeRange, realtime bool) ([]models.Post, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, ErrMissingTopic
	}

	var wg sync.WaitGroup
	postsChan := make(chan []models.Post, len(s.providers))

	for _, provider := range s.providers {
		if !provider.Enabled() {
			logrus.Debugf("Provider %s disabled, skipping", provider.Name())
			continue
		}

		wg.Add(1)
		go func(p sources.Provider) {
			defer wg.Done()

			searchCtx, cancel := context.WithTimeout(ctx, providerTimeout)
			defer cancel()

			posts, err := p.Search(searchCtx, topic, timeRange)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"provider": p.Name(),
					"topic":    topic,
				}).Warnf("Provider search failed: %v", err)
				return
			}
			postsChan <- posts
		}(provider)
	}

	wg.Wait()
	close(postsChan)

	var combined []models.Post
	for posts := range postsChan {
		combined = append(combined, posts...)
	}

	logrus.WithFields(logrus.Fields{
		"topic":    topic,
		"posts":    len(combined),
		"realtime": realtime,
	}).Debug("Fetch completed")

	if len(combined) == 0 && !realtime {
		logrus.WithField("topic", topic).Info("No provider data, using synthetic fallback")
		return s.fallback.Generate(topic, timeRange), nil
	}

	return combined, nil
}
