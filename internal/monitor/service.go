// Package monitor keeps the registry of watched topics and runs the
// periodic fetch-analyze-publish cycles.
package monitor

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Anway-Kapoor/SentiNews/internal/models"
)

const cycleTimeout = 30 * time.Second

// Fetcher retrieves posts for a topic; the fetch service implements it.
type Fetcher interface {
	Fetch(ctx context.Context, topic string, timeRange models.TimeRange, realtime bool) ([]models.Post, error)
}

// Analyzer scores and aggregates a batch.
type Analyzer interface {
	Analyze(posts []models.Post) models.AnalysisResult
}

// Publisher fans an analysis result out to subscribers; the hub
// implements it.
type Publisher interface {
	Publish(topic string, result models.AnalysisResult)
	SubscriberCount(topic string) int
}

type topicState struct {
	idleTicks int
	cycles    int
}

// Metrics is a snapshot of monitor counters for the metrics endpoint.
type Metrics struct {
	ActiveTopics []string  `json:"active_topics"`
	TotalCycles  int       `json:"total_cycles"`
	LastTick     time.Time `json:"last_tick"`
}

// Service is the topic registry plus cycle runner. The registry is the
// only shared state and is mutex-guarded; cycles for different topics
// run in their own goroutines so one slow fetch never delays another.
type Service struct {
	mu     sync.RWMutex
	topics map[string]*topicState

	fetcher   Fetcher
	analyzer  Analyzer
	publisher Publisher

	// evictAfter > 0 stops a topic after that many consecutive ticks
	// with zero subscribers. 0 keeps topics forever.
	evictAfter int

	lastTick time.Time
}

// NewService creates the monitor.
func NewService(fetcher Fetcher, analyzer Analyzer, publisher Publisher, evictAfter int) *Service {
	return &Service{
		topics:     make(map[string]*topicState),
		fetcher:    fetcher,
		analyzer:   analyzer,
		publisher:  publisher,
		evictAfter: evictAfter,
	}
}

// StartMonitoring registers a topic and fires an immediate cycle so
// the first subscriber does not wait out a full tick. Idempotent:
// re-registering an active topic does nothing.
func (s *Service) StartMonitoring(topic string) {
	s.mu.Lock()
	if _, active := s.topics[topic]; active {
		s.mu.Unlock()
		return
	}
	s.topics[topic] = &topicState{}
	s.mu.Unlock()

	logrus.WithField("topic", topic).Info("Started monitoring topic")
	go s.runCycle(topic)
}

// StopMonitoring deactivates a topic. An in-flight cycle completes and
// may still publish; publishing to zero subscribers is harmless.
func (s *Service) StopMonitoring(topic string) {
	s.mu.Lock()
	_, active := s.topics[topic]
	delete(s.topics, topic)
	s.mu.Unlock()

	if active {
		logrus.WithField("topic", topic).Info("Stopped monitoring topic")
	}
}

// ListActiveTopics returns a sorted snapshot of the registry.
func (s *Service) ListActiveTopics() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topics := make([]string, 0, len(s.topics))
	for topic := range s.topics {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// RunCycles executes one tick: every active topic gets a cycle in its
// own goroutine. Invoked by the scheduler.
func (s *Service) RunCycles() {
	s.mu.Lock()
	s.lastTick = time.Now()
	topics := make([]string, 0, len(s.topics))
	for topic, state := range s.topics {
		topics = append(topics, topic)
		s.trackIdleLocked(topic, state)
	}
	s.mu.Unlock()

	if len(topics) == 0 {
		return
	}
	logrus.Debugf("Tick: running cycles for %d topics", len(topics))

	for _, topic := range topics {
		go s.runCycle(topic)
	}
}

// trackIdleLocked applies the idle eviction policy for one topic.
func (s *Service) trackIdleLocked(topic string, state *topicState) {
	if s.evictAfter <= 0 {
		return
	}
	if s.publisher.SubscriberCount(topic) > 0 {
		state.idleTicks = 0
		return
	}
	state.idleTicks++
	if state.idleTicks >= s.evictAfter {
		delete(s.topics, topic)
		logrus.WithFields(logrus.Fields{
			"topic": topic,
			"ticks": state.idleTicks,
		}).Info("Evicted idle topic")
	}
}

// runCycle fetches in realtime mode, analyzes, and publishes. An empty
// fetch publishes nothing; a fetch error is logged and skipped so the
// monitor keeps running.
func (s *Service) runCycle(topic string) {
	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	posts, err := s.fetcher.Fetch(ctx, topic, models.TimeRangeDay, true)
	if err != nil {
		logrus.WithField("topic", topic).Warnf("Cycle fetch failed: %v", err)
		return
	}
	if len(posts) == 0 {
		logrus.WithField("topic", topic).Debug("No new content, skipping publish")
		s.recordCycle(topic)
		return
	}

	result := s.analyzer.Analyze(posts)
	s.publisher.Publish(topic, result)

	logrus.WithFields(logrus.Fields{
		"topic": topic,
		"posts": len(posts),
	}).Debug("Published cycle update")
	s.recordCycle(topic)
}

func (s *Service) recordCycle(topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, active := s.topics[topic]; active {
		state.cycles++
	}
}

// CycleCount reports completed cycles for a topic; used by tests and
// the metrics endpoint.
func (s *Service) CycleCount(topic string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if state, active := s.topics[topic]; active {
		return state.cycles
	}
	return 0
}

// GetMetrics returns a snapshot of the monitor's counters.
func (s *Service) GetMetrics() Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := Metrics{
		ActiveTopics: make([]string, 0, len(s.topics)),
		LastTick:     s.lastTick,
	}
	for topic, state := range s.topics {
		m.ActiveTopics = append(m.ActiveTopics, topic)
		m.TotalCycles += state.cycles
	}
	sort.Strings(m.ActiveTopics)
	return m
}
