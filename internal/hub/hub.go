// Package hub routes analysis updates to the websocket sessions
// subscribed to each topic.
package hub

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Anway-Kapoor/SentiNews/internal/models"
)

// Events a client may send.
const (
	EventSubscribeTopic   = "subscribe-topic"
	EventUnsubscribeTopic = "unsubscribe-topic"
	EventGetActiveTopics  = "get-active-topics"
)

// Events the server sends.
const (
	EventSentimentUpdate = "sentiment-update"
	EventActiveTopics    = "active-topics"
)

// clientMessage is the inbound wire format.
type clientMessage struct {
	Event string `json:"event"`
	Topic string `json:"topic,omitempty"`
}

// serverMessage is the outbound wire format.
type serverMessage struct {
	Event  string                 `json:"event"`
	Topic  string                 `json:"topic,omitempty"`
	Topics []string               `json:"topics,omitempty"`
	Data   *models.AnalysisResult `json:"data,omitempty"`
}

// TopicLister answers get-active-topics requests; the monitor
// implements it.
type TopicLister interface {
	ListActiveTopics() []string
}

// Hub maps topics to subscriber sessions. It holds back-references
// only; session lifetime belongs to the transport layer, which must
// call OnDisconnect when a connection closes.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*Session]struct{}

	lister TopicLister

	published int
	dropped   int
}

// New creates an empty hub.
func New() *Hub {
	return &Hub{
		topics: make(map[string]map[*Session]struct{}),
	}
}

// SetTopicLister wires the active-topic source. Set once at startup,
// before any session connects.
func (h *Hub) SetTopicLister(lister TopicLister) {
	h.lister = lister
}

// Subscribe adds a membership. Idempotent.
func (h *Hub) Subscribe(session *Session, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subscribers, ok := h.topics[topic]
	if !ok {
		subscribers = make(map[*Session]struct{})
		h.topics[topic] = subscribers
	}
	subscribers[session] = struct{}{}

	logrus.WithFields(logrus.Fields{
		"session": session.ID(),
		"topic":   topic,
	}).Debug("Session subscribed")
}

// Unsubscribe removes a membership. No error if absent.
func (h *Hub) Unsubscribe(session *Session, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(session, topic)
}

// OnDisconnect removes every membership held by the session. Skipping
// this on disconnect leaks membership entries.
func (h *Hub) OnDisconnect(session *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for topic := range h.topics {
		h.removeLocked(session, topic)
	}
	session.closeSend()

	logrus.WithField("session", session.ID()).Debug("Session disconnected")
}

func (h *Hub) removeLocked(session *Session, topic string) {
	subscribers, ok := h.topics[topic]
	if !ok {
		return
	}
	delete(subscribers, session)
	if len(subscribers) == 0 {
		delete(h.topics, topic)
	}
}

// SubscriberCount reports how many sessions follow a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Publish delivers a sentiment-update to every subscriber of the
// topic. Zero subscribers is a no-op. Delivery is best-effort
// at-most-once: a session whose send buffer is full is skipped.
func (h *Hub) Publish(topic string, result models.AnalysisResult) {
	payload, err := json.Marshal(serverMessage{
		Event: EventSentimentUpdate,
		Topic: topic,
		Data:  &result,
	})
	if err != nil {
		logrus.Errorf("Failed to encode sentiment update for %q: %v", topic, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for session := range h.topics[topic] {
		select {
		case session.send <- payload:
			h.published++
		default:
			h.dropped++
			logrus.WithFields(logrus.Fields{
				"session": session.ID(),
				"topic":   topic,
			}).Warn("Send buffer full, dropping update")
		}
	}
}

// ActiveTopics returns the monitor's active-topic snapshot.
func (h *Hub) ActiveTopics() []string {
	if h.lister == nil {
		return []string{}
	}
	return h.lister.ListActiveTopics()
}

// Stats returns delivery counters for the metrics endpoint.
func (h *Hub) Stats() (published, dropped int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.published, h.dropped
}
