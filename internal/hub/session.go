package hub

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 16
)

// Session is the per-connection actor. It owns the websocket; the hub
// only holds a back-reference. All socket writes go through the write
// pump so publishes and protocol replies never interleave.
type Session struct {
	id        string
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

// closeSend is called by the hub, under its lock, when the session is
// fully removed. Publish holds the same lock, so nothing can write to
// the channel after it closes.
func (s *Session) closeSend() {
	s.closeOnce.Do(func() { close(s.send) })
}

// NewSession wraps an upgraded connection. The caller starts the
// pumps.
func NewSession(h *Hub, conn *websocket.Conn) *Session {
	return &Session{
		id:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// ReadPump consumes client messages until the connection drops, then
// cleans up hub membership.
func (s *Session) ReadPump() {
	defer func() {
		s.hub.OnDisconnect(s)
		s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithField("session", s.id).Debugf("Read error: %v", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logrus.WithField("session", s.id).Warnf("Malformed client message: %v", err)
			continue
		}
		s.handle(msg)
	}
}

func (s *Session) handle(msg clientMessage) {
	switch msg.Event {
	case EventSubscribeTopic:
		if msg.Topic != "" {
			s.hub.Subscribe(s, msg.Topic)
		}
	case EventUnsubscribeTopic:
		if msg.Topic != "" {
			s.hub.Unsubscribe(s, msg.Topic)
		}
	case EventGetActiveTopics:
		s.reply(serverMessage{
			Event:  EventActiveTopics,
			Topics: s.hub.ActiveTopics(),
		})
	default:
		logrus.WithFields(logrus.Fields{
			"session": s.id,
			"event":   msg.Event,
		}).Debug("Ignoring unknown event")
	}
}

// reply queues a protocol response, dropping it if the session is
// backed up.
func (s *Session) reply(msg serverMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		logrus.Errorf("Failed to encode %s reply: %v", msg.Event, err)
		return
	}
	select {
	case s.send <- payload:
	default:
		logrus.WithField("session", s.id).Warn("Send buffer full, dropping reply")
	}
}

// WritePump serializes all socket writes and keeps the connection
// alive with pings.
func (s *Session) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
