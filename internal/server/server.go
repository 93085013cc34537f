// Package server exposes the HTTP API and the websocket endpoint.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/Anway-Kapoor/SentiNews/internal/analysis"
	"github.com/Anway-Kapoor/SentiNews/internal/config"
	"github.com/Anway-Kapoor/SentiNews/internal/hub"
	"github.com/Anway-Kapoor/SentiNews/internal/models"
	"github.com/Anway-Kapoor/SentiNews/internal/monitor"
)

// Fetcher is the slice of the fetch service the handlers need.
type Fetcher interface {
	Fetch(ctx context.Context, topic string, timeRange models.TimeRange, realtime bool) ([]models.Post, error)
}

// Server wires the HTTP handlers to the pipeline components.
type Server struct {
	config   *config.Config
	fetcher  Fetcher
	analyzer *analysis.Analyzer
	monitor  *monitor.Service
	hub      *hub.Hub
	upgrader websocket.Upgrader
}

// New creates the server.
func New(cfg *config.Config, fetcher Fetcher, analyzer *analysis.Analyzer, monitorService *monitor.Service, h *hub.Hub) *Server {
	return &Server{
		config:   cfg,
		fetcher:  fetcher,
		analyzer: analyzer,
		monitor:  monitorService,
		hub:      h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The dashboard UI is served from arbitrary origins in
			// development; mirror the original server's open CORS.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/analysis", s.handleAnalysis).Methods("GET")
	router.HandleFunc("/api/trending-topics", s.handleTrendingTopics).Methods("GET")
	router.HandleFunc("/ws", s.handleWebSocket).Methods("GET")
	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/metrics", s.handleMetrics).Methods("GET")

	return router
}

// handleAnalysis serves a synchronous topic search and, as a side
// effect, registers the topic for realtime monitoring.
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")
	if topic == "" {
		writeError(w, http.StatusBadRequest, "Topic is required", "")
		return
	}
	timeRange := models.ParseTimeRange(r.URL.Query().Get("timeRange"))

	logrus.WithFields(logrus.Fields{
		"topic":     topic,
		"timeRange": timeRange,
	}).Info("Analysis request")

	posts, err := s.fetcher.Fetch(r.Context(), topic, timeRange, false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch data", err.Error())
		return
	}

	s.monitor.StartMonitoring(topic)

	if r.URL.Query().Get("analyzed") == "true" {
		writeJSON(w, http.StatusOK, map[string]any{"data": s.analyzer.Analyze(posts)})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": posts})
}

func (s *Server) handleTrendingTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"topics": s.config.TrendingTopics})
}

// handleWebSocket upgrades the connection and hands it to a session.
// The session's read pump triggers hub cleanup on disconnect.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Warnf("WebSocket upgrade failed: %v", err)
		return
	}

	session := hub.NewSession(s.hub, conn)
	logrus.WithField("session", session.ID()).Debug("Client connected")

	go session.WritePump()
	go session.ReadPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	published, dropped := s.hub.Stats()
	writeJSON(w, http.StatusOK, map[string]any{
		"monitor": s.monitor.GetMetrics(),
		"hub": map[string]int{
			"published": published,
			"dropped":   dropped,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Errorf("Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	body := map[string]string{"error": message}
	if details != "" {
		body["details"] = details
	}
	writeJSON(w, status, body)
}
