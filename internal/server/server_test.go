package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anway-Kapoor/SentiNews/internal/analysis"
	"github.com/Anway-Kapoor/SentiNews/internal/config"
	"github.com/Anway-Kapoor/SentiNews/internal/hub"
	"github.com/Anway-Kapoor/SentiNews/internal/models"
	"github.com/Anway-Kapoor/SentiNews/internal/monitor"
	"github.com/Anway-Kapoor/SentiNews/internal/sentiment"
)

type stubFetcher struct {
	mu    sync.Mutex
	posts []models.Post
	err   error
}

func (f *stubFetcher) Fetch(ctx context.Context, topic string, timeRange models.TimeRange, realtime bool) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if realtime {
		// Monitoring cycles see no new content in these tests.
		return nil, nil
	}
	return f.posts, nil
}

func newTestServer(fetcher *stubFetcher) (*Server, *monitor.Service, *hub.Hub) {
	cfg := &config.Config{
		Port:           "3000",
		PollInterval:   time.Minute,
		TrendingTopics: []string{"chess", "technology", "AI"},
	}
	analyzer := analysis.NewAnalyzer(sentiment.NewScorer())
	h := hub.New()
	mon := monitor.NewService(fetcher, analyzer, h, 0)
	h.SetTopicLister(mon)
	return New(cfg, fetcher, analyzer, mon, h), mon, h
}

func TestHandleAnalysis_MissingTopic(t *testing.T) {
	srv, _, _ := newTestServer(&stubFetcher{})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/api/analysis", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Topic is required", body["error"])
}

func TestHandleAnalysis_ReturnsPostsAndRegistersTopic(t *testing.T) {
	fetcher := &stubFetcher{posts: []models.Post{
		{ID: "hn-1", Text: "chess engines", Date: time.Now()},
		{ID: "news-0", Text: "chess news", Date: time.Now()},
	}}
	srv, mon, _ := newTestServer(fetcher)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/api/analysis?topic=chess&timeRange=week", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []models.Post `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)

	assert.Equal(t, []string{"chess"}, mon.ListActiveTopics())
}

func TestHandleAnalysis_AnalyzedResponse(t *testing.T) {
	fetcher := &stubFetcher{posts: []models.Post{
		{ID: "1", Text: "amazing product", Date: time.Now()},
	}}
	srv, _, _ := newTestServer(fetcher)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/api/analysis?topic=chess&analyzed=true", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data models.AnalysisResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.AnalyzedPosts, 1)
	assert.Equal(t, models.CategoryVeryPositive, body.Data.AnalyzedPosts[0].Sentiment.Category)
	assert.Equal(t, models.Distribution{Positive: 1}, body.Data.Distribution)
}

func TestHandleAnalysis_FetchError(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("upstream exploded")}
	srv, mon, _ := newTestServer(fetcher)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/api/analysis?topic=chess", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch data", body["error"])
	assert.Equal(t, "upstream exploded", body["details"])

	// Failed searches do not register the topic.
	assert.Empty(t, mon.ListActiveTopics())
}

func TestHandleTrendingTopics(t *testing.T) {
	srv, _, _ := newTestServer(&stubFetcher{})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/api/trending-topics", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Topics []string `json:"topics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"chess", "technology", "AI"}, body.Topics)
}

func TestHandleHealth(t *testing.T) {
	srv, _, _ := newTestServer(&stubFetcher{})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestHandleMetrics(t *testing.T) {
	srv, _, _ := newTestServer(&stubFetcher{})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "active_topics")
}

func TestWebSocket_SubscribeAndReceive(t *testing.T) {
	srv, _, h := newTestServer(&stubFetcher{})

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{
		"event": "subscribe-topic",
		"topic": "chess",
	}))

	require.Eventually(t, func() bool {
		return h.SubscriberCount("chess") == 1
	}, time.Second, 10*time.Millisecond)

	h.Publish("chess", models.AnalysisResult{KeyPhrases: []string{"opening"}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg struct {
		Event string                `json:"event"`
		Topic string                `json:"topic"`
		Data  models.AnalysisResult `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "sentiment-update", msg.Event)
	assert.Equal(t, "chess", msg.Topic)
	assert.Equal(t, []string{"opening"}, msg.Data.KeyPhrases)
}

func TestWebSocket_ActiveTopicsRequest(t *testing.T) {
	fetcher := &stubFetcher{}
	srv, mon, _ := newTestServer(fetcher)
	mon.StartMonitoring("chess")

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"event": "get-active-topics"}))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg struct {
		Event  string   `json:"event"`
		Topics []string `json:"topics"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "active-topics", msg.Event)
	assert.Equal(t, []string{"chess"}, msg.Topics)
}

func TestWebSocket_DisconnectCleansUp(t *testing.T) {
	srv, _, h := newTestServer(&stubFetcher{})

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(map[string]string{
		"event": "subscribe-topic",
		"topic": "chess",
	}))
	require.Eventually(t, func() bool {
		return h.SubscriberCount("chess") == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()

	assert.Eventually(t, func() bool {
		return h.SubscriberCount("chess") == 0
	}, 2*time.Second, 10*time.Millisecond)
}
