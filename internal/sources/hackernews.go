package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/Anway-Kapoor/SentiNews/internal/models"
)

const hackerNewsBaseURL = "https://hacker-news.firebaseio.com/v0"

// Caps on how deep a single search digs into the HN firehose.
const (
	hnIDsPerList = 100
	hnMaxMatches = 50
)

// HackerNewsSource searches recent Hacker News stories. The API has
// no search endpoint, so top/new/best story lists are scanned and
// matched against the topic terms locally.
type HackerNewsSource struct {
	baseURL string
	client  *resty.Client
	limiter *rate.Limiter
}

type hackerNewsItem struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Time        int64  `json:"time"`
	Text        string `json:"text"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
}

// NewHackerNewsSource creates a Hacker News source. No credentials
// required.
func NewHackerNewsSource() *HackerNewsSource {
	return &HackerNewsSource{
		baseURL: hackerNewsBaseURL,
		client: resty.New().
			SetTimeout(15 * time.Second).
			SetHeader("User-Agent", "SentiNews/1.0"),
		limiter: rate.NewLimiter(rate.Limit(20), 20),
	}
}

func (h *HackerNewsSource) Name() string {
	return "hackernews"
}

func (h *HackerNewsSource) Enabled() bool {
	return true
}

func (h *HackerNewsSource) Search(ctx context.Context, topic string, _ models.TimeRange) ([]models.Post, error) {
	ids, err := h.candidateIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}

	terms := strings.Fields(strings.ToLower(topic))
	var posts []models.Post

	for _, id := range ids {
		select {
		case <-ctx.Done():
			return posts, ctx.Err()
		default:
		}

		item, err := h.item(ctx, id)
		if err != nil {
			logrus.Debugf("Failed to fetch HN item %d: %v", id, err)
			continue
		}
		if item == nil || item.Title == "" {
			continue
		}

		if !matchesAnyTerm(item, terms) {
			continue
		}

		text := item.Title
		if item.Text != "" {
			text += " " + item.Text
		}
		post := models.Post{
			ID:       fmt.Sprintf("hn-%d", item.ID),
			Text:     text,
			Date:     time.Unix(item.Time, 0),
			Platform: "HackerNews",
			URL:      fmt.Sprintf("https://news.ycombinator.com/item?id=%d", item.ID),
			Likes:    item.Score,
			Shares:   item.Descendants,
		}
		if item.Type == "story" && item.URL != "" {
			post.URL = item.URL
		}
		posts = append(posts, post)

		if len(posts) >= hnMaxMatches {
			break
		}
	}

	return posts, nil
}

func matchesAnyTerm(item *hackerNewsItem, terms []string) bool {
	content := strings.ToLower(item.Title + " " + item.Text)
	for _, term := range terms {
		if strings.Contains(content, term) {
			return true
		}
	}
	return false
}

// candidateIDs merges the top, new and best story lists, deduplicated
// and capped per list.
func (h *HackerNewsSource) candidateIDs(ctx context.Context) ([]int, error) {
	lists := []string{"topstories", "newstories", "beststories"}

	seen := make(map[int]struct{})
	var merged []int

	for _, list := range lists {
		ids, err := h.storyList(ctx, list)
		if err != nil {
			logrus.Warnf("Failed to fetch HN %s: %v", list, err)
			continue
		}
		if len(ids) > hnIDsPerList {
			ids = ids[:hnIDsPerList]
		}
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}

	if len(merged) == 0 {
		return nil, fmt.Errorf("no story lists available")
	}
	return merged, nil
}

func (h *HackerNewsSource) storyList(ctx context.Context, list string) ([]int, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/%s.json", h.baseURL, list))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("hacker news API returned status %d", resp.StatusCode())
	}

	var ids []int
	if err := json.Unmarshal(resp.Body(), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (h *HackerNewsSource) item(ctx context.Context, id int) (*hackerNewsItem, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/item/%d.json", h.baseURL, id))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("hacker news API returned status %d for item %d", resp.StatusCode(), id)
	}

	var item hackerNewsItem
	if err := json.Unmarshal(resp.Body(), &item); err != nil {
		return nil, err
	}
	return &item, nil
}
