package news

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"newsfeed/internal/model"
)

const NewsPath = "/api/news"

var errNoArticleList = errors.New("response has no articles list")

type Fetcher interface {
	Fetch(ctx context.Context) ([]model.Article, error)
}

// Client reads the article list from the news API. The transport has no
// timeout of its own; callers bound requests through ctx.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		endpoint:   strings.TrimRight(baseURL, "/") + NewsPath,
		httpClient: &http.Client{},
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Fetch(ctx context.Context) ([]model.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("news request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("server responded %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("news read: %w", err)
	}

	articles, err := decodeArticles(body)
	if err != nil {
		return nil, fmt.Errorf("news decode: %w", err)
	}

	return articles, nil
}

// decodeArticles accepts the {status, count, articles} envelope and, for older
// backends, a bare top-level array.
func decodeArticles(body []byte) ([]model.Article, error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []model.Article
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return nonNil(list), nil
	}

	var envelope newsResponse
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}

	raw := bytes.TrimSpace(envelope.Articles)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errNoArticleList
	}

	var list []model.Article
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	return nonNil(list), nil
}

func nonNil(list []model.Article) []model.Article {
	if list == nil {
		return []model.Article{}
	}
	return list
}

type newsResponse struct {
	Status   string          `json:"status"`
	Count    int             `json:"count"`
	Articles json.RawMessage `json:"articles"`
}
