package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// MaxResultsPerCall is the search provider's per-call result ceiling.
const MaxResultsPerCall = 10

// SerperClient calls the Serper web search API.
type SerperClient struct {
	apiKey  string
	baseURL string
	client  *resty.Client
}

type serperRequest struct {
	Query       string `json:"q"`
	Num         int    `json:"num"`
	Language    string `json:"hl"`
	Geolocation string `json:"gl"`
}

type serperResponse struct {
	Organic []SerperHit `json:"organic"`
}

// SerperHit is one organic result as returned by the provider.
type SerperHit struct {
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	Link        string `json:"link"`
	DisplayLink string `json:"displayLink"`
	Position    int    `json:"position"`
}

// NewSerperClient creates a search client with the default API key. The
// base URL is configurable so tests can point at a stub server.
func NewSerperClient(apiKey, baseURL string) *SerperClient {
	return &SerperClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: resty.New().
			SetTimeout(30 * time.Second).
			SetHeader("User-Agent", "social-monitor/1.0"),
	}
}

// Search issues one search call. An apiKey argument overrides the
// configured default; an empty num defaults to the provider ceiling.
func (c *SerperClient) Search(ctx context.Context, query, apiKey string, num int) ([]SerperHit, error) {
	key := c.apiKey
	if apiKey != "" {
		key = apiKey
	}
	if num <= 0 || num > MaxResultsPerCall {
		num = MaxResultsPerCall
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-API-KEY", key).
		SetHeader("Content-Type", "application/json").
		SetBody(serperRequest{
			Query:       query,
			Num:         num,
			Language:    "en",
			Geolocation: "us",
		}).
		Post(c.baseURL + "/search")

	if err != nil {
		return nil, fmt.Errorf("serper request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("serper API returned status %d", resp.StatusCode())
	}

	var searchResp serperResponse
	if err := json.Unmarshal(resp.Body(), &searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode serper response: %w", err)
	}

	return searchResp.Organic, nil
}
