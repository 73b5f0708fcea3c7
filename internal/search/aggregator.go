package search

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/brandpulse/social-monitor/internal/platforms"
	"github.com/brandpulse/social-monitor/internal/sentiment"
	"github.com/brandpulse/social-monitor/internal/store"
	"github.com/sirupsen/logrus"
)

// Searcher is the outbound search provider contract.
type Searcher interface {
	Search(ctx context.Context, query, apiKey string, num int) ([]SerperHit, error)
}

// Aggregator fans one query out across platforms, normalizes the hits and
// persists the merged result.
type Aggregator struct {
	searcher Searcher
	results  store.SearchResultStore
}

// Request describes one aggregation run.
type Request struct {
	Type              string // "brand-opportunity" | "thread-discovery"
	Query             string
	Platforms         []string
	MaxResults        int
	APIKey            string // overrides the configured default when set
	AnnotateSentiment bool
}

// Response is the merged outcome of a run. Errors maps platform label to
// the failure message for platforms that contributed nothing.
type Response struct {
	Results []models.SearchHit
	Query   string
	Errors  map[string]string
}

// NewAggregator creates an aggregator backed by the given provider and store.
func NewAggregator(searcher Searcher, results store.SearchResultStore) *Aggregator {
	return &Aggregator{
		searcher: searcher,
		results:  results,
	}
}

// platformHits holds one platform's contribution, indexed by the
// platform's position in the request so merged output preserves the
// requested order.
type platformHits struct {
	platform string
	hits     []SerperHit
	err      error
}

// Run searches every requested platform concurrently. Each platform call
// is fault-isolated: a failure yields an empty contribution and a
// recorded error, never an overall failure. The join waits for all
// platforms to settle.
func (a *Aggregator) Run(ctx context.Context, req Request) (*Response, error) {
	slots := make([]platformHits, len(req.Platforms))

	var wg sync.WaitGroup
	for i, platform := range req.Platforms {
		wg.Add(1)
		go func(slot int, platform string) {
			defer wg.Done()

			query := fmt.Sprintf("%s site:%s", req.Query, platforms.Domain(platform))
			hits, err := a.searcher.Search(ctx, query, req.APIKey, req.MaxResults)
			if err != nil {
				logrus.Errorf("Search failed for platform %s: %v", platform, err)
			}

			slots[slot] = platformHits{platform: platform, hits: hits, err: err}
		}(i, platform)
	}
	wg.Wait()

	resp := &Response{
		Results: []models.SearchHit{},
		Query:   req.Query,
		Errors:  make(map[string]string),
	}

	for _, slot := range slots {
		if slot.err != nil {
			resp.Errors[slot.platform] = slot.err.Error()
			continue
		}
		for _, hit := range slot.hits {
			normalized := models.SearchHit{
				Title:       hit.Title,
				Snippet:     hit.Snippet,
				URL:         hit.Link,
				Platform:    slot.platform,
				DisplayLink: hit.DisplayLink,
				Position:    hit.Position,
			}
			if req.AnnotateSentiment {
				normalized.Sentiment = sentiment.Analyze(hit.Title + " " + hit.Snippet)
			}
			resp.Results = append(resp.Results, normalized)
		}
	}

	a.results.CreateSearchResult(models.SearchResult{
		Type:      req.Type,
		Query:     req.Query,
		Results:   resp.Results,
		Platforms: req.Platforms,
	})

	logrus.Infof("Aggregated %d results across %d platforms (%d failed)",
		len(resp.Results), len(req.Platforms), len(resp.Errors))

	return resp, nil
}

// BuildOpportunityQuery assembles the brand-opportunity search expression:
// competitor mentions, optional extra keywords, minus the caller's own
// brand and any excluded terms.
func BuildOpportunityQuery(brandName, competitorName, keywords, excludeKeywords string) string {
	parts := []string{competitorName}
	if keywords != "" {
		parts = append(parts, keywords)
	}
	parts = append(parts, "-"+brandName)
	for _, excluded := range strings.Split(excludeKeywords, ",") {
		excluded = strings.TrimSpace(excluded)
		if excluded != "" {
			parts = append(parts, "-"+excluded)
		}
	}
	return strings.Join(parts, " ")
}
