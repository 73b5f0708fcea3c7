package server

import (
	"net/http"

	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/brandpulse/social-monitor/internal/search"
	"github.com/sirupsen/logrus"
)

// searchResponse is the shared response shape of both search endpoints.
type searchResponse struct {
	Success      bool               `json:"success"`
	Results      []models.SearchHit `json:"results"`
	TotalResults int                `json:"totalResults"`
	Query        string             `json:"query"`
}

func (s *Server) handleBrandOpportunities(w http.ResponseWriter, r *http.Request) {
	var req models.BrandOpportunityRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Brand name and competitor name are required", err)
		return
	}

	query := search.BuildOpportunityQuery(req.BrandName, req.CompetitorName, req.Keywords, req.ExcludeKeywords)

	resp, err := s.aggregator.Run(r.Context(), search.Request{
		Type:              "brand-opportunity",
		Query:             query,
		Platforms:         req.Platforms,
		MaxResults:        req.MaxResults,
		APIKey:            req.SerperAPIKey,
		AnnotateSentiment: req.Sentiment != "",
	})
	if err != nil {
		s.metrics.recordError()
		logrus.Errorf("Brand opportunities search error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to search brand opportunities", err)
		return
	}

	s.recordSearchMetrics(resp)

	results := resp.Results
	if req.Sentiment != "" && req.Sentiment != "all" {
		results = filterBySentiment(results, req.Sentiment)
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Success:      true,
		Results:      results,
		TotalResults: len(results),
		Query:        resp.Query,
	})
}

func filterBySentiment(hits []models.SearchHit, label string) []models.SearchHit {
	filtered := make([]models.SearchHit, 0, len(hits))
	for _, hit := range hits {
		if hit.Sentiment == label {
			filtered = append(filtered, hit)
		}
	}
	return filtered
}

func (s *Server) handleThreadSearch(w http.ResponseWriter, r *http.Request) {
	var req models.ThreadSearchRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Keywords are required", err)
		return
	}

	resp, err := s.aggregator.Run(r.Context(), search.Request{
		Type:       "thread-discovery",
		Query:      req.Keywords,
		Platforms:  req.Platforms,
		MaxResults: req.MaxResults,
		APIKey:     req.SerperAPIKey,
	})
	if err != nil {
		s.metrics.recordError()
		logrus.Errorf("Thread discovery search error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to discover threads", err)
		return
	}

	s.recordSearchMetrics(resp)
	writeJSON(w, http.StatusOK, searchResponse{
		Success:      true,
		Results:      resp.Results,
		TotalResults: len(resp.Results),
		Query:        resp.Query,
	})
}

func (s *Server) recordSearchMetrics(resp *search.Response) {
	hitsByPlatform := make(map[string]int)
	for _, hit := range resp.Results {
		hitsByPlatform[hit.Platform]++
	}
	s.metrics.recordSearch(hitsByPlatform)
}

func (s *Server) handleListSearchResults(w http.ResponseWriter, r *http.Request) {
	resultType := r.URL.Query().Get("type")
	writeJSON(w, http.StatusOK, s.results.ListSearchResults(resultType))
}
