package reports

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/brandpulse/social-monitor/internal/storage"
	"github.com/brandpulse/social-monitor/internal/store"
	"github.com/sirupsen/logrus"
)

const recentRunLimit = 10

// Report summarizes the search activity accumulated in the store.
type Report struct {
	GeneratedAt        time.Time             `json:"generated_at"`
	TotalRuns          int                   `json:"total_runs"`
	TotalHits          int                   `json:"total_hits"`
	RunsByType         map[string]int        `json:"runs_by_type"`
	HitsByPlatform     map[string]int        `json:"hits_by_platform"`
	SentimentBreakdown map[string]int        `json:"sentiment_breakdown,omitempty"`
	RecentRuns         []models.SearchResult `json:"recent_runs"`
}

// Service builds reports over stored search results and optionally
// archives them. A nil archive disables export persistence.
type Service struct {
	results store.SearchResultStore
	archive storage.Archive
}

// NewService creates a report service.
func NewService(results store.SearchResultStore, archive storage.Archive) *Service {
	return &Service{
		results: results,
		archive: archive,
	}
}

// Build assembles a report from all stored search results.
func (s *Service) Build() *Report {
	runs := s.results.ListSearchResults("")

	report := &Report{
		GeneratedAt:        time.Now(),
		TotalRuns:          len(runs),
		RunsByType:         make(map[string]int),
		HitsByPlatform:     make(map[string]int),
		SentimentBreakdown: make(map[string]int),
		RecentRuns:         []models.SearchResult{},
	}

	for _, run := range runs {
		report.RunsByType[run.Type]++
		report.TotalHits += len(run.Results)
		for _, hit := range run.Results {
			report.HitsByPlatform[hit.Platform]++
			if hit.Sentiment != "" {
				report.SentimentBreakdown[hit.Sentiment]++
			}
		}
	}

	// Newest runs last in store order; expose the tail, newest first.
	for i := len(runs) - 1; i >= 0 && len(report.RecentRuns) < recentRunLimit; i-- {
		report.RecentRuns = append(report.RecentRuns, runs[i])
	}

	return report
}

// Export builds a report and, when an archive is configured, stores a
// JSON snapshot. Returns the report and the snapshot name ("" when no
// archive is configured).
func (s *Service) Export() (*Report, string, error) {
	report := s.Build()

	if s.archive == nil {
		logrus.Debug("No report archive configured, skipping snapshot")
		return report, "", nil
	}

	data, err := json.Marshal(report)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal report: %w", err)
	}

	filename := fmt.Sprintf("report-%s.json", report.GeneratedAt.Format("2006-01-02-15-04-05"))
	if err := s.archive.Store(filename, data); err != nil {
		return nil, "", fmt.Errorf("failed to archive report: %w", err)
	}

	return report, filename, nil
}
