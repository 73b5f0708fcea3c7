package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/brandpulse/social-monitor/internal/notifications"
	"github.com/brandpulse/social-monitor/internal/search"
	"github.com/brandpulse/social-monitor/internal/store"
	"github.com/sirupsen/logrus"
)

// SearchRunner is the aggregator contract the runner depends on.
type SearchRunner interface {
	Run(ctx context.Context, req search.Request) (*search.Response, error)
}

// Runner executes one alert rescan: search, filter, persist, notify.
type Runner struct {
	aggregator SearchRunner
	alerts     store.AlertStore
	notifier   notifications.Notifier
}

// NewRunner creates an alert runner.
func NewRunner(aggregator SearchRunner, alerts store.AlertStore, notifier notifications.Notifier) *Runner {
	return &Runner{
		aggregator: aggregator,
		alerts:     alerts,
		notifier:   notifier,
	}
}

// RunAlert rescans one alert. Hits are sentiment-annotated so alerts
// that opt out of negative sentiment can drop those results. The alert's
// lastRun is updated on success; notification failures are logged but do
// not fail the run.
func (r *Runner) RunAlert(ctx context.Context, alert models.Alert) (*models.AlertRunReport, error) {
	logrus.Infof("Running alert %d (%s)", alert.ID, alert.Name)

	resp, err := r.aggregator.Run(ctx, search.Request{
		Type:              "brand-opportunity",
		Query:             alert.Keywords,
		Platforms:         alert.Platforms,
		MaxResults:        alert.MaxResults,
		AnnotateSentiment: true,
	})
	if err != nil {
		return nil, fmt.Errorf("alert %d search failed: %w", alert.ID, err)
	}

	results := resp.Results
	if !alert.IncludeNegativeSentiment {
		results = dropNegative(results)
	}

	report := &models.AlertRunReport{
		AlertID:      alert.ID,
		AlertName:    alert.Name,
		Query:        alert.Keywords,
		Platforms:    alert.Platforms,
		TotalResults: len(results),
		Results:      results,
		RanAt:        time.Now(),
	}

	now := report.RanAt
	alert.LastRun = &now
	if !r.alerts.UpdateAlert(alert) {
		return nil, fmt.Errorf("alert %d disappeared during run", alert.ID)
	}

	if err := r.notifier.SendRunReport(alert, report); err != nil {
		logrus.Errorf("Notification delivery failed for alert %d: %v", alert.ID, err)
	}

	return report, nil
}

func dropNegative(hits []models.SearchHit) []models.SearchHit {
	filtered := make([]models.SearchHit, 0, len(hits))
	for _, hit := range hits {
		if hit.Sentiment == "negative" {
			continue
		}
		filtered = append(filtered, hit)
	}
	return filtered
}
