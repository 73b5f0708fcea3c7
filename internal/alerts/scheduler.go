package alerts

import (
	"context"
	"time"

	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/brandpulse/social-monitor/internal/store"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Frequency windows for rescans. Monthly uses a fixed 30 days.
var frequencyWindows = map[string]time.Duration{
	"daily":   24 * time.Hour,
	"weekly":  7 * 24 * time.Hour,
	"monthly": 30 * 24 * time.Hour,
}

// Scheduler ticks hourly and rescans every active alert whose frequency
// window has elapsed since its last run.
type Scheduler struct {
	alerts store.AlertStore
	runner *Runner
	cron   *cron.Cron
}

// NewScheduler creates an alert scheduler.
func NewScheduler(alerts store.AlertStore, runner *Runner) *Scheduler {
	return &Scheduler{
		alerts: alerts,
		runner: runner,
		cron:   cron.New(cron.WithSeconds()),
	}
}

// Start begins the hourly due-alert check.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("0 0 * * * *", func() {
		s.RunDueAlerts(context.Background())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logrus.Info("Alert scheduler started (hourly due check)")
	return nil
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		logrus.Info("Alert scheduler stopped")
	}
}

// RunDueAlerts rescans every active alert that is due now.
func (s *Scheduler) RunDueAlerts(ctx context.Context) {
	now := time.Now()
	due := 0

	for _, alert := range s.alerts.ListAlerts() {
		if !alert.IsActive || !Due(alert, now) {
			continue
		}
		due++
		if _, err := s.runner.RunAlert(ctx, alert); err != nil {
			logrus.Errorf("Scheduled rescan failed for alert %d: %v", alert.ID, err)
		}
	}

	logrus.Infof("Due-alert check complete (%d alerts rescanned)", due)
}

// Due reports whether the alert's frequency window has elapsed since its
// last run. Alerts that never ran are due immediately.
func Due(alert models.Alert, now time.Time) bool {
	if alert.LastRun == nil {
		return true
	}

	window, ok := frequencyWindows[alert.Frequency]
	if !ok {
		window = frequencyWindows["weekly"]
	}

	return now.Sub(*alert.LastRun) >= window
}
