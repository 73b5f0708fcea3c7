package notifications

import "github.com/brandpulse/social-monitor/internal/models"

// Notifier defines the contract for delivering alert run results.
type Notifier interface {
	SendRunReport(alert models.Alert, report *models.AlertRunReport) error
}
