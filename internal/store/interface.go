package store

import "github.com/brandpulse/social-monitor/internal/models"

// AlertStore defines the contract for alert persistence.
type AlertStore interface {
	CreateAlert(alert models.Alert) models.Alert
	GetAlert(id int) (models.Alert, bool)
	ListAlerts() []models.Alert
	UpdateAlert(alert models.Alert) bool
	DeleteAlert(id int) bool
}

// SearchResultStore defines the contract for search result persistence.
type SearchResultStore interface {
	CreateSearchResult(result models.SearchResult) models.SearchResult
	ListSearchResults(resultType string) []models.SearchResult
}

// ReplyStore defines the contract for generated reply persistence.
type ReplyStore interface {
	CreateReply(reply models.GeneratedReply) models.GeneratedReply
	GetReply(id int) (models.GeneratedReply, bool)
	ListReplies() []models.GeneratedReply
	SetFeedback(id int, feedback string) bool
}
