package notifications

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brandpulse/social-monitor/internal/config"
	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingSender struct {
	to      string
	subject string
	text    string
	html    string
	calls   int
}

func (c *capturingSender) Send(to, subject, textBody, htmlBody string) error {
	c.to, c.subject, c.text, c.html = to, subject, textBody, htmlBody
	c.calls++
	return nil
}

func sampleReport() *models.AlertRunReport {
	return &models.AlertRunReport{
		AlertID:      7,
		AlertName:    "competitor watch",
		Query:        "globex -acme",
		Platforms:    []string{"Reddit"},
		TotalResults: 1,
		Results: []models.SearchHit{
			{Title: "Globex pricing thread", URL: "https://reddit.com/r/saas/1", Platform: "Reddit", Snippet: "looking for alternatives", Sentiment: "negative"},
		},
		RanAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestSendRunReport_Webhook(t *testing.T) {
	var payload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewService(&config.Config{})
	alert := models.Alert{ID: 7, Name: "competitor watch", WebhookURL: server.URL, ReportURL: "https://dashboard.example/reports/7"}

	require.NoError(t, svc.SendRunReport(alert, sampleReport()))

	assert.Equal(t, float64(7), payload["alertId"])
	assert.Equal(t, "competitor watch", payload["alertName"])
	assert.Equal(t, float64(1), payload["totalResults"])
	assert.Equal(t, "https://dashboard.example/reports/7", payload["reportUrl"])
}

func TestSendRunReport_WebhookFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewService(&config.Config{})
	alert := models.Alert{ID: 7, WebhookURL: server.URL}

	err := svc.SendRunReport(alert, sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSendRunReport_Email(t *testing.T) {
	sender := &capturingSender{}
	svc := &Service{
		config: &config.Config{SMTPHost: "smtp.example", SMTPUsername: "bot@example", SMTPPassword: "secret"},
		sender: sender,
	}
	alert := models.Alert{
		ID:                 7,
		Name:               "competitor watch",
		EmailNotifications: true,
		Email:              "ops@example.com",
	}

	require.NoError(t, svc.SendRunReport(alert, sampleReport()))

	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, "ops@example.com", sender.to)
	assert.Contains(t, sender.subject, "competitor watch")
	assert.Contains(t, sender.subject, "1 new results")
	assert.Contains(t, sender.text, "Globex pricing thread")
	assert.Contains(t, sender.html, "https://reddit.com/r/saas/1")
}

func TestSendRunReport_EmailSkippedWithoutSMTP(t *testing.T) {
	sender := &capturingSender{}
	svc := &Service{
		config: &config.Config{},
		sender: sender,
	}
	alert := models.Alert{ID: 7, EmailNotifications: true, Email: "ops@example.com"}

	// Not an error, just skipped.
	require.NoError(t, svc.SendRunReport(alert, sampleReport()))
	assert.Equal(t, 0, sender.calls)
}

func TestSendRunReport_NoChannelsConfigured(t *testing.T) {
	svc := NewService(&config.Config{})
	alert := models.Alert{ID: 7}

	require.NoError(t, svc.SendRunReport(alert, sampleReport()))
}
