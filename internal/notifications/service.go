package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/brandpulse/social-monitor/internal/config"
	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Service delivers alert run results via the channels each alert opts
// into: SMTP email and/or a webhook POST.
type Service struct {
	config *config.Config
	client *resty.Client
	sender EmailSender
}

// Ensure Service implements Notifier
var _ Notifier = (*Service)(nil)

// webhookPayload is the JSON body POSTed to an alert's webhook URL.
type webhookPayload struct {
	AlertID      int                `json:"alertId"`
	AlertName    string             `json:"alertName"`
	Query        string             `json:"query"`
	Platforms    []string           `json:"platforms"`
	TotalResults int                `json:"totalResults"`
	Results      []models.SearchHit `json:"results"`
	RanAt        time.Time          `json:"ranAt"`
	ReportURL    string             `json:"reportUrl,omitempty"`
}

// NewService creates a notification service.
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		client: resty.New().SetTimeout(30 * time.Second),
		sender: newSMTPSender(cfg),
	}
}

// SendRunReport delivers a run report on every channel the alert has
// configured. Channel failures are joined into one error; a failure on
// one channel does not stop the others.
func (s *Service) SendRunReport(alert models.Alert, report *models.AlertRunReport) error {
	var errors []string

	if alert.WebhookURL != "" {
		if err := s.sendToWebhook(alert, report); err != nil {
			logrus.Errorf("Failed to send webhook notification for alert %d: %v", alert.ID, err)
			errors = append(errors, fmt.Sprintf("webhook: %v", err))
		} else {
			logrus.Infof("Sent webhook notification for alert %d", alert.ID)
		}
	}

	if alert.EmailNotifications && alert.Email != "" {
		if !s.config.SMTPConfigured() {
			logrus.Warnf("Alert %d requests email notifications but SMTP is not configured", alert.ID)
		} else if err := s.sendEmail(alert, report); err != nil {
			logrus.Errorf("Failed to send email notification for alert %d: %v", alert.ID, err)
			errors = append(errors, fmt.Sprintf("email: %v", err))
		} else {
			logrus.Infof("Sent email notification for alert %d", alert.ID)
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("notification errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

func (s *Service) sendToWebhook(alert models.Alert, report *models.AlertRunReport) error {
	payload := &webhookPayload{
		AlertID:      report.AlertID,
		AlertName:    report.AlertName,
		Query:        report.Query,
		Platforms:    report.Platforms,
		TotalResults: report.TotalResults,
		Results:      report.Results,
		RanAt:        report.RanAt,
		ReportURL:    alert.ReportURL,
	}

	resp, err := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(alert.WebhookURL)

	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return nil
}

func (s *Service) sendEmail(alert models.Alert, report *models.AlertRunReport) error {
	subject := fmt.Sprintf("Alert \"%s\" - %d new results", alert.Name, report.TotalResults)

	htmlBody, err := buildEmailHTML(report)
	if err != nil {
		return fmt.Errorf("failed to build email HTML: %w", err)
	}

	textBody := buildEmailText(alert, report)

	return s.sender.Send(alert.Email, subject, textBody, htmlBody)
}

func buildEmailHTML(report *models.AlertRunReport) (string, error) {
	tmpl := `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Alert Results</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .header { background-color: #2563eb; color: white; padding: 20px; border-radius: 5px; }
        .result { border-left: 4px solid #2563eb; padding: 10px; margin: 10px 0; background-color: #fafafa; }
        .result-title { font-weight: bold; margin-bottom: 5px; }
        .result-meta { color: #666; font-size: 0.9em; }
        .positive { border-left-color: #16a34a; }
        .negative { border-left-color: #dc2626; }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.AlertName}}</h1>
        <p>{{.TotalResults}} results for "{{.Query}}" on {{.RanAt.Format "January 2, 2006 at 3:04 PM UTC"}}</p>
    </div>

    {{range .Results}}
    <div class="result {{.Sentiment}}">
        <div class="result-title">
            <a href="{{.URL}}" target="_blank">{{.Title}}</a>
        </div>
        <div class="result-meta">{{.Platform}}{{if .Sentiment}} | {{.Sentiment}}{{end}}</div>
        {{if .Snippet}}<p>{{.Snippet | truncate 200}}</p>{{end}}
    </div>
    {{end}}

    <hr>
    <p><small>This report was generated automatically by your monitoring alert.</small></p>
</body>
</html>
`

	t := template.New("email").Funcs(template.FuncMap{
		"truncate": func(length int, s string) string {
			if len(s) <= length {
				return s
			}
			return s[:length] + "..."
		},
	})

	t, err := t.Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, report); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func buildEmailText(alert models.Alert, report *models.AlertRunReport) string {
	var text strings.Builder

	text.WriteString(fmt.Sprintf("Alert: %s\n", alert.Name))
	text.WriteString(fmt.Sprintf("Query: %s\n", report.Query))
	text.WriteString(fmt.Sprintf("Ran: %s\n", report.RanAt.Format("2006-01-02 15:04:05 UTC")))
	text.WriteString(fmt.Sprintf("Results: %d\n\n", report.TotalResults))

	for i, hit := range report.Results {
		text.WriteString(fmt.Sprintf("%d. %s\n", i+1, hit.Title))
		text.WriteString(fmt.Sprintf("   Platform: %s | URL: %s\n", hit.Platform, hit.URL))
		if hit.Snippet != "" {
			snippet := hit.Snippet
			if len(snippet) > 200 {
				snippet = snippet[:200] + "..."
			}
			text.WriteString(fmt.Sprintf("   %s\n", snippet))
		}
	}

	if alert.ReportURL != "" {
		text.WriteString(fmt.Sprintf("\nFull report: %s\n", alert.ReportURL))
	}

	return text.String()
}
