package server

import (
	"net/http"
	"strconv"

	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const (
	defaultMinOpportunityScore = "medium"
	defaultAlertMaxResults     = 10
)

func (s *Server) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.alerts.ListAlerts())
}

func (s *Server) handleCreateAlert(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAlertRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid alert data", err)
		return
	}

	alert := models.Alert{
		Name:                     req.Name,
		Keywords:                 req.Keywords,
		Platforms:                req.Platforms,
		Frequency:                req.Frequency,
		MinOpportunityScore:      req.MinOpportunityScore,
		MaxResults:               req.MaxResults,
		IncludeNegativeSentiment: req.IncludeNegativeSentiment,
		EmailNotifications:       true,
		Email:                    req.Email,
		ReportURL:                req.ReportURL,
		WebhookURL:               req.WebhookURL,
		IsActive:                 true,
	}
	if alert.MinOpportunityScore == "" {
		alert.MinOpportunityScore = defaultMinOpportunityScore
	}
	if alert.MaxResults == 0 {
		alert.MaxResults = defaultAlertMaxResults
	}
	if req.EmailNotifications != nil {
		alert.EmailNotifications = *req.EmailNotifications
	}
	if req.IsActive != nil {
		alert.IsActive = *req.IsActive
	}

	created := s.alerts.CreateAlert(alert)
	logrus.Infof("Created alert %d (%s, %s)", created.ID, created.Name, created.Frequency)

	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleDeleteAlert(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid alert id", err)
		return
	}

	if !s.alerts.DeleteAlert(id) {
		writeError(w, http.StatusNotFound, "Alert not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleRunAlert(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid alert id", err)
		return
	}

	alert, ok := s.alerts.GetAlert(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Alert not found", nil)
		return
	}

	report, err := s.runner.RunAlert(r.Context(), alert)
	if err != nil {
		s.metrics.recordError()
		logrus.Errorf("Manual alert run failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to run alert", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"report":  report,
	})
}
