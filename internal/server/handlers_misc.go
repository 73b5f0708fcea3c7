package server

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","timestamp":"` + time.Now().Format(time.RFC3339) + `"}`))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(s.metrics.JSON())
}

func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	report, filename, err := s.reports.Export()
	if err != nil {
		s.metrics.recordError()
		logrus.Errorf("Report export error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to export report", err)
		return
	}

	body := map[string]interface{}{
		"success": true,
		"report":  report,
	}
	if filename != "" {
		body["filename"] = filename
	}
	writeJSON(w, http.StatusOK, body)
}
