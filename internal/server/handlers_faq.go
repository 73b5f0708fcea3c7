package server

import (
	"net/http"

	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/sirupsen/logrus"
)

func (s *Server) handleExtractQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.ExtractQuestionsRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Keyword is required", err)
		return
	}

	questions, err := s.faqGen.ExtractQuestions(r.Context(), req.Keyword, req.Platforms)
	if err != nil {
		s.metrics.recordError()
		logrus.Errorf("Question extraction error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to extract questions", err)
		return
	}

	s.metrics.recordFaqRun()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"questions": questions,
	})
}

func (s *Server) handleGenerateFaqAnswers(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateFaqAnswersRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Questions are required", err)
		return
	}

	faqs, err := s.faqGen.GenerateAnswers(r.Context(), req)
	if err != nil {
		s.metrics.recordError()
		logrus.Errorf("FAQ answer generation error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate FAQ answers", err)
		return
	}

	s.metrics.recordFaqRun()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"faqs":    faqs,
	})
}

func (s *Server) handleGenerateFaq(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateFaqRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Keyword and brand name are required", err)
		return
	}

	faqs, err := s.faqGen.GenerateSingleShot(r.Context(), req)
	if err != nil {
		s.metrics.recordError()
		logrus.Errorf("FAQ generation error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate FAQ", err)
		return
	}

	s.metrics.recordFaqRun()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"faqs":      faqs,
		"keyword":   req.Keyword,
		"brandName": req.BrandName,
	})
}
