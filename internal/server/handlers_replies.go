package server

import (
	"net/http"
	"strconv"

	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func (s *Server) handleGenerateReply(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateReplyRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Thread URL is required", err)
		return
	}

	result, err := s.replyGen.Generate(r.Context(), req)
	if err != nil {
		s.metrics.recordError()
		logrus.Errorf("Reply generation error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate reply", err)
		return
	}

	s.metrics.recordReply()
	reply := result.Reply
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"reply": map[string]interface{}{
			"id":   reply.ID,
			"text": reply.GeneratedText,
			"metadata": map[string]interface{}{
				"threadUrl":  reply.ThreadURL,
				"replyType":  reply.ReplyType,
				"tone":       reply.Tone,
				"brandName":  reply.BrandName,
				"creativity": reply.Creativity,
				"model":      reply.Model,
			},
		},
	})
}

func (s *Server) handleListReplies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.replies.ListReplies())
}

func (s *Server) handleReplyFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid reply id", err)
		return
	}

	var req models.ReplyFeedbackRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Feedback must be 'like' or 'dislike'", err)
		return
	}

	if !s.replies.SetFeedback(id, req.Feedback) {
		writeError(w, http.StatusNotFound, "Reply not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"feedback": req.Feedback,
	})
}
