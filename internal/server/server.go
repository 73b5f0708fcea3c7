package server

import (
	"context"

	"github.com/brandpulse/social-monitor/internal/alerts"
	"github.com/brandpulse/social-monitor/internal/config"
	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/brandpulse/social-monitor/internal/reply"
	"github.com/brandpulse/social-monitor/internal/reports"
	"github.com/brandpulse/social-monitor/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// ReplyGenerator is the reply generation contract the server depends on.
type ReplyGenerator interface {
	Generate(ctx context.Context, req models.GenerateReplyRequest) (*reply.Result, error)
}

// FaqGenerator is the FAQ generation contract the server depends on.
type FaqGenerator interface {
	ExtractQuestions(ctx context.Context, keyword string, platforms []string) ([]string, error)
	GenerateAnswers(ctx context.Context, req models.GenerateFaqAnswersRequest) ([]models.FaqEntry, error)
	GenerateSingleShot(ctx context.Context, req models.GenerateFaqRequest) ([]models.FaqEntry, error)
}

// Server wires the HTTP surface to the domain services. All dependencies
// are injected so tests can run against fresh stores and stubs.
type Server struct {
	config     *config.Config
	alerts     store.AlertStore
	results    store.SearchResultStore
	replies    store.ReplyStore
	aggregator alerts.SearchRunner
	replyGen   ReplyGenerator
	faqGen     FaqGenerator
	runner     *alerts.Runner
	reports    *reports.Service
	metrics    *Metrics
	validate   *validator.Validate
}

// New creates a server.
func New(
	cfg *config.Config,
	alertStore store.AlertStore,
	resultStore store.SearchResultStore,
	replyStore store.ReplyStore,
	aggregator alerts.SearchRunner,
	replyGen ReplyGenerator,
	faqGen FaqGenerator,
	runner *alerts.Runner,
	reportService *reports.Service,
) *Server {
	return &Server{
		config:     cfg,
		alerts:     alertStore,
		results:    resultStore,
		replies:    replyStore,
		aggregator: aggregator,
		replyGen:   replyGen,
		faqGen:     faqGen,
		runner:     runner,
		reports:    reportService,
		metrics:    NewMetrics(),
		validate:   validator.New(),
	}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/metrics", s.handleMetrics).Methods("GET")

	router.HandleFunc("/api/search/brand-opportunities", s.handleBrandOpportunities).Methods("POST")
	router.HandleFunc("/api/search/threads", s.handleThreadSearch).Methods("POST")
	router.HandleFunc("/api/search-results", s.handleListSearchResults).Methods("GET")

	router.HandleFunc("/api/generate-reply", s.handleGenerateReply).Methods("POST")
	router.HandleFunc("/api/replies", s.handleListReplies).Methods("GET")
	router.HandleFunc("/api/replies/{id}/feedback", s.handleReplyFeedback).Methods("POST")

	router.HandleFunc("/api/alerts", s.handleListAlerts).Methods("GET")
	router.HandleFunc("/api/alerts", s.handleCreateAlert).Methods("POST")
	router.HandleFunc("/api/alerts/{id}", s.handleDeleteAlert).Methods("DELETE")
	router.HandleFunc("/api/alerts/{id}/run", s.handleRunAlert).Methods("POST")

	router.HandleFunc("/api/extract-questions", s.handleExtractQuestions).Methods("POST")
	router.HandleFunc("/api/generate-faq-answers", s.handleGenerateFaqAnswers).Methods("POST")
	router.HandleFunc("/api/generate-faq", s.handleGenerateFaq).Methods("POST")

	router.HandleFunc("/api/reports/export", s.handleExportReport).Methods("POST")

	return router
}
