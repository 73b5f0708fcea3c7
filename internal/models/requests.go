package models

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an int that also accepts quoted numeric strings, which is
// how dashboard form selects submit their values.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer value %q", s)
	}
	*f = FlexInt(n)

	return nil
}

// BrandOpportunityRequest is the payload for POST /api/search/brand-opportunities.
// Sentiment selects both annotation and filtering: "all" annotates every
// hit, a specific label additionally narrows the response to it, and an
// empty value skips sentiment analysis entirely.
type BrandOpportunityRequest struct {
	BrandName       string   `json:"brandName" validate:"required"`
	CompetitorName  string   `json:"competitorName" validate:"required"`
	Keywords        string   `json:"keywords,omitempty"`
	ExcludeKeywords string   `json:"excludeKeywords,omitempty"`
	Platforms       []string `json:"platforms" validate:"required,min=1,dive,min=1"`
	TimeRange       string   `json:"timeRange,omitempty"`
	Sentiment       string   `json:"sentiment,omitempty" validate:"omitempty,oneof=all positive negative neutral"`
	MinEngagement   FlexInt  `json:"minEngagement,omitempty" validate:"omitempty,min=0"`
	MaxResults      int      `json:"maxResults,omitempty" validate:"omitempty,min=1,max=100"`
	SerperAPIKey    string   `json:"serperApiKey,omitempty"`
}

// ThreadSearchRequest is the payload for POST /api/search/threads.
type ThreadSearchRequest struct {
	Keywords     string   `json:"keywords" validate:"required"`
	Platforms    []string `json:"platforms" validate:"required,min=1,dive,min=1"`
	MaxResults   int      `json:"maxResults,omitempty" validate:"omitempty,min=1,max=100"`
	SerperAPIKey string   `json:"serperApiKey,omitempty"`
}

// GenerateReplyRequest is the payload for POST /api/generate-reply.
type GenerateReplyRequest struct {
	ThreadURL    string   `json:"threadUrl" validate:"required,url"`
	ReplyType    string   `json:"replyType,omitempty"`
	Tone         string   `json:"tone,omitempty"`
	BrandName    string   `json:"brandName,omitempty"`
	BrandContext string   `json:"brandContext,omitempty"`
	BrandURL     string   `json:"brandUrl,omitempty" validate:"omitempty,url"`
	Creativity   *float64 `json:"creativity,omitempty" validate:"omitempty,min=0,max=1"`
	AIProvider   string   `json:"aiProvider,omitempty"`
	Model        string   `json:"model,omitempty"`
	CustomAPIKey string   `json:"customApiKey,omitempty"`
}

// CreateAlertRequest is the payload for POST /api/alerts.
type CreateAlertRequest struct {
	Name                     string   `json:"name" validate:"required"`
	Keywords                 string   `json:"keywords" validate:"required"`
	Platforms                []string `json:"platforms" validate:"required,min=1,dive,min=1"`
	Frequency                string   `json:"frequency" validate:"required,oneof=daily weekly monthly"`
	MinOpportunityScore      string   `json:"minOpportunityScore,omitempty" validate:"omitempty,oneof=low medium high"`
	MaxResults               int      `json:"maxResults,omitempty" validate:"omitempty,min=1,max=100"`
	IncludeNegativeSentiment bool     `json:"includeNegativeSentiment,omitempty"`
	EmailNotifications       *bool    `json:"emailNotifications,omitempty"`
	Email                    string   `json:"email,omitempty" validate:"omitempty,email"`
	ReportURL                string   `json:"reportUrl,omitempty" validate:"omitempty,url"`
	WebhookURL               string   `json:"webhookUrl,omitempty" validate:"omitempty,url"`
	IsActive                 *bool    `json:"isActive,omitempty"`
}

// ReplyFeedbackRequest is the payload for POST /api/replies/{id}/feedback.
type ReplyFeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,oneof=like dislike"`
}

// ExtractQuestionsRequest is the payload for POST /api/extract-questions.
type ExtractQuestionsRequest struct {
	Keyword   string   `json:"keyword" validate:"required"`
	Platforms []string `json:"platforms,omitempty" validate:"omitempty,dive,min=1"`
}

// GenerateFaqAnswersRequest is the payload for POST /api/generate-faq-answers.
type GenerateFaqAnswersRequest struct {
	Questions        []string `json:"questions" validate:"required,min=1,dive,min=1"`
	BrandName        string   `json:"brandName" validate:"required"`
	BrandWebsite     string   `json:"brandWebsite,omitempty" validate:"omitempty,url"`
	BrandDescription string   `json:"brandDescription,omitempty"`
}

// GenerateFaqRequest is the payload for POST /api/generate-faq.
type GenerateFaqRequest struct {
	Keyword          string   `json:"keyword" validate:"required"`
	BrandName        string   `json:"brandName" validate:"required"`
	BrandWebsite     string   `json:"brandWebsite,omitempty" validate:"omitempty,url"`
	BrandDescription string   `json:"brandDescription,omitempty"`
	Platforms        []string `json:"platforms,omitempty" validate:"omitempty,dive,min=1"`
}
