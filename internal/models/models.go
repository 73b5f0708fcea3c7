package models

import "time"

// SearchHit is a single normalized result returned by the search provider,
// tagged with the platform whose site: filter produced it.
type SearchHit struct {
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	URL         string `json:"url"`
	Platform    string `json:"platform"`
	DisplayLink string `json:"displayLink"`
	Position    int    `json:"position"`
	Sentiment   string `json:"sentiment,omitempty"` // "positive", "negative", "neutral"
}

// SearchResult is one persisted aggregator run.
type SearchResult struct {
	ID        int         `json:"id"`
	Type      string      `json:"type"` // "brand-opportunity" | "thread-discovery"
	Query     string      `json:"query"`
	Results   []SearchHit `json:"results"`
	Platforms []string    `json:"platforms"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Alert is a saved monitoring configuration that can be rescanned on a schedule.
type Alert struct {
	ID                       int        `json:"id"`
	Name                     string     `json:"name"`
	Keywords                 string     `json:"keywords"`
	Platforms                []string   `json:"platforms"`
	Frequency                string     `json:"frequency"` // "daily" | "weekly" | "monthly"
	MinOpportunityScore      string     `json:"minOpportunityScore"`
	MaxResults               int        `json:"maxResults"`
	IncludeNegativeSentiment bool       `json:"includeNegativeSentiment"`
	EmailNotifications       bool       `json:"emailNotifications"`
	Email                    string     `json:"email,omitempty"`
	ReportURL                string     `json:"reportUrl,omitempty"`
	WebhookURL               string     `json:"webhookUrl,omitempty"`
	IsActive                 bool       `json:"isActive"`
	CreatedAt                time.Time  `json:"createdAt"`
	LastRun                  *time.Time `json:"lastRun"`
}

// GeneratedReply is a stored AI reply together with the request that produced it.
type GeneratedReply struct {
	ID            int       `json:"id"`
	ThreadURL     string    `json:"threadUrl"`
	ReplyType     string    `json:"replyType"`
	Tone          string    `json:"tone"`
	BrandName     string    `json:"brandName,omitempty"`
	BrandContext  string    `json:"brandContext,omitempty"`
	BrandURL      string    `json:"brandUrl,omitempty"`
	GeneratedText string    `json:"generatedText"`
	Creativity    float64   `json:"creativity"`
	AIProvider    string    `json:"aiProvider"`
	Model         string    `json:"model"`
	Feedback      string    `json:"feedback,omitempty"` // "like" | "dislike" | ""
	CreatedAt     time.Time `json:"createdAt"`
}

// FaqEntry is one generated question/answer pair.
type FaqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AlertRunReport summarizes one scheduled or manual rescan of an alert.
type AlertRunReport struct {
	AlertID      int         `json:"alertId"`
	AlertName    string      `json:"alertName"`
	Query        string      `json:"query"`
	Platforms    []string    `json:"platforms"`
	TotalResults int         `json:"totalResults"`
	Results      []SearchHit `json:"results"`
	RanAt        time.Time   `json:"ranAt"`
}
