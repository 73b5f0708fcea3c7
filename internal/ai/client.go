package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Completer is the outbound LLM provider contract.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest describes one chat completion call.
type CompletionRequest struct {
	Model       string
	System      string // optional system message
	User        string
	Temperature float64
	MaxTokens   int    // 0 means no explicit ceiling
	JSONMode    bool   // ask the provider for a JSON object response
	APIKey      string // overrides the configured default when set
}

// Client calls an OpenAI-compatible chat completions API.
type Client struct {
	apiKey  string
	baseURL string
	client  *resty.Client
}

var _ Completer = (*Client)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    *float64        `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient creates an LLM client with the default API key. The base URL
// is configurable so tests can point at a stub server.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: resty.New().
			SetTimeout(60 * time.Second).
			SetHeader("User-Agent", "social-monitor/1.0"),
	}
}

// Complete issues one chat completion call and returns the message text.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	key := c.apiKey
	if req.APIKey != "" {
		key = req.APIKey
	}

	var messages []chatMessage
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.User})

	temperature := req.Temperature
	body := chatRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: &temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	logrus.Debugf("Requesting chat completion (model: %s, temperature: %.2f)", req.Model, req.Temperature)

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+key).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(c.baseURL + "/v1/chat/completions")

	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(resp.Body(), &chatResp); err != nil {
		return "", fmt.Errorf("failed to decode chat completion response: %w", err)
	}

	if resp.StatusCode() != 200 {
		if chatResp.Error != nil {
			return "", fmt.Errorf("LLM provider returned status %d: %s", resp.StatusCode(), chatResp.Error.Message)
		}
		return "", fmt.Errorf("LLM provider returned status %d", resp.StatusCode())
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("LLM provider returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
