package reply

import (
	"context"
	"fmt"
	"testing"

	"github.com/brandpulse/social-monitor/internal/ai"
	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/brandpulse/social-monitor/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deterministicCompleter hashes the request into the response so
// identical requests yield identical text.
type deterministicCompleter struct {
	requests []ai.CompletionRequest
}

func (c *deterministicCompleter) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	c.requests = append(c.requests, req)
	return fmt.Sprintf("reply(model=%s,temp=%.2f,user=%d)", req.Model, req.Temperature, len(req.User)), nil
}

type failingCompleter struct{}

func (failingCompleter) Complete(context.Context, ai.CompletionRequest) (string, error) {
	return "", fmt.Errorf("LLM provider returned status 500")
}

func TestGenerator_DefaultsAndStorage(t *testing.T) {
	completer := &deterministicCompleter{}
	replies := store.NewMemoryStore()
	gen := NewGenerator(completer, replies, "gpt-4o")

	result, err := gen.Generate(context.Background(), models.GenerateReplyRequest{
		ThreadURL: "https://reddit.com/r/saas/comments/abc",
	})
	require.NoError(t, err)

	reply := result.Reply
	assert.Equal(t, 1, reply.ID)
	assert.Equal(t, "informational", reply.ReplyType)
	assert.Equal(t, "friendly", reply.Tone)
	assert.Equal(t, 0.7, reply.Creativity)
	assert.Equal(t, "openai", reply.AIProvider)
	assert.Equal(t, "gpt-4o", reply.Model)
	assert.NotEmpty(t, reply.GeneratedText)

	// The reply is persisted.
	listed := replies.ListReplies()
	require.Len(t, listed, 1)
	assert.Equal(t, reply.GeneratedText, listed[0].GeneratedText)

	// Prompt carries the requirements and the thread URL.
	require.Len(t, completer.requests, 1)
	req := completer.requests[0]
	assert.Contains(t, req.System, "Reply type: informational")
	assert.Contains(t, req.System, "Tone: friendly")
	assert.Contains(t, req.System, "Brand: the brand")
	assert.Contains(t, req.User, "https://reddit.com/r/saas/comments/abc")
	assert.Equal(t, 500, req.MaxTokens)
}

func TestGenerator_TemperatureZeroDeterminism(t *testing.T) {
	completer := &deterministicCompleter{}
	gen := NewGenerator(completer, store.NewMemoryStore(), "gpt-4o")

	zero := 0.0
	req := models.GenerateReplyRequest{
		ThreadURL:  "https://quora.com/q/1",
		Creativity: &zero,
	}

	first, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)

	// Replaying the identical request at temperature 0 against a
	// deterministic provider yields identical text.
	assert.Equal(t, first.Reply.GeneratedText, second.Reply.GeneratedText)
	assert.Equal(t, 0.0, first.Reply.Creativity)
}

func TestGenerator_CustomFieldsForwarded(t *testing.T) {
	completer := &deterministicCompleter{}
	gen := NewGenerator(completer, store.NewMemoryStore(), "gpt-4o")

	creativity := 0.3
	result, err := gen.Generate(context.Background(), models.GenerateReplyRequest{
		ThreadURL:    "https://linkedin.com/posts/xyz",
		ReplyType:    "promotional",
		Tone:         "Professional",
		BrandName:    "Acme",
		BrandContext: "Developer tools company",
		BrandURL:     "https://acme.example",
		Creativity:   &creativity,
		Model:        "gpt-4o-mini",
		CustomAPIKey: "caller-key",
	})
	require.NoError(t, err)

	assert.Equal(t, "promotional", result.Reply.ReplyType)
	assert.Equal(t, "Professional", result.Reply.Tone)
	assert.Equal(t, "https://acme.example", result.Reply.BrandURL)
	assert.Equal(t, "gpt-4o-mini", result.Reply.Model)

	req := completer.requests[0]
	assert.Equal(t, "caller-key", req.APIKey)
	assert.Equal(t, 0.3, req.Temperature)
	assert.Contains(t, req.System, "Brand: Acme")
	// The user prompt lowercases tone and type.
	assert.Contains(t, req.User, "professional promotional reply")
}

func TestGenerator_ProviderFailure(t *testing.T) {
	replies := store.NewMemoryStore()
	gen := NewGenerator(failingCompleter{}, replies, "gpt-4o")

	_, err := gen.Generate(context.Background(), models.GenerateReplyRequest{
		ThreadURL: "https://reddit.com/r/a/1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate reply")

	// Nothing is stored on failure.
	assert.Empty(t, replies.ListReplies())
}
