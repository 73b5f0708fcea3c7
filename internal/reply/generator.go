package reply

import (
	"context"
	"fmt"
	"strings"

	"github.com/brandpulse/social-monitor/internal/ai"
	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/brandpulse/social-monitor/internal/store"
	"github.com/sirupsen/logrus"
)

const (
	defaultReplyType  = "informational"
	defaultTone       = "friendly"
	defaultCreativity = 0.7
	defaultProvider   = "openai"
	replyMaxTokens    = 500
)

const systemPromptTemplate = `You are an expert social media manager that uses advanced AI techniques to generate authentic, helpful replies.

TECHNIQUES TO USE:
1. Zero-shot reasoning: Analyze the context and generate appropriate responses without examples
2. Few-shot learning: Apply patterns from successful social media interactions
3. Chain-of-thought: Break down the response generation process step by step

CHAIN-OF-THOUGHT PROCESS:
1. Analyze the thread context and identify key discussion points
2. Consider the brand positioning and value proposition
3. Match the platform's communication style and norms
4. Generate a response that adds genuine value
5. Ensure tone and type alignment with requirements

FEW-SHOT EXAMPLES:
Supportive tone: "I completely understand your frustration with this. Here's what worked for me..."
Professional tone: "This is an interesting perspective. Based on our experience..."
Friendly tone: "Great question! I'd love to share some thoughts on this..."
Informative tone: "Here are a few key points that might help clarify this..."

REQUIREMENTS:
- Reply type: %s
- Tone: %s
- Brand: %s
- Brand context: %s
- Be authentic and valuable, not overly promotional
- Match the platform's conversational style
- Keep replies concise but impactful`

const userPromptTemplate = `Using chain-of-thought reasoning, generate a %s %s reply for the social media thread at: %s

Step 1: Analyze what type of discussion this appears to be based on the URL
Step 2: Consider how the brand can add value to this conversation
Step 3: Craft the final reply that aligns with the requirements

Generate only the final reply text that would be posted.`

// Generator renders the reply prompt, invokes the LLM provider once and
// persists the result.
type Generator struct {
	completer    ai.Completer
	replies      store.ReplyStore
	defaultModel string
}

// Result pairs the stored reply record with the request metadata echoed
// back to the caller.
type Result struct {
	Reply models.GeneratedReply
}

// NewGenerator creates a reply generator.
func NewGenerator(completer ai.Completer, replies store.ReplyStore, defaultModel string) *Generator {
	return &Generator{
		completer:    completer,
		replies:      replies,
		defaultModel: defaultModel,
	}
}

// Generate produces one reply for the request and stores it. Request
// fields are defaulted when absent; the thread URL is the caller's
// responsibility to validate before calling.
func (g *Generator) Generate(ctx context.Context, req models.GenerateReplyRequest) (*Result, error) {
	replyType := req.ReplyType
	if replyType == "" {
		replyType = defaultReplyType
	}
	tone := req.Tone
	if tone == "" {
		tone = defaultTone
	}
	creativity := defaultCreativity
	if req.Creativity != nil {
		creativity = *req.Creativity
	}
	model := req.Model
	if model == "" {
		model = g.defaultModel
	}
	provider := req.AIProvider
	if provider == "" {
		provider = defaultProvider
	}

	brandName := req.BrandName
	if brandName == "" {
		brandName = "the brand"
	}
	brandContext := req.BrandContext
	if brandContext == "" {
		brandContext = "Not provided"
	}

	systemPrompt := fmt.Sprintf(systemPromptTemplate, replyType, tone, brandName, brandContext)
	userPrompt := fmt.Sprintf(userPromptTemplate, strings.ToLower(tone), strings.ToLower(replyType), req.ThreadURL)

	text, err := g.completer.Complete(ctx, ai.CompletionRequest{
		Model:       model,
		System:      systemPrompt,
		User:        userPrompt,
		Temperature: creativity,
		MaxTokens:   replyMaxTokens,
		APIKey:      req.CustomAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate reply: %w", err)
	}

	stored := g.replies.CreateReply(models.GeneratedReply{
		ThreadURL:     req.ThreadURL,
		ReplyType:     replyType,
		Tone:          tone,
		BrandName:     req.BrandName,
		BrandContext:  req.BrandContext,
		BrandURL:      req.BrandURL,
		GeneratedText: text,
		Creativity:    creativity,
		AIProvider:    provider,
		Model:         model,
	})

	logrus.Infof("Generated reply %d for thread %s (model: %s)", stored.ID, req.ThreadURL, model)

	return &Result{Reply: stored}, nil
}
