package faq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/brandpulse/social-monitor/internal/ai"
	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/brandpulse/social-monitor/internal/platforms"
	"github.com/brandpulse/social-monitor/internal/search"
	"github.com/sirupsen/logrus"
)

const (
	maxQuestions      = 10
	maxContextResults = 20
)

var defaultPlatforms = []string{"Reddit", "Quora"}

// Generator implements the two-phase FAQ flow and the single-shot variant.
type Generator struct {
	searcher     search.Searcher
	completer    ai.Completer
	defaultModel string
}

// NewGenerator creates a FAQ generator.
func NewGenerator(searcher search.Searcher, completer ai.Completer, defaultModel string) *Generator {
	return &Generator{
		searcher:     searcher,
		completer:    completer,
		defaultModel: defaultModel,
	}
}

// ExtractQuestions is phase 1: searches every platform for
// "<keyword> questions", collects result titles in platform order,
// removes exact duplicates keeping first occurrence and returns at most
// ten questions. Nothing is persisted.
func (g *Generator) ExtractQuestions(ctx context.Context, keyword string, platformSet []string) ([]string, error) {
	if len(platformSet) == 0 {
		platformSet = defaultPlatforms
	}

	slots := make([][]string, len(platformSet))

	var wg sync.WaitGroup
	for i, platform := range platformSet {
		wg.Add(1)
		go func(slot int, platform string) {
			defer wg.Done()

			query := fmt.Sprintf("%s questions site:%s", keyword, platforms.Domain(platform))
			hits, err := g.searcher.Search(ctx, query, "", maxQuestions)
			if err != nil {
				logrus.Errorf("Question extraction failed for platform %s: %v", platform, err)
				return
			}

			titles := make([]string, 0, len(hits))
			for _, hit := range hits {
				if hit.Title != "" {
					titles = append(titles, hit.Title)
				}
			}
			slots[slot] = titles
		}(i, platform)
	}
	wg.Wait()

	seen := make(map[string]bool)
	questions := []string{}
	for _, titles := range slots {
		for _, title := range titles {
			if seen[title] {
				continue
			}
			seen[title] = true
			questions = append(questions, title)
			if len(questions) == maxQuestions {
				return questions, nil
			}
		}
	}

	return questions, nil
}

type faqPayload struct {
	Faqs []models.FaqEntry `json:"faqs"`
}

// GenerateAnswers is phase 2: one structured completion over the selected
// questions, contextualized by the brand.
func (g *Generator) GenerateAnswers(ctx context.Context, req models.GenerateFaqAnswersRequest) ([]models.FaqEntry, error) {
	prompt := fmt.Sprintf(`Answer the following questions on behalf of the brand "%s".

Brand: %s
Website: %s
Description: %s

Questions:
%s

Generate a JSON object with an array called "faqs" containing objects with "question" and "answer" fields. Keep each question exactly as given and write a helpful, accurate answer suitable for the brand's website or customer support.`,
		req.BrandName,
		req.BrandName,
		orNotProvided(req.BrandWebsite),
		orNotProvided(req.BrandDescription),
		"- "+strings.Join(req.Questions, "\n- "))

	return g.completeFaqs(ctx, prompt)
}

// GenerateSingleShot searches all platforms for questions about the
// keyword and produces question/answer pairs in one completion.
func (g *Generator) GenerateSingleShot(ctx context.Context, req models.GenerateFaqRequest) ([]models.FaqEntry, error) {
	platformSet := req.Platforms
	if len(platformSet) == 0 {
		platformSet = defaultPlatforms
	}

	slots := make([][]search.SerperHit, len(platformSet))

	var wg sync.WaitGroup
	for i, platform := range platformSet {
		wg.Add(1)
		go func(slot int, platform string) {
			defer wg.Done()

			query := fmt.Sprintf("%s questions site:%s", req.Keyword, platforms.Domain(platform))
			hits, err := g.searcher.Search(ctx, query, "", maxQuestions)
			if err != nil {
				logrus.Errorf("FAQ search failed for platform %s: %v", platform, err)
				return
			}
			slots[slot] = hits
		}(i, platform)
	}
	wg.Wait()

	var combined []search.SerperHit
	for _, hits := range slots {
		combined = append(combined, hits...)
	}
	if len(combined) > maxContextResults {
		combined = combined[:maxContextResults]
	}

	searchContext, err := json.Marshal(combined)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize search context: %w", err)
	}

	prompt := fmt.Sprintf(`Based on these search results about "%s" and the brand "%s", generate the top 10 most valuable FAQ questions and answers.

Brand: %s
Website: %s
Description: %s

Search results: %s

Generate a JSON object with an array called "faqs" containing objects with "question" and "answer" fields. Focus on questions that would be most valuable for the brand's website or customer support.`,
		req.Keyword,
		req.BrandName,
		req.BrandName,
		orNotProvided(req.BrandWebsite),
		orNotProvided(req.BrandDescription),
		string(searchContext))

	return g.completeFaqs(ctx, prompt)
}

func (g *Generator) completeFaqs(ctx context.Context, prompt string) ([]models.FaqEntry, error) {
	text, err := g.completer.Complete(ctx, ai.CompletionRequest{
		Model:    g.defaultModel,
		User:     prompt,
		JSONMode: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate FAQ: %w", err)
	}

	var payload faqPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse FAQ response: %w", err)
	}

	if payload.Faqs == nil {
		return []models.FaqEntry{}, nil
	}

	return payload.Faqs, nil
}

func orNotProvided(value string) string {
	if value == "" {
		return "Not provided"
	}
	return value
}
