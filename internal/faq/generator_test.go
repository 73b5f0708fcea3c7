package faq

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/brandpulse/social-monitor/internal/ai"
	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/brandpulse/social-monitor/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearcher struct {
	hitsByDomain map[string][]search.SerperHit
	failDomains  map[string]bool
}

func (s *stubSearcher) Search(_ context.Context, query, _ string, _ int) ([]search.SerperHit, error) {
	for domain := range s.failDomains {
		if strings.Contains(query, "site:"+domain) {
			return nil, fmt.Errorf("serper API returned status 500")
		}
	}
	for domain, hits := range s.hitsByDomain {
		if strings.Contains(query, "site:"+domain) {
			return hits, nil
		}
	}
	return nil, nil
}

type stubCompleter struct {
	response string
	err      error
	prompts  []string
}

func (c *stubCompleter) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	c.prompts = append(c.prompts, req.User)
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func titleHits(titles ...string) []search.SerperHit {
	out := make([]search.SerperHit, 0, len(titles))
	for i, title := range titles {
		out = append(out, search.SerperHit{Title: title, Position: i + 1})
	}
	return out
}

func TestExtractQuestions_DedupeAndCap(t *testing.T) {
	searcher := &stubSearcher{
		hitsByDomain: map[string][]search.SerperHit{
			"reddit.com": titleHits(
				"What is the best CRM?",
				"How do I migrate CRMs?",
				"What is the best CRM?", // duplicate within platform
				"Is a CRM worth it?",
				"Which CRM integrates with Slack?",
				"How much does a CRM cost?",
			),
			"quora.com": titleHits(
				"How do I migrate CRMs?", // duplicate across platforms
				"Can a CRM automate email?",
				"What CRM do startups use?",
				"Do I need a CRM as a freelancer?",
				"What is CRM software?",
				"How to choose a CRM?",
				"Beyond the cap question",
			),
		},
	}
	gen := NewGenerator(searcher, &stubCompleter{}, "gpt-4o")

	questions, err := gen.ExtractQuestions(context.Background(), "crm", []string{"Reddit", "Quora"})
	require.NoError(t, err)

	// At most 10 distinct questions, first occurrence order preserved.
	require.Len(t, questions, 10)
	assert.Equal(t, "What is the best CRM?", questions[0])
	assert.Equal(t, "How do I migrate CRMs?", questions[1])
	assert.Equal(t, "Can a CRM automate email?", questions[5])
	assert.NotContains(t, questions, "Beyond the cap question")

	// No duplicates survive.
	seen := map[string]bool{}
	for _, q := range questions {
		assert.False(t, seen[q], "duplicate question: %s", q)
		seen[q] = true
	}
}

func TestExtractQuestions_FailedPlatformContributesNothing(t *testing.T) {
	searcher := &stubSearcher{
		hitsByDomain: map[string][]search.SerperHit{
			"reddit.com": titleHits("Only question"),
		},
		failDomains: map[string]bool{"quora.com": true},
	}
	gen := NewGenerator(searcher, &stubCompleter{}, "gpt-4o")

	questions, err := gen.ExtractQuestions(context.Background(), "crm", []string{"Reddit", "Quora"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Only question"}, questions)
}

func TestGenerateAnswers(t *testing.T) {
	completer := &stubCompleter{
		response: `{"faqs":[{"question":"What is Acme?","answer":"Acme builds developer tools."},{"question":"Is Acme free?","answer":"Acme has a free tier."}]}`,
	}
	gen := NewGenerator(&stubSearcher{}, completer, "gpt-4o")

	entries, err := gen.GenerateAnswers(context.Background(), models.GenerateFaqAnswersRequest{
		Questions:        []string{"What is Acme?", "Is Acme free?"},
		BrandName:        "Acme",
		BrandDescription: "Developer tools company",
	})
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "What is Acme?", entries[0].Question)
	assert.Equal(t, "Acme builds developer tools.", entries[0].Answer)

	require.Len(t, completer.prompts, 1)
	assert.Contains(t, completer.prompts[0], "- What is Acme?")
	assert.Contains(t, completer.prompts[0], "Developer tools company")
	assert.Contains(t, completer.prompts[0], "Website: Not provided")
}

func TestGenerateSingleShot(t *testing.T) {
	searcher := &stubSearcher{
		hitsByDomain: map[string][]search.SerperHit{
			"reddit.com": titleHits("What is the best crm?"),
			"quora.com":  titleHits("How to pick a crm?"),
		},
	}
	completer := &stubCompleter{
		response: `{"faqs":[{"question":"What is the best CRM for startups?","answer":"It depends on the team size."}]}`,
	}
	gen := NewGenerator(searcher, completer, "gpt-4o")

	entries, err := gen.GenerateSingleShot(context.Background(), models.GenerateFaqRequest{
		Keyword:   "crm",
		BrandName: "Acme",
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "What is the best CRM for startups?", entries[0].Question)

	// The prompt embeds the serialized search hits from the default platforms.
	require.Len(t, completer.prompts, 1)
	assert.Contains(t, completer.prompts[0], "What is the best crm?")
	assert.Contains(t, completer.prompts[0], "How to pick a crm?")
	assert.Contains(t, completer.prompts[0], `"crm"`)
}

func TestGenerateSingleShot_MissingFaqsKey(t *testing.T) {
	completer := &stubCompleter{response: `{"unexpected":true}`}
	gen := NewGenerator(&stubSearcher{}, completer, "gpt-4o")

	entries, err := gen.GenerateSingleShot(context.Background(), models.GenerateFaqRequest{
		Keyword:   "crm",
		BrandName: "Acme",
	})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateSingleShot_MalformedJSON(t *testing.T) {
	completer := &stubCompleter{response: "not json at all"}
	gen := NewGenerator(&stubSearcher{}, completer, "gpt-4o")

	_, err := gen.GenerateSingleShot(context.Background(), models.GenerateFaqRequest{
		Keyword:   "crm",
		BrandName: "Acme",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse FAQ response")
}
