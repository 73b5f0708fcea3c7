package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "Strongly positive",
			text:     "This tool is excellent, I was impressed and would recommend it",
			expected: "positive",
		},
		{
			name:     "Strongly negative",
			text:     "Terrible experience, completely broken and frustrating, avoid this scam",
			expected: "negative",
		},
		{
			name:     "Neutral documentation text",
			text:     "This page describes the configuration options for the service",
			expected: "neutral",
		},
		{
			name:     "Mild praise stays neutral below threshold",
			text:     "it works, good enough",
			expected: "neutral",
		},
		{
			name:     "Empty text",
			text:     "",
			expected: "neutral",
		},
		{
			name:     "Long negative words weighted double",
			text:     "disappointing and frustrating",
			expected: "negative",
		},
		{
			name:     "Substring offsets keep unreliable at the threshold",
			text:     "disappointing and unreliable",
			expected: "neutral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Analyze(tt.text))
		})
	}
}

func TestAnalyze_Negation(t *testing.T) {
	// "not helpful" should not score as positive.
	result := Analyze("this is not helpful at all, don't recommend")
	assert.NotEqual(t, "positive", result)
}
