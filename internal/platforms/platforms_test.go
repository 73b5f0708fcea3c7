package platforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomain(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		expected string
	}{
		{
			name:     "Reddit",
			platform: "Reddit",
			expected: "reddit.com",
		},
		{
			name:     "Quora",
			platform: "Quora",
			expected: "quora.com",
		},
		{
			name:     "Facebook",
			platform: "Facebook",
			expected: "facebook.com",
		},
		{
			name:     "Twitter",
			platform: "Twitter",
			expected: "twitter.com",
		},
		{
			name:     "Twitter/X alias",
			platform: "Twitter/X",
			expected: "twitter.com",
		},
		{
			name:     "LinkedIn",
			platform: "LinkedIn",
			expected: "linkedin.com",
		},
		{
			name:     "YouTube",
			platform: "YouTube",
			expected: "youtube.com",
		},
		{
			name:     "Unknown platform falls back to lowercase .com",
			platform: "Mastodon",
			expected: "mastodon.com",
		},
		{
			name:     "Unknown mixed-case platform",
			platform: "HackerNews",
			expected: "hackernews.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Domain(tt.platform))
		})
	}
}
