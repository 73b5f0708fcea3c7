package sentiment

import (
	"regexp"
	"strings"
)

// Keyword lists used for scoring. Words longer than six characters count
// double because they tend to be stronger opinion markers.
var positiveWords = []string{
	"good", "great", "excellent", "amazing", "love", "best", "fantastic",
	"awesome", "perfect", "wonderful", "outstanding", "brilliant", "superb",
	"incredible", "exceptional", "satisfied", "pleased", "happy", "delighted",
	"impressed", "recommend", "valuable", "helpful", "useful", "effective",
	"successful", "innovative", "reliable", "quality", "premium",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "hate", "worst", "horrible", "disappointing",
	"useless", "broken", "frustrating", "annoying", "pathetic", "disgusting",
	"disaster", "nightmare", "failed", "waste", "regret", "avoid", "scam",
	"overpriced", "outdated", "buggy", "slow", "unreliable", "poor", "lacking",
	"insufficient", "problematic", "issue",
}

var negationPattern = regexp.MustCompile(`(not|don't|doesn't|didn't|won't|can't|isn't|aren't|wasn't|weren't)\s+\w+`)

const classifyThreshold = 2

// Analyze classifies text as "positive", "negative" or "neutral" using a
// weighted keyword count with basic negation handling.
func Analyze(text string) string {
	lower := strings.ToLower(text)

	positiveScore := scoreWords(lower, positiveWords)
	negativeScore := scoreWords(lower, negativeWords)

	// Negated phrases flip their contribution: "not helpful" stops
	// counting as positive and adds to the negative side instead.
	for _, phrase := range negationPattern.FindAllString(lower, -1) {
		if containsAny(phrase, positiveWords) {
			positiveScore -= 2
			negativeScore++
		}
		if containsAny(phrase, negativeWords) {
			negativeScore -= 2
			positiveScore++
		}
	}

	switch {
	case positiveScore-negativeScore > classifyThreshold:
		return "positive"
	case negativeScore-positiveScore > classifyThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

func scoreWords(text string, words []string) int {
	score := 0
	for _, word := range words {
		count := strings.Count(text, word)
		if count == 0 {
			continue
		}
		weight := 1
		if len(word) > 6 {
			weight = 2
		}
		score += count * weight
	}
	return score
}

func containsAny(phrase string, words []string) bool {
	for _, word := range words {
		if strings.Contains(phrase, word) {
			return true
		}
	}
	return false
}
