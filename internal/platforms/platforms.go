package platforms

import "strings"

// domains maps the platform labels the UI offers to the domain used in
// the search provider's site: filter.
var domains = map[string]string{
	"Reddit":    "reddit.com",
	"Quora":     "quora.com",
	"Facebook":  "facebook.com",
	"Twitter":   "twitter.com",
	"Twitter/X": "twitter.com",
	"LinkedIn":  "linkedin.com",
	"YouTube":   "youtube.com",
}

// Domain returns the site: filter domain for a platform label. Unknown
// labels fall back to lowercase(label) + ".com".
func Domain(platform string) string {
	if domain, ok := domains[platform]; ok {
		return domain
	}
	return strings.ToLower(platform) + ".com"
}
