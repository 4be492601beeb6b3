package notify

import "strings"

// MatchKeywords reports whether text contains any keyword, ignoring case.
// Blank keywords never match.
func MatchKeywords(text string, keywords []string) bool {
	return len(MatchedKeywords(text, keywords)) > 0
}

// MatchedKeywords returns the keywords found in text, in rule order.
func MatchedKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)

	var out []string
	for _, kw := range keywords {
		trimmed := strings.TrimSpace(kw)
		if trimmed == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(trimmed)) {
			out = append(out, kw)
		}
	}
	return out
}
