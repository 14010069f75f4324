// File: services/dispatch/escalation.go
package dispatch

import "strings"

// Keyword sets that suggest high-risk scenarios requiring mandatory human
// review.
var (
	safetyKeywords     = []string{"safety", "hazard", "toxic", "emergency", "accident"}
	regulatoryKeywords = []string{"compliance", "regulation", "audit", "legal"}
)

// NeedsHumanReview flags queries touching safety or regulatory risk. Pure
// and total: case-insensitive substring containment against the raw query.
func NeedsHumanReview(query string) bool {
	queryLower := strings.ToLower(query)
	for _, kw := range safetyKeywords {
		if strings.Contains(queryLower, kw) {
			return true
		}
	}
	for _, kw := range regulatoryKeywords {
		if strings.Contains(queryLower, kw) {
			return true
		}
	}
	return false
}
