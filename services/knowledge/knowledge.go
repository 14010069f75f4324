// File: services/knowledge/knowledge.go
package knowledge

import (
	"fmt"
	"strings"
)

// Entry is one knowledge item: a topic key and its body text.
type Entry struct {
	Key  string
	Body string
}

// Store holds the fixed protocol and FAQ entries. It is initialized once at
// startup and read-only afterwards; results follow insertion order.
type Store struct {
	protocols []Entry
	faq       []Entry
}

// NewStore returns the process-wide knowledge store.
func NewStore() *Store {
	return &Store{
		protocols: []Entry{
			{Key: "sample_preparation", Body: "Standard sample prep involves filtration, dilution to working concentration, and labeling with the assigned sample ID before submission."},
			{Key: "equipment_maintenance", Body: "Regular maintenance schedule: instruments are calibrated monthly and serviced quarterly; report anomalies to the facilities team."},
			{Key: "safety_protocols", Body: "All lab work requires appropriate PPE, completed safety training, and sign-off from the area supervisor before handling hazardous materials."},
		},
		faq: []Entry{
			{Key: "equipment_booking", Body: "To book equipment, specify the instrument, date, and duration"},
			{Key: "order_tracking", Body: "Orders can be tracked using your order ID"},
			{Key: "data_analysis", Body: "Our analysis services include statistical analysis, visualization, and custom reporting."},
		},
	}
}

// SearchProtocols returns "key: body" strings for protocol entries matched
// by the query.
func (s *Store) SearchProtocols(query string) []string {
	return search(s.protocols, query)
}

// SearchFAQ returns "key: body" strings for FAQ entries matched by the query.
func (s *Store) SearchFAQ(query string) []string {
	return search(s.faq, query)
}

// search matches an entry when any lowercased query token is a substring of
// the entry key. No ranking, no fuzzy matching; never fails.
func search(entries []Entry, query string) []string {
	tokens := strings.Fields(strings.ToLower(query))
	var relevant []string
	for _, entry := range entries {
		for _, token := range tokens {
			if strings.Contains(entry.Key, token) {
				relevant = append(relevant, fmt.Sprintf("%s: %s", entry.Key, entry.Body))
				break
			}
		}
	}
	return relevant
}
