package models

// ChatRequest is the payload coming from the client into /chat.
type ChatRequest struct {
	Query      string         `json:"query" binding:"required"`
	CustomerID string         `json:"customer_id" binding:"required"`
	Context    map[string]any `json:"context,omitempty"`
}

// ActionRecord captures one executed backend action and its result payload.
type ActionRecord struct {
	Action string `json:"action"`
	Result any    `json:"result"`
}

// DispatchResult is what the dispatch core returns for a single query. It is
// request-scoped and discarded after the response is sent.
type DispatchResult struct {
	Response            string         `json:"response"`
	ActionsTaken        []ActionRecord `json:"actions_taken"`
	ConfidenceScore     float64        `json:"confidence_score"`
	RequiresHumanReview bool           `json:"requires_human_review"`
}
