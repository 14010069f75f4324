// File: services/dispatch/oracle.go
package dispatch

import "context"

// Action names declared to the oracle. The oracle selects zero or one per
// call.
const (
	ActionScheduleEquipment = "schedule_equipment"
	ActionCheckOrderStatus  = "check_order_status"
	ActionSearchKnowledge   = "search_knowledge_base"
)

// Prompt is the single-turn input to the oracle.
type Prompt struct {
	KnowledgeContext string
	CustomerID       string
	Query            string
}

// FunctionCall is the oracle's structured action selection.
type FunctionCall struct {
	Name string
	Args map[string]any
}

// OracleReply carries the oracle's natural-language content and, when one
// was selected, the chosen action.
type OracleReply struct {
	Content string
	Call    *FunctionCall
}

// Oracle is the external language model treated as a black box: one round
// trip in, either text or a single action selection out.
type Oracle interface {
	Complete(ctx context.Context, prompt Prompt) (*OracleReply, error)
}
