package dispatch

import (
	"context"

	"labassist/models"
)

// DispatchService orchestrates a single customer query: knowledge context,
// one oracle round trip, at most one executed action, escalation flag.
type DispatchService interface {
	HandleQuery(ctx context.Context, query, customerID string, extra map[string]any) (*models.DispatchResult, error)
}
