package orderRepo

import (
	"context"

	"labassist/models"
)

// OrderRepository defines read-only access to the order ledger. Orders are
// written by an external ordering system.
type OrderRepository interface {
	// GetByID looks up an order by its composite key. A missing order
	// returns (nil, nil), not an error.
	GetByID(ctx context.Context, orderID, customerID string) (*models.Order, error)
}
