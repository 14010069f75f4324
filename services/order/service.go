// File: services/order/service.go
package order

import (
	"context"

	orderRepo "labassist/database/repository/order"
	"labassist/models"
)

// OrderService is the read-only order ledger lookup.
type OrderService interface {
	// GetStatus resolves an order by (orderID, customerID). A missing order
	// is a normal not-found result, never an error.
	GetStatus(ctx context.Context, orderID, customerID string) (*models.OrderStatusResult, error)
}

// DefaultOrderService implements OrderService against the order repository.
type DefaultOrderService struct {
	Repo orderRepo.OrderRepository
}

func (s *DefaultOrderService) GetStatus(ctx context.Context, orderID, customerID string) (*models.OrderStatusResult, error) {
	order, err := s.Repo.GetByID(ctx, orderID, customerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return &models.OrderStatusResult{
			Found:   false,
			Message: "Order not found",
		}, nil
	}
	return &models.OrderStatusResult{
		Found:     true,
		OrderID:   order.OrderID,
		Status:    order.Status,
		Items:     order.Items,
		CreatedAt: order.CreatedAt,
	}, nil
}
