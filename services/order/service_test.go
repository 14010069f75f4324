package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labassist/models"
)

type fakeOrderRepo struct {
	orders map[string]models.Order
}

func (f *fakeOrderRepo) GetByID(_ context.Context, orderID, customerID string) (*models.Order, error) {
	o, ok := f.orders[orderID+"/"+customerID]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func TestGetStatusFound(t *testing.T) {
	svc := &DefaultOrderService{Repo: &fakeOrderRepo{orders: map[string]models.Order{
		"ORD-1/C1": {
			OrderID:    "ORD-1",
			CustomerID: "C1",
			Items:      "pipette tips, gloves",
			Status:     "shipped",
			CreatedAt:  "2026-08-01T09:00:00Z",
		},
	}}}

	result, err := svc.GetStatus(context.Background(), "ORD-1", "C1")
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, "shipped", result.Status)
	assert.Equal(t, "pipette tips, gloves", result.Items)
}

func TestGetStatusNotFoundIsNotAnError(t *testing.T) {
	svc := &DefaultOrderService{Repo: &fakeOrderRepo{orders: map[string]models.Order{}}}

	result, err := svc.GetStatus(context.Background(), "ORD-404", "C1")
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, "Order not found", result.Message)
}

func TestGetStatusWrongCustomerIsNotFound(t *testing.T) {
	svc := &DefaultOrderService{Repo: &fakeOrderRepo{orders: map[string]models.Order{
		"ORD-1/C1": {OrderID: "ORD-1", CustomerID: "C1", Status: "processing"},
	}}}

	result, err := svc.GetStatus(context.Background(), "ORD-1", "C2")
	require.NoError(t, err)
	assert.False(t, result.Found)
}
