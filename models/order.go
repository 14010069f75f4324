package models

// Order is a customer order row. Orders are created and mutated entirely by
// an external ordering system; this service only reads them.
type Order struct {
	OrderID    string `bson:"order_id" json:"order_id"`
	CustomerID string `bson:"customer_id" json:"customer_id"`
	Items      string `bson:"items" json:"items"`
	Status     string `bson:"status" json:"status"`
	CreatedAt  string `bson:"created_at" json:"created_at"`
}

// OrderStatusResult is the structured outcome of a status lookup. An unknown
// order is a normal not-found result, never an error.
type OrderStatusResult struct {
	Found     bool   `json:"found"`
	OrderID   string `json:"order_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Items     string `json:"items,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	Message   string `json:"message,omitempty"`
}
