package models

// Booking status values. A booking is never deleted; cancellation is the
// only permitted mutation.
const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed equipment reservation.
// Times are stored as UTC RFC3339 strings so lexical order matches
// chronological order.
type Booking struct {
	ID          string `bson:"id" json:"id"`                     // Unique booking identifier (UUID)
	EquipmentID string `bson:"equipment_id" json:"equipment_id"` // Instrument being reserved
	CustomerID  string `bson:"customer_id" json:"customer_id"`   // Customer who made the booking
	StartTime   string `bson:"start_time" json:"start_time"`     // Reservation start (UTC RFC3339)
	EndTime     string `bson:"end_time" json:"end_time"`         // Derived: start + duration
	Status      string `bson:"status" json:"status"`             // "active" or "cancelled"
	Purpose     string `bson:"purpose" json:"purpose"`           // Free-text purpose of the session
}

// BookingInput is the payload for a direct booking request.
type BookingInput struct {
	EquipmentID   string `json:"equipment_id" binding:"required"`
	CustomerID    string `json:"customer_id" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	DurationHours int    `json:"duration_hours" binding:"required"`
	Purpose       string `json:"purpose"`
}

// BookingResult is the outcome of a check-and-book attempt. An unavailable
// slot is a normal result, not an error.
type BookingResult struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id,omitempty"`
	Message   string `json:"message"`
}
