package bookingRepo

import (
	"context"

	"labassist/models"
)

// BookingRepository defines the data access methods used by the booking
// ledger.
type BookingRepository interface {
	// FindActiveContaining returns active bookings for the equipment whose
	// [start_time, end_time] span contains the given start point.
	FindActiveContaining(ctx context.Context, equipmentID, startTime string) ([]models.Booking, error)
	// ListActive returns all active bookings for the equipment.
	ListActive(ctx context.Context, equipmentID string) ([]models.Booking, error)
	// Insert persists a new booking row.
	Insert(ctx context.Context, booking *models.Booking) error
}
