package booking

import (
	"context"

	"labassist/models"
)

// BookingService is the equipment booking ledger: availability check plus
// insert-with-conflict-rejection, and the catalogue listing.
type BookingService interface {
	// CheckAndBook validates the request, checks availability, and inserts a
	// new active booking. An unavailable slot is a normal unsuccessful
	// result; validation problems return a *ValidationError.
	CheckAndBook(ctx context.Context, in models.BookingInput) (*models.BookingResult, error)
	// AvailableEquipment lists instruments currently open for booking.
	AvailableEquipment(ctx context.Context) ([]models.Equipment, error)
}
