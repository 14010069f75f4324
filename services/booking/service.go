// File: services/booking/service.go
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "labassist/database/repository/booking"
	equipmentRepo "labassist/database/repository/equipment"
	"labassist/models"
	"labassist/utils"
)

// DefaultBookingService implements BookingService against the booking ledger
// and equipment catalogue repositories.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Equip  equipmentRepo.EquipmentRepository
	Locker EquipmentLocker
}

// CheckAndBook runs the availability probe and the insert under an advisory
// lock keyed by equipment identifier, closing the check-then-act window
// between concurrent requests for the same instrument.
func (s *DefaultBookingService) CheckAndBook(ctx context.Context, in models.BookingInput) (*models.BookingResult, error) {
	logger := utils.GetLogger()

	start, err := parseStartTime(in.StartTime)
	if err != nil {
		return nil, NewValidationError("start_time", fmt.Sprintf("invalid timestamp %q", in.StartTime))
	}
	if in.DurationHours <= 0 {
		return nil, NewValidationError("duration_hours", "must be a positive integer")
	}

	release, err := s.Locker.Acquire(ctx, in.EquipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock equipment %s: %w", in.EquipmentID, err)
	}
	defer release()

	startUTC := start.UTC().Format(time.RFC3339)
	conflicts, err := s.Repo.FindActiveContaining(ctx, in.EquipmentID, startUTC)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		logger.Info("Booking rejected: equipment unavailable",
			zap.String("equipmentID", in.EquipmentID),
			zap.String("startTime", startUTC))
		return &models.BookingResult{
			Success: false,
			Message: "Equipment not available at requested time",
		}, nil
	}

	record := &models.Booking{
		ID:          uuid.New().String(),
		EquipmentID: in.EquipmentID,
		CustomerID:  in.CustomerID,
		StartTime:   startUTC,
		EndTime:     start.UTC().Add(time.Duration(in.DurationHours) * time.Hour).Format(time.RFC3339),
		Status:      models.BookingStatusActive,
		Purpose:     in.Purpose,
	}
	if err := s.Repo.Insert(ctx, record); err != nil {
		return nil, err
	}

	logger.Info("Booking created",
		zap.String("bookingID", record.ID),
		zap.String("equipmentID", in.EquipmentID),
		zap.String("customerID", in.CustomerID))
	return &models.BookingResult{
		Success:   true,
		BookingID: record.ID,
		Message:   fmt.Sprintf("Equipment %s booked for %d hours starting %s", in.EquipmentID, in.DurationHours, startUTC),
	}, nil
}

func (s *DefaultBookingService) AvailableEquipment(ctx context.Context) ([]models.Equipment, error) {
	return s.Equip.ListByStatus(ctx, models.EquipmentStatusAvailable)
}

// parseStartTime accepts RFC3339 as well as a bare local form without zone,
// which is treated as UTC.
func parseStartTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
