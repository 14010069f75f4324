package equipmentRepo

import (
	"context"

	"labassist/models"
)

// EquipmentRepository defines access to the equipment catalogue.
type EquipmentRepository interface {
	// ListByStatus returns all instruments with the given status.
	ListByStatus(ctx context.Context, status string) ([]models.Equipment, error)
	// SeedDefault inserts the default catalogue when the collection is empty.
	SeedDefault(ctx context.Context) error
}
