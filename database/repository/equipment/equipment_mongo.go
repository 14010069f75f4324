// File: database/repository/equipment/equipment_mongo.go
package equipmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"labassist/database"
	"labassist/models"
)

// MongoEquipmentRepo is the MongoDB-backed equipment catalogue.
type MongoEquipmentRepo struct {
	coll *mongo.Collection
}

func NewMongoEquipmentRepo() *MongoEquipmentRepo {
	return &MongoEquipmentRepo{coll: database.Collection("equipment")}
}

func (r *MongoEquipmentRepo) ListByStatus(ctx context.Context, status string) ([]models.Equipment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	defer cursor.Close(ctx)

	var equipment []models.Equipment
	if err := cursor.All(ctx, &equipment); err != nil {
		return nil, fmt.Errorf("failed to decode equipment: %w", err)
	}
	return equipment, nil
}

// SeedDefault inserts the default catalogue when the collection is empty, so
// a fresh deployment has instruments to list and book.
func (r *MongoEquipmentRepo) SeedDefault(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count equipment: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(defaultCatalogue))
	for i, eq := range defaultCatalogue {
		docs[i] = eq
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed equipment catalogue: %w", err)
	}
	return nil
}

var defaultCatalogue = []models.Equipment{
	{ID: "centrifuge-01", Name: "Benchtop Centrifuge", Type: "centrifuge", Status: models.EquipmentStatusAvailable, Location: "Lab A"},
	{ID: "spectrometer-01", Name: "UV-Vis Spectrometer", Type: "spectrometer", Status: models.EquipmentStatusAvailable, Location: "Lab A"},
	{ID: "microscope-01", Name: "Confocal Microscope", Type: "microscope", Status: models.EquipmentStatusAvailable, Location: "Imaging Suite"},
	{ID: "pcr-01", Name: "Thermal Cycler", Type: "pcr", Status: models.EquipmentStatusAvailable, Location: "Lab B"},
	{ID: "hplc-01", Name: "HPLC System", Type: "chromatography", Status: "maintenance", Location: "Lab B"},
}
