// File: database/repository/order/order_mongo.go
package orderRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"labassist/database"
	"labassist/models"
)

// MongoOrderRepo is the MongoDB-backed order ledger.
type MongoOrderRepo struct {
	coll *mongo.Collection
}

func NewMongoOrderRepo() *MongoOrderRepo {
	return &MongoOrderRepo{coll: database.Collection("orders")}
}

func (r *MongoOrderRepo) GetByID(ctx context.Context, orderID, customerID string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"order_id": orderID, "customer_id": customerID}
	var order models.Order
	err := r.coll.FindOne(ctx, filter).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &order, nil
}

// EnsureIndexes creates the unique composite key index on orders.
func (r *MongoOrderRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "order_id", Value: 1},
			{Key: "customer_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create order indexes: %w", err)
	}
	return nil
}
