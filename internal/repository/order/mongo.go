package order

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tulynx-storefront/internal/domain"
)

const collectionName = "orders"

type mongoRepo struct {
	collection *mongo.Collection
}

func NewMongo(db *mongo.Database) Repository {
	return &mongoRepo{collection: db.Collection(collectionName)}
}

func (r *mongoRepo) Insert(ctx context.Context, order domain.Order) error {
	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *mongoRepo) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	err := r.collection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &order, nil
}

func (r *mongoRepo) ListByPhone(ctx context.Context, phone string) ([]domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"customer.phone": phone}, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (r *mongoRepo) CancelPending(ctx context.Context, orderID string) (*domain.Order, error) {
	filter := bson.M{"orderId": orderID, "status": domain.OrderStatusPending}
	update := bson.M{"$set": bson.M{"status": domain.OrderStatusCancelled}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order domain.Order
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&order)
	if err == nil {
		return &order, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("cancel order: %w", err)
	}

	// Distinguish "no such order" from "order is past pending".
	if _, gerr := r.GetByID(ctx, orderID); gerr != nil {
		return nil, gerr
	}
	return nil, domain.ErrConflict
}
