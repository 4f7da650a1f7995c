package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"teklif-api/internal/models"
)

type VisitorRepository struct {
	collection *mongo.Collection
}

func NewVisitorRepository(db *mongo.Database) *VisitorRepository {
	return &VisitorRepository{collection: db.Collection("visitors")}
}

func (r *VisitorRepository) Insert(ctx context.Context, visitor *models.Visitor) error {
	return insertOne(ctx, r.collection, visitor)
}

func (r *VisitorRepository) FindRecent(ctx context.Context, limit int64) ([]models.Visitor, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	findOpts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	return findMany[models.Visitor](ctx, r.collection, bson.M{}, findOpts)
}
