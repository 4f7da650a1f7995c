package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"teklif-api/internal/models"
)

type CategoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{collection: db.Collection("categories")}
}

func (r *CategoryRepository) Create(ctx context.Context, create *models.CategoryCreate) (*models.Category, error) {
	category := &models.Category{
		ID:        uuid.NewString(),
		Name:      create.Name,
		Slug:      create.Slug,
		Icon:      create.Icon,
		CreatedAt: time.Now().UTC(),
	}

	if err := insertOne(ctx, r.collection, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	return findOneByID[models.Category](ctx, r.collection, id)
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return findMany[models.Category](ctx, r.collection, bson.M{}, findOpts)
}

func (r *CategoryRepository) Update(ctx context.Context, id string, update *models.CategoryUpdate) (*models.Category, error) {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Slug != nil {
		set["slug"] = *update.Slug
	}
	if update.Icon != nil {
		set["icon"] = *update.Icon
	}

	if err := updateOneByID(ctx, r.collection, id, set); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return deleteOneByID(ctx, r.collection, id)
}
