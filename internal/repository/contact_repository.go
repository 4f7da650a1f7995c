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

type ContactRepository struct {
	collection *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{collection: db.Collection("contact_messages")}
}

func (r *ContactRepository) Create(ctx context.Context, create *models.ContactMessageCreate) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      create.Name,
		Email:     create.Email,
		Subject:   create.Subject,
		Message:   create.Message,
		Status:    "new",
		CreatedAt: time.Now().UTC(),
	}

	if err := insertOne(ctx, r.collection, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	return findOneByID[models.ContactMessage](ctx, r.collection, id)
}

func (r *ContactRepository) FindAll(ctx context.Context, statusFilter string) ([]models.ContactMessage, error) {
	filter := bson.M{}
	if statusFilter != "" {
		filter["status"] = statusFilter
	}
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return findMany[models.ContactMessage](ctx, r.collection, filter, findOpts)
}

func (r *ContactRepository) Update(ctx context.Context, id string, update *models.ContactMessageUpdate) (*models.ContactMessage, error) {
	set := bson.M{}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	if err := updateOneByID(ctx, r.collection, id, set); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	return deleteOneByID(ctx, r.collection, id)
}
