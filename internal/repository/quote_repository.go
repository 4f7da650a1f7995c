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

type QuoteRepository struct {
	collection *mongo.Collection
}

func NewQuoteRepository(db *mongo.Database) *QuoteRepository {
	return &QuoteRepository{collection: db.Collection("quotes")}
}

func (r *QuoteRepository) Create(ctx context.Context, create *models.QuoteCreate) (*models.Quote, error) {
	quote := &models.Quote{
		ID:           uuid.NewString(),
		CustomerName: create.CustomerName,
		Company:      create.Company,
		Email:        normalizeEmail(create.Email),
		Phone:        create.Phone,
		Message:      create.Message,
		Items:        create.Items,
		Pricing:      []models.QuotePricing{},
		FileURL:      create.FileURL,
		Status:       models.StatusBeklemede,
		CreatedAt:    time.Now().UTC(),
	}

	if err := insertOne(ctx, r.collection, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, id string) (*models.Quote, error) {
	return findOneByID[models.Quote](ctx, r.collection, id)
}

// FindAll lists quotes newest-first, optionally filtered by status.
func (r *QuoteRepository) FindAll(ctx context.Context, statusFilter string) ([]models.Quote, error) {
	filter := bson.M{}
	if statusFilter != "" {
		filter["status"] = statusFilter
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(1000)

	return findMany[models.Quote](ctx, r.collection, filter, findOpts)
}

// FindByEmail lists a customer's own quotes, newest-first.
func (r *QuoteRepository) FindByEmail(ctx context.Context, email string) ([]models.Quote, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return findMany[models.Quote](ctx, r.collection, bson.M{"email": normalizeEmail(email)}, findOpts)
}

func (r *QuoteRepository) Update(ctx context.Context, id string, update *models.QuoteUpdate) (*models.Quote, error) {
	set := bson.M{}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.AdminNote != nil {
		set["admin_note"] = *update.AdminNote
	}
	if update.Pricing != nil {
		set["pricing"] = update.Pricing
	}

	if err := updateOneByID(ctx, r.collection, id, set); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *QuoteRepository) Delete(ctx context.Context, id string) error {
	return deleteOneByID(ctx, r.collection, id)
}
