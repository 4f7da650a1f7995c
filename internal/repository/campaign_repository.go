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

type CampaignRepository struct {
	collection *mongo.Collection
}

func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{collection: db.Collection("campaigns")}
}

func (r *CampaignRepository) Create(ctx context.Context, create *models.CampaignCreate) (*models.Campaign, error) {
	campaign := &models.Campaign{
		ID:          uuid.NewString(),
		Title:       create.Title,
		Description: create.Description,
		CTAText:     create.CTAText,
		CTALink:     create.CTALink,
		StartDate:   create.StartDate,
		EndDate:     create.EndDate,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
	if create.IsActive != nil {
		campaign.IsActive = *create.IsActive
	}

	if err := insertOne(ctx, r.collection, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id string) (*models.Campaign, error) {
	return findOneByID[models.Campaign](ctx, r.collection, id)
}

func (r *CampaignRepository) FindAll(ctx context.Context) ([]models.Campaign, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return findMany[models.Campaign](ctx, r.collection, bson.M{}, findOpts)
}

// FindActive returns the most recent campaign whose active window contains
// the given time, or ErrNotFound when no banner should be shown.
func (r *CampaignRepository) FindActive(ctx context.Context, now time.Time) (*models.Campaign, error) {
	filter := bson.M{
		"is_active":  true,
		"start_date": bson.M{"$lte": now},
		"end_date":   bson.M{"$gte": now},
	}
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(1)

	campaigns, err := findMany[models.Campaign](ctx, r.collection, filter, findOpts)
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return nil, ErrNotFound
	}
	return &campaigns[0], nil
}

func (r *CampaignRepository) Update(ctx context.Context, id string, update *models.CampaignUpdate) (*models.Campaign, error) {
	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.CTAText != nil {
		set["cta_text"] = *update.CTAText
	}
	if update.CTALink != nil {
		set["cta_link"] = *update.CTALink
	}
	if update.StartDate != nil {
		set["start_date"] = *update.StartDate
	}
	if update.EndDate != nil {
		set["end_date"] = *update.EndDate
	}
	if update.IsActive != nil {
		set["is_active"] = *update.IsActive
	}

	if err := updateOneByID(ctx, r.collection, id, set); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	return deleteOneByID(ctx, r.collection, id)
}
