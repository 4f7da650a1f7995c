package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"teklif-api/internal/models"
)

type SettingsRepository struct {
	collection *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{collection: db.Collection("company_settings")}
}

// Get returns the singleton settings document, or an empty default when none
// has been saved yet.
func (r *SettingsRepository) Get(ctx context.Context) (*models.CompanySettings, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var settings models.CompanySettings
	filter := bson.M{"id": models.SettingsID}
	err := r.collection.FindOne(ctx, filter, options.FindOne().SetProjection(noObjectID)).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.CompanySettings{ID: models.SettingsID, Terms: []string{}}, nil
		}
		return nil, err
	}
	if settings.Terms == nil {
		settings.Terms = []string{}
	}
	return &settings, nil
}

// Save upserts against the fixed singleton id, so concurrent writers can
// never race a delete against an insert.
func (r *SettingsRepository) Save(ctx context.Context, settings *models.CompanySettings) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	settings.ID = models.SettingsID
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"id": models.SettingsID},
		settings,
		options.Replace().SetUpsert(true),
	)
	return err
}
