package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"teklif-api/internal/models"
)

type AdminRepository struct {
	collection *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{collection: db.Collection("admins")}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"username": username}, options.FindOne().SetProjection(noObjectID)).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// Exists reports whether any admin account has been bootstrapped.
func (r *AdminRepository) Exists(ctx context.Context) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AdminRepository) Create(ctx context.Context, username, passwordHash string) (*models.Admin, error) {
	admin := &models.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := insertOne(ctx, r.collection, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// UpdatePassword persists a new password hash to the admin document. The
// stored record is the only source of truth for the credential; nothing is
// held in process memory.
func (r *AdminRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"password_hash": passwordHash}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
