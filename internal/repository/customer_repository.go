package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"teklif-api/internal/models"
)

// ErrDuplicateEmail is returned when a registration reuses an existing
// customer email.
var ErrDuplicateEmail = errors.New("email already registered")

type CustomerRepository struct {
	collection *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{collection: db.Collection("customers")}
}

func (r *CustomerRepository) Create(ctx context.Context, register *models.CustomerRegister, passwordHash string) (*models.Customer, error) {
	email := normalizeEmail(register.Email)

	if _, err := r.FindByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	customer := &models.Customer{
		ID:           uuid.NewString(),
		Name:         register.Name,
		Email:        email,
		PasswordHash: passwordHash,
		Company:      register.Company,
		Phone:        register.Phone,
		CreatedAt:    time.Now().UTC(),
	}

	if err := insertOne(ctx, r.collection, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	return findOneByID[models.Customer](ctx, r.collection, id)
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var customer models.Customer
	filter := bson.M{"email": normalizeEmail(email)}
	err := r.collection.FindOne(ctx, filter, options.FindOne().SetProjection(noObjectID)).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id string, update *models.CustomerUpdate) (*models.Customer, error) {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Company != nil {
		set["company"] = *update.Company
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}

	if err := updateOneByID(ctx, r.collection, id, set); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}
