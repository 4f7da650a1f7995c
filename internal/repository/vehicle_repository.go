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

type VehicleRepository struct {
	collection *mongo.Collection
}

func NewVehicleRepository(db *mongo.Database) *VehicleRepository {
	return &VehicleRepository{collection: db.Collection("vehicles")}
}

func (r *VehicleRepository) Create(ctx context.Context, create *models.VehicleCreate) (*models.Vehicle, error) {
	vehicle := &models.Vehicle{
		ID:             uuid.NewString(),
		Plate:          create.Plate,
		Model:          create.Model,
		OdometerKM:     create.OdometerKM,
		MaintenanceDue: create.MaintenanceDue,
		InsuranceDue:   create.InsuranceDue,
		InspectionDue:  create.InspectionDue,
		Notes:          create.Notes,
		CreatedAt:      time.Now().UTC(),
	}

	if err := insertOne(ctx, r.collection, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id string) (*models.Vehicle, error) {
	return findOneByID[models.Vehicle](ctx, r.collection, id)
}

func (r *VehicleRepository) FindAll(ctx context.Context) ([]models.Vehicle, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "plate", Value: 1}})
	return findMany[models.Vehicle](ctx, r.collection, bson.M{}, findOpts)
}

func (r *VehicleRepository) Update(ctx context.Context, id string, update *models.VehicleUpdate) (*models.Vehicle, error) {
	set := bson.M{}
	if update.Plate != nil {
		set["plate"] = *update.Plate
	}
	if update.Model != nil {
		set["model"] = *update.Model
	}
	if update.OdometerKM != nil {
		set["odometer_km"] = *update.OdometerKM
	}
	if update.MaintenanceDue != nil {
		set["maintenance_due"] = *update.MaintenanceDue
	}
	if update.InsuranceDue != nil {
		set["insurance_due"] = *update.InsuranceDue
	}
	if update.InspectionDue != nil {
		set["inspection_due"] = *update.InspectionDue
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}

	if err := updateOneByID(ctx, r.collection, id, set); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	return deleteOneByID(ctx, r.collection, id)
}
