package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"teklif-api/internal/models"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection("products")}
}

// ProductListOptions are the query parameters of the public product listing.
type ProductListOptions struct {
	Category  string
	Search    string
	SortBy    string
	SortOrder string
	LowStock  bool
}

// lowStockFilter is the single low-stock predicate: a tracked stock quantity
// at or below a positive configured minimum.
func lowStockFilter() bson.M {
	return bson.M{
		"stock_quantity": bson.M{"$ne": nil},
		"minimum_stock":  bson.M{"$gt": 0},
		"$expr":          bson.M{"$lte": bson.A{"$stock_quantity", "$minimum_stock"}},
	}
}

func (r *ProductRepository) Create(ctx context.Context, create *models.ProductCreate) (*models.Product, error) {
	product := &models.Product{
		ID:               uuid.NewString(),
		Name:             create.Name,
		Description:      create.Description,
		Images:           create.Images,
		Category:         create.Category,
		Variation:        create.Variation,
		Variants:         create.Variants,
		MinOrderQuantity: create.MinOrderQuantity,
		PriceRange:       create.PriceRange,
		StockQuantity:    create.StockQuantity,
		MinimumStock:     create.MinimumStock,
		IsFeatured:       create.IsFeatured,
		IsActive:         true,
		CreatedAt:        time.Now().UTC(),
	}
	if create.IsActive != nil {
		product.IsActive = *create.IsActive
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if product.Variants == nil {
		product.Variants = []string{}
	}
	if product.MinOrderQuantity == 0 {
		product.MinOrderQuantity = 1
	}

	if err := insertOne(ctx, r.collection, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	return findOneByID[models.Product](ctx, r.collection, id)
}

func (r *ProductRepository) FindAll(ctx context.Context, opts ProductListOptions) ([]models.Product, error) {
	filter := bson.M{}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}
	if opts.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(opts.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}
	if opts.LowStock {
		for k, v := range lowStockFilter() {
			filter[k] = v
		}
	}

	sortField := "created_at"
	if opts.SortBy != "" {
		sortField = opts.SortBy
	}
	sortDir := -1
	if opts.SortOrder == "asc" {
		sortDir = 1
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: sortDir}}).
		SetLimit(1000)

	return findMany[models.Product](ctx, r.collection, filter, findOpts)
}

// FindLowStock returns products under the low-stock predicate, annotated with
// their derived stock status, emptiest shelf first.
func (r *ProductRepository) FindLowStock(ctx context.Context) ([]models.LowStockProduct, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "stock_quantity", Value: 1}})
	products, err := findMany[models.Product](ctx, r.collection, lowStockFilter(), findOpts)
	if err != nil {
		return nil, err
	}

	annotated := make([]models.LowStockProduct, 0, len(products))
	for i := range products {
		annotated = append(annotated, models.LowStockProduct{
			Product:     products[i],
			StockStatus: products[i].StockStatus(),
		})
	}
	return annotated, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, update *models.ProductUpdate) (*models.Product, error) {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Images != nil {
		set["images"] = update.Images
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Variation != nil {
		set["variation"] = *update.Variation
	}
	if update.Variants != nil {
		set["variants"] = update.Variants
	}
	if update.MinOrderQuantity != nil {
		set["min_order_quantity"] = *update.MinOrderQuantity
	}
	if update.PriceRange != nil {
		set["price_range"] = *update.PriceRange
	}
	if update.StockQuantity != nil {
		set["stock_quantity"] = *update.StockQuantity
	}
	if update.MinimumStock != nil {
		set["minimum_stock"] = *update.MinimumStock
	}
	if update.IsFeatured != nil {
		set["is_featured"] = *update.IsFeatured
	}
	if update.IsActive != nil {
		set["is_active"] = *update.IsActive
	}

	if err := updateOneByID(ctx, r.collection, id, set); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return deleteOneByID(ctx, r.collection, id)
}
