package models

import "time"

type Category struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Slug      string    `json:"slug" bson:"slug"`
	Icon      string    `json:"icon,omitempty" bson:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type CategoryCreate struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
	Icon string `json:"icon"`
}

type CategoryUpdate struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
	Icon *string `json:"icon,omitempty"`
}

type Product struct {
	ID               string    `json:"id" bson:"id"`
	Name             string    `json:"name" bson:"name"`
	Description      string    `json:"description" bson:"description"`
	Images           []string  `json:"images" bson:"images"`
	Category         string    `json:"category" bson:"category"`
	Variation        string    `json:"variation,omitempty" bson:"variation,omitempty"`
	Variants         []string  `json:"variants" bson:"variants"`
	MinOrderQuantity int       `json:"min_order_quantity" bson:"min_order_quantity"`
	PriceRange       string    `json:"price_range,omitempty" bson:"price_range,omitempty"`
	StockQuantity    *int      `json:"stock_quantity,omitempty" bson:"stock_quantity,omitempty"`
	MinimumStock     int       `json:"minimum_stock" bson:"minimum_stock"`
	IsFeatured       bool      `json:"is_featured" bson:"is_featured"`
	IsActive         bool      `json:"is_active" bson:"is_active"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

type ProductCreate struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Images           []string `json:"images"`
	Category         string   `json:"category" binding:"required"`
	Variation        string   `json:"variation"`
	Variants         []string `json:"variants"`
	MinOrderQuantity int      `json:"min_order_quantity"`
	PriceRange       string   `json:"price_range"`
	StockQuantity    *int     `json:"stock_quantity"`
	MinimumStock     int      `json:"minimum_stock"`
	IsFeatured       bool     `json:"is_featured"`
	IsActive         *bool    `json:"is_active"`
}

type ProductUpdate struct {
	Name             *string  `json:"name,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Images           []string `json:"images,omitempty"`
	Category         *string  `json:"category,omitempty"`
	Variation        *string  `json:"variation,omitempty"`
	Variants         []string `json:"variants,omitempty"`
	MinOrderQuantity *int     `json:"min_order_quantity,omitempty"`
	PriceRange       *string  `json:"price_range,omitempty"`
	StockQuantity    *int     `json:"stock_quantity,omitempty"`
	MinimumStock     *int     `json:"minimum_stock,omitempty"`
	IsFeatured       *bool    `json:"is_featured,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
}

// IsLowStock reports whether the product falls under the low-stock predicate:
// a tracked quantity at or below a positive configured minimum.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity != nil && p.MinimumStock > 0 && *p.StockQuantity <= p.MinimumStock
}

// StockStatus derives the display status for a low-stock product:
// "critical" when the shelf is empty, "low" otherwise.
func (p *Product) StockStatus() string {
	if !p.IsLowStock() {
		return ""
	}
	if *p.StockQuantity == 0 {
		return "critical"
	}
	return "low"
}

// LowStockProduct is a product annotated with its derived stock status for
// the low-stock listing.
type LowStockProduct struct {
	Product     `bson:",inline"`
	StockStatus string `json:"stock_status" bson:"-"`
}
