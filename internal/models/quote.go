package models

import "time"

// QuoteStatus is the fixed lifecycle of a quote request.
type QuoteStatus string

const (
	StatusBeklemede    QuoteStatus = "beklemede"
	StatusInceleniyor  QuoteStatus = "inceleniyor"
	StatusFiyatVerildi QuoteStatus = "fiyat_verildi"
	StatusOnaylandi    QuoteStatus = "onaylandi"
	StatusReddedildi   QuoteStatus = "reddedildi"
)

// StatusText maps a status to its display text.
func (s QuoteStatus) Text() string {
	switch s {
	case StatusInceleniyor:
		return "İnceleniyor"
	case StatusFiyatVerildi:
		return "Fiyat Verildi"
	case StatusOnaylandi:
		return "Onaylandı"
	case StatusReddedildi:
		return "Reddedildi"
	default:
		return "Beklemede"
	}
}

type QuoteItem struct {
	ProductID   string `json:"product_id" bson:"product_id" binding:"required"`
	ProductName string `json:"product_name" bson:"product_name" binding:"required"`
	Quantity    int    `json:"quantity" bson:"quantity" binding:"required,gt=0"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
}

type QuotePricing struct {
	ProductID   string  `json:"product_id" bson:"product_id" binding:"required"`
	ProductName string  `json:"product_name" bson:"product_name"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unit_price" bson:"unit_price"`
	TotalPrice  float64 `json:"total_price" bson:"total_price"`
}

type Quote struct {
	ID           string         `json:"id" bson:"id"`
	CustomerName string         `json:"customer_name" bson:"customer_name"`
	Company      string         `json:"company,omitempty" bson:"company,omitempty"`
	Email        string         `json:"email" bson:"email"`
	Phone        string         `json:"phone,omitempty" bson:"phone,omitempty"`
	Message      string         `json:"message,omitempty" bson:"message,omitempty"`
	Items        []QuoteItem    `json:"items" bson:"items"`
	Pricing      []QuotePricing `json:"pricing" bson:"pricing"`
	FileURL      string         `json:"file_url,omitempty" bson:"file_url,omitempty"`
	Status       QuoteStatus    `json:"status" bson:"status"`
	AdminNote    string         `json:"admin_note,omitempty" bson:"admin_note,omitempty"`
	CreatedAt    time.Time      `json:"created_at" bson:"created_at"`
}

type QuoteCreate struct {
	CustomerName string      `json:"customer_name" binding:"required"`
	Company      string      `json:"company"`
	Email        string      `json:"email" binding:"required,email"`
	Phone        string      `json:"phone"`
	Message      string      `json:"message"`
	Items        []QuoteItem `json:"items" binding:"required,min=1,dive"`
	FileURL      string      `json:"file_url"`
}

// QuoteUpdate carries the partially updatable fields. An out-of-range status
// is rejected at the binding layer before any database write.
type QuoteUpdate struct {
	Status    *QuoteStatus   `json:"status,omitempty" binding:"omitempty,oneof=beklemede inceleniyor fiyat_verildi onaylandi reddedildi"`
	AdminNote *string        `json:"admin_note,omitempty"`
	Pricing   []QuotePricing `json:"pricing,omitempty" binding:"omitempty,dive"`
}

// QuoteRef is the first-eight-characters display form of a quote id, used on
// PDF documents and email subjects.
func QuoteRef(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return id
}
