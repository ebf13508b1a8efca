package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceOnRequestSentinel marks an item whose price is negotiated rather
// than listed.
const PriceOnRequestSentinel float64 = -1

type Item struct {
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	ModifiedAt     time.Time          `bson:"modified_at" json:"modifiedAt"`
	Barcode        string             `bson:"barcode" json:"barcode"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Category       string             `bson:"category" json:"category"`
	Subcategory    string             `bson:"subcategory" json:"subcategory"`
	Images         []string           `bson:"images" json:"images"`
	Specs          []string           `bson:"specs" json:"specs"`
	Price          float64            `bson:"price" json:"price"`
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	PriceOnRequest bool               `bson:"-" json:"priceOnRequest"`
}

// ConstructPriceFlag sets the computed priceOnRequest field before the item
// is serialized.
func (item *Item) ConstructPriceFlag() {
	item.PriceOnRequest = item.Price == PriceOnRequestSentinel
}

type ItemRequest struct {
	Barcode     string   `bson:"barcode" json:"barcode" validate:"required"`
	Name        string   `bson:"name" json:"name" validate:"required"`
	Description string   `bson:"description" json:"description"`
	Category    string   `bson:"category" json:"category"`
	Subcategory string   `bson:"subcategory" json:"subcategory"`
	Images      []string `bson:"images" json:"images" validate:"max=10"`
	Specs       []string `bson:"specs" json:"specs"`
	Price       *float64 `bson:"price" json:"price"`
}

type ImportRowError struct {
	Error string `json:"error"`
	Row   int    `json:"row"`
}

type ImportReport struct {
	Errors  []ImportRowError `json:"errors"`
	Total   int              `json:"total"`
	Success int              `json:"success"`
	Skipped int              `json:"skipped"`
}
