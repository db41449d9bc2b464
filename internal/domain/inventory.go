package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pharmacy is a row of the pharmacy directory.
type Pharmacy struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Address      string    `json:"address" db:"address"`
	City         string    `json:"city" db:"city"`
	Lat          *float64  `json:"lat,omitempty" db:"lat"`
	Lon          *float64  `json:"lon,omitempty" db:"lon"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	Rating       *float64  `json:"rating,omitempty" db:"rating"`
	DeliveryTime *string   `json:"delivery_time,omitempty" db:"delivery_time"`
	IsVerified   bool      `json:"is_verified" db:"is_verified"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// InventoryListing is one medicine offer at one pharmacy, produced by joining
// the catalog against facility stock at query time.
type InventoryListing struct {
	MedicineID      uuid.UUID `json:"medicine_id" db:"medicine_id"`
	MedicineName    string    `json:"medicine_name" db:"medicine_name"`
	Brand           string    `json:"brand" db:"brand"`
	Category        string    `json:"category" db:"category"`
	PharmacyID      uuid.UUID `json:"pharmacy_id" db:"pharmacy_id"`
	PharmacyName    string    `json:"pharmacy_name" db:"pharmacy_name"`
	PharmacyAddress string    `json:"pharmacy_address" db:"pharmacy_address"`
	Price           float64   `json:"price" db:"price"`
	OriginalPrice   *float64  `json:"original_price,omitempty" db:"original_price"`
	StockQuantity   int       `json:"stock_quantity" db:"stock_quantity"`
	IsAvailable     bool      `json:"is_available" db:"is_available"`
	Rating          *float64  `json:"rating,omitempty" db:"rating"`
	DeliveryTime    *string   `json:"delivery_time,omitempty" db:"delivery_time"`
	DistanceKm      *float64  `json:"distance_km,omitempty" db:"-"`
}

// SortKey selects the single-key ordering of inventory search results.
type SortKey string

const (
	SortPriceAsc     SortKey = "price_asc"
	SortPriceDesc    SortKey = "price_desc"
	SortRating       SortKey = "rating"
	SortDeliveryTime SortKey = "delivery_time"
	SortDistance     SortKey = "distance"
)

// InventoryFilter describes an inventory search. UserLocation nil means the
// distance pass is skipped entirely.
type InventoryFilter struct {
	Text          string
	Category      string
	Sort          SortKey
	UserLocation  *Coordinate
	MaxDistanceKm float64
}
