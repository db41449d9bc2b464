package repository

import (
	"context"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	"github.com/google/uuid"
)

// InventoryRepository runs the catalog x facility-stock join.
type InventoryRepository interface {
	// SearchListings returns available listings matching the text/category
	// filter. A non-nil pharmacyIDs set scopes the join to those facilities.
	SearchListings(
		ctx context.Context,
		filter domain.InventoryFilter,
		pharmacyIDs []uuid.UUID,
	) ([]domain.InventoryListing, error)
}

// PharmacyRepository accesses the pharmacy directory.
type PharmacyRepository interface {
	GetAll(ctx context.Context) ([]domain.Pharmacy, error)

	// ListWithoutCoordinates returns directory rows that still need geocoding.
	ListWithoutCoordinates(ctx context.Context, limit int) ([]domain.Pharmacy, error)

	UpdateCoordinates(ctx context.Context, id uuid.UUID, lat, lon float64) error
}
