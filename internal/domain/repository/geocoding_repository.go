package repository

import (
	"context"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
)

// GeocodingRepository talks to the external geocoding service.
type GeocodingRepository interface {
	// ReverseGeocode converts coordinates into a structured address.
	ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.Address, error)

	// Geocode resolves a free-text address to coordinates.
	Geocode(ctx context.Context, query string) (*domain.Coordinate, error)
}
