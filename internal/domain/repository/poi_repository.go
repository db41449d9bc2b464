package repository

import (
	"context"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
)

// POIRepository queries the public POI data service for facilities around a
// point. Implementations return normalized records with distance computed
// from the center; ordering and result caps are the caller's concern.
type POIRepository interface {
	SearchNearby(
		ctx context.Context,
		center domain.Coordinate,
		radiusKm float64,
		category domain.FacilityCategory,
	) ([]domain.PointOfInterest, error)
}
