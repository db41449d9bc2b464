package usecase

import (
	"context"
	"sort"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	"github.com/asmit-inzanist/medic-all-sub000/internal/domain/repository"
	apperrors "github.com/asmit-inzanist/medic-all-sub000/internal/pkg/errors"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/geo"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultMaxDistanceKm = 10

type InventoryUseCase struct {
	inventoryRepo repository.InventoryRepository
	pharmacyRepo  repository.PharmacyRepository
	logger        *zap.Logger
}

func NewInventoryUseCase(
	inventoryRepo repository.InventoryRepository,
	pharmacyRepo repository.PharmacyRepository,
	logger *zap.Logger,
) *InventoryUseCase {
	return &InventoryUseCase{
		inventoryRepo: inventoryRepo,
		pharmacyRepo:  pharmacyRepo,
		logger:        logger,
	}
}

// Search runs the catalog x stock join with optional location scoping. With a
// user location the pharmacy directory is distance-filtered first; when no
// pharmacy survives the radius the inventory query is skipped entirely.
func (uc *InventoryUseCase) Search(ctx context.Context, req dto.InventorySearchRequest) (*dto.InventorySearchResponse, error) {
	filter := domain.InventoryFilter{
		Text:          req.Text,
		Category:      req.Category,
		Sort:          domain.SortKey(req.Sort),
		MaxDistanceKm: req.MaxDistanceKm,
	}
	if filter.Sort == "" {
		filter.Sort = domain.SortDistance
	}
	if filter.MaxDistanceKm == 0 {
		filter.MaxDistanceKm = defaultMaxDistanceKm
	}

	if req.Lat == nil || req.Lon == nil {
		listings, err := uc.inventoryRepo.SearchListings(ctx, filter, nil)
		if err != nil {
			uc.logger.Error("Inventory search failed", zap.Error(err))
			return nil, apperrors.ErrQueryFailed
		}
		sortListings(listings, filter.Sort)
		return &dto.InventorySearchResponse{Listings: listings, Total: len(listings)}, nil
	}

	if !geo.ValidateCoordinates(*req.Lat, *req.Lon) {
		return nil, apperrors.ErrInvalidCoordinates
	}
	userLocation := domain.Coordinate{Lat: *req.Lat, Lon: *req.Lon}
	filter.UserLocation = &userLocation

	pharmacies, err := uc.pharmacyRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load pharmacy directory", zap.Error(err))
		return nil, apperrors.ErrQueryFailed
	}

	type nearbyPharmacy struct {
		id         uuid.UUID
		distanceKm float64
	}

	nearby := make([]nearbyPharmacy, 0, len(pharmacies))
	for _, p := range pharmacies {
		if p.Lat == nil || p.Lon == nil {
			continue
		}
		d := geo.Distance(userLocation.Lat, userLocation.Lon, *p.Lat, *p.Lon)
		if d <= filter.MaxDistanceKm {
			nearby = append(nearby, nearbyPharmacy{id: p.ID, distanceKm: d})
		}
	}

	// No pharmacy in range: skip the inventory query entirely.
	if len(nearby) == 0 {
		uc.logger.Debug("No pharmacies within radius, skipping inventory query",
			zap.Float64("max_distance_km", filter.MaxDistanceKm))
		return &dto.InventorySearchResponse{Listings: []domain.InventoryListing{}}, nil
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].distanceKm < nearby[j].distanceKm
	})

	ids := make([]uuid.UUID, len(nearby))
	distanceByID := make(map[uuid.UUID]float64, len(nearby))
	for i, p := range nearby {
		ids[i] = p.id
		distanceByID[p.id] = p.distanceKm
	}

	listings, err := uc.inventoryRepo.SearchListings(ctx, filter, ids)
	if err != nil {
		uc.logger.Error("Inventory search failed", zap.Error(err))
		return nil, apperrors.ErrQueryFailed
	}

	for i := range listings {
		if d, ok := distanceByID[listings[i].PharmacyID]; ok {
			distance := d
			listings[i].DistanceKm = &distance
		}
	}

	sortListings(listings, filter.Sort)

	return &dto.InventorySearchResponse{Listings: listings, Total: len(listings)}, nil
}

// sortListings applies the single-key stable ordering. Listings missing the
// sort attribute go last.
func sortListings(listings []domain.InventoryListing, key domain.SortKey) {
	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price < listings[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price > listings[j].Price
		})
	case domain.SortRating:
		sort.SliceStable(listings, func(i, j int) bool {
			ri, rj := listings[i].Rating, listings[j].Rating
			if ri == nil {
				return false
			}
			if rj == nil {
				return true
			}
			return *ri > *rj
		})
	case domain.SortDeliveryTime:
		sort.SliceStable(listings, func(i, j int) bool {
			di, dj := listings[i].DeliveryTime, listings[j].DeliveryTime
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			return *di < *dj
		})
	default: // distance
		sort.SliceStable(listings, func(i, j int) bool {
			di, dj := listings[i].DistanceKm, listings[j].DistanceKm
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			return *di < *dj
		})
	}
}
