package usecase

import (
	"context"
	"sort"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	"github.com/asmit-inzanist/medic-all-sub000/internal/domain/repository"
	apperrors "github.com/asmit-inzanist/medic-all-sub000/internal/pkg/errors"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/geo"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase/dto"
	"go.uber.org/zap"
)

type NearbyUseCase struct {
	poiRepo            repository.POIRepository
	logger             *zap.Logger
	maxPharmacyResults int
	maxHospitalResults int
}

func NewNearbyUseCase(
	poiRepo repository.POIRepository,
	logger *zap.Logger,
	maxPharmacyResults int,
	maxHospitalResults int,
) *NearbyUseCase {
	return &NearbyUseCase{
		poiRepo:            poiRepo,
		logger:             logger,
		maxPharmacyResults: maxPharmacyResults,
		maxHospitalResults: maxHospitalResults,
	}
}

// SearchNearby returns facilities of the given category around a point,
// ordered ascending by distance and capped per category.
func (uc *NearbyUseCase) SearchNearby(
	ctx context.Context,
	req dto.NearbySearchRequest,
	category domain.FacilityCategory,
) (*dto.NearbyResponse, error) {
	if !geo.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, apperrors.ErrInvalidCoordinates
	}
	if !geo.ValidateRadius(req.RadiusKm) {
		return nil, apperrors.ErrInvalidRadius
	}

	center := domain.Coordinate{Lat: req.Lat, Lon: req.Lon}

	pois, err := uc.poiRepo.SearchNearby(ctx, center, req.RadiusKm, category)
	if err != nil {
		uc.logger.Error("Failed to search nearby facilities",
			zap.String("category", string(category)),
			zap.Error(err))
		return nil, apperrors.ErrNetworkFailure
	}

	sort.SliceStable(pois, func(i, j int) bool {
		return pois[i].DistanceKm < pois[j].DistanceKm
	})

	limit := uc.maxPharmacyResults
	if category == domain.CategoryHospital {
		limit = uc.maxHospitalResults
	}
	if len(pois) > limit {
		pois = pois[:limit]
	}

	return &dto.NearbyResponse{
		Facilities: pois,
		Total:      len(pois),
	}, nil
}
