package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	"github.com/asmit-inzanist/medic-all-sub000/internal/domain/repository"
	apperrors "github.com/asmit-inzanist/medic-all-sub000/internal/pkg/errors"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/geo"
	"go.uber.org/zap"
)

// Position acquisition failure kinds, as reported by the device capability.
var (
	ErrPositionPermissionDenied = errors.New("geolocation permission denied")
	ErrPositionUnavailable      = errors.New("position unavailable")
	ErrPositionTimeout          = errors.New("position request timed out")
	ErrPositionUnsupported      = errors.New("geolocation not supported")
)

// PositionProvider abstracts the device geolocation capability. The delivery
// layer supplies an implementation carrying whatever the client reported.
type PositionProvider interface {
	CurrentPosition(ctx context.Context) (*domain.Position, error)
}

type LocationUseCase struct {
	geocoder        repository.GeocodingRepository
	cache           repository.CacheRepository
	logger          *zap.Logger
	positionTimeout time.Duration
	positionMaxAge  time.Duration
	geocodeCacheTTL time.Duration
}

func NewLocationUseCase(
	geocoder repository.GeocodingRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
	positionTimeout time.Duration,
	positionMaxAge time.Duration,
	geocodeCacheTTL time.Duration,
) *LocationUseCase {
	return &LocationUseCase{
		geocoder:        geocoder,
		cache:           cache,
		logger:          logger,
		positionTimeout: positionTimeout,
		positionMaxAge:  positionMaxAge,
		geocodeCacheTTL: geocodeCacheTTL,
	}
}

// Resolve acquires a position from the provider and reverse-geocodes it into
// a fresh ResolvedLocation snapshot. Position failures are terminal and carry
// a distinct message per kind; a reverse-geocode failure degrades to the raw
// coordinates instead of failing the call.
func (uc *LocationUseCase) Resolve(ctx context.Context, provider PositionProvider) (*domain.ResolvedLocation, error) {
	if provider == nil {
		return nil, apperrors.ErrUnsupportedEnvironment
	}

	posCtx, cancel := context.WithTimeout(ctx, uc.positionTimeout)
	defer cancel()

	pos, err := provider.CurrentPosition(posCtx)
	if err != nil {
		uc.logger.Warn("Position acquisition failed", zap.Error(err))
		return nil, uc.mapPositionError(err)
	}

	if uc.positionMaxAge > 0 && !pos.ReportedAt.IsZero() && time.Since(pos.ReportedAt) > uc.positionMaxAge {
		uc.logger.Warn("Reported position too old",
			zap.Time("reported_at", pos.ReportedAt),
			zap.Duration("max_age", uc.positionMaxAge))
		return nil, apperrors.ErrPositionUnavailable.WithDetails(map[string]interface{}{
			"permission": string(domain.PermissionGranted),
			"reason":     "stale_position",
		})
	}

	coords := &pos.Coords

	location := &domain.ResolvedLocation{
		Coords:     coords,
		Permission: domain.PermissionGranted,
	}

	addr, err := uc.lookupAddress(ctx, coords.Lat, coords.Lon)
	if err != nil {
		// Reverse geocoding is best-effort: keep the coordinates and degrade
		// to a coordinate-only label.
		uc.logger.Warn("Reverse geocoding failed, using raw coordinates", zap.Error(err))
		location.FormattedAddress = formatCoordinates(coords.Lat, coords.Lon)
		return location, nil
	}

	location.City = addr.City
	location.State = addr.State
	location.Country = addr.Country
	if label := addr.FormattedLabel(); label != "" {
		location.FormattedAddress = label
	} else {
		location.FormattedAddress = formatCoordinates(coords.Lat, coords.Lon)
	}

	return location, nil
}

// ReverseGeocode exposes the cached reverse-geocode lookup directly.
func (uc *LocationUseCase) ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.Address, error) {
	if !geo.ValidateCoordinates(lat, lon) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	addr, err := uc.lookupAddress(ctx, lat, lon)
	if err != nil {
		return nil, apperrors.ErrNetworkFailure
	}
	return addr, nil
}

// lookupAddress is a cache-aside wrapper around the geocoding service.
func (uc *LocationUseCase) lookupAddress(ctx context.Context, lat, lon float64) (*domain.Address, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.GetAddress(ctx, lat, lon); err == nil && cached != nil {
			return cached, nil
		}
	}

	addr, err := uc.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetAddress(ctx, lat, lon, addr, uc.geocodeCacheTTL); err != nil {
			uc.logger.Warn("Failed to cache reverse geocode result", zap.Error(err))
		}
	}

	return addr, nil
}

// mapPositionError translates provider failures into the typed taxonomy. The
// permission state embedded in each error's details drives UI gating.
func (uc *LocationUseCase) mapPositionError(err error) error {
	switch {
	case errors.Is(err, ErrPositionPermissionDenied):
		return apperrors.ErrPermissionDenied.WithDetails(map[string]interface{}{
			"permission": string(domain.PermissionDenied),
		})
	case errors.Is(err, ErrPositionTimeout), errors.Is(err, context.DeadlineExceeded):
		return apperrors.ErrLocationTimeout.WithDetails(map[string]interface{}{
			"permission": string(domain.PermissionUnknown),
		})
	case errors.Is(err, ErrPositionUnsupported):
		return apperrors.ErrUnsupportedEnvironment
	default:
		return apperrors.ErrPositionUnavailable.WithDetails(map[string]interface{}{
			"permission": string(domain.PermissionUnknown),
		})
	}
}

func formatCoordinates(lat, lon float64) string {
	return fmt.Sprintf("%.4f, %.4f", lat, lon)
}
