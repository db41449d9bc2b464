package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	"github.com/asmit-inzanist/medic-all-sub000/internal/domain/repository"
	apperrors "github.com/asmit-inzanist/medic-all-sub000/internal/pkg/errors"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/geo"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase/dto"
	"go.uber.org/zap"
)

const fallbackNotice = "Showing an estimated straight-line route; turn-by-turn directions are currently unavailable"

type RouteUseCase struct {
	routingRepo      repository.RoutingRepository
	logger           *zap.Logger
	fallbackSpeedKmh float64
}

func NewRouteUseCase(
	routingRepo repository.RoutingRepository,
	logger *zap.Logger,
	fallbackSpeedKmh float64,
) *RouteUseCase {
	return &RouteUseCase{
		routingRepo:      routingRepo,
		logger:           logger,
		fallbackSpeedKmh: fallbackSpeedKmh,
	}
}

// GetRoute fetches a turn-by-turn route; any upstream failure degrades to a
// straight-line estimate with an advisory notice instead of an error.
func (uc *RouteUseCase) GetRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	if !geo.ValidateCoordinates(req.FromLat, req.FromLon) || !geo.ValidateCoordinates(req.ToLat, req.ToLon) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	from := domain.Coordinate{Lat: req.FromLat, Lon: req.FromLon}
	to := domain.Coordinate{Lat: req.ToLat, Lon: req.ToLon}

	route, err := uc.routingRepo.GetRoute(ctx, from, to)
	if err != nil {
		uc.logger.Warn("Directions service failed, building straight-line fallback", zap.Error(err))
		fallback := uc.buildFallbackRoute(from, to)
		return &dto.RouteResponse{
			Route:     fallback,
			Estimated: true,
			Notice:    fallback.Notice,
		}, nil
	}

	return &dto.RouteResponse{Route: route}, nil
}

// buildFallbackRoute synthesizes a 2-point route with duration derived from
// the configured average speed.
func (uc *RouteUseCase) buildFallbackRoute(from, to domain.Coordinate) *domain.Route {
	distanceKm := geo.Distance(from.Lat, from.Lon, to.Lat, to.Lon)
	durationSeconds := distanceKm / uc.fallbackSpeedKmh * 3600

	step := domain.RouteStep{
		Instruction:     fmt.Sprintf("Head toward your destination (%s)", geo.FormatDistance(distanceKm)),
		DistanceMeters:  distanceKm * 1000,
		DurationSeconds: durationSeconds,
		Geometry:        []domain.Coordinate{from, to},
	}

	return &domain.Route{
		DistanceMeters:  distanceKm * 1000,
		DurationSeconds: durationSeconds,
		Geometry:        []domain.Coordinate{from, to},
		Steps:           []domain.RouteStep{step},
		Notice:          fallbackNotice,
	}
}

// mapsLinkBuilder builds the hand-off URLs for one platform.
type mapsLinkBuilder func(dest domain.Coordinate, label string, origin *domain.Coordinate) domain.MapsLinks

// mapsLinkStrategies is the platform strategy table: each entry yields a
// primary URL the client should try first and fallbacks to attempt after.
var mapsLinkStrategies = map[domain.Platform]mapsLinkBuilder{
	domain.PlatformIOS: func(dest domain.Coordinate, label string, origin *domain.Coordinate) domain.MapsLinks {
		params := url.Values{}
		params.Set("daddr", fmt.Sprintf("%f,%f", dest.Lat, dest.Lon))
		if label != "" {
			params.Set("q", label)
		}
		if origin != nil {
			params.Set("saddr", fmt.Sprintf("%f,%f", origin.Lat, origin.Lon))
		}
		return domain.MapsLinks{
			Primary:       "http://maps.apple.com/?" + params.Encode(),
			Fallback:      googleMapsWebURL(dest, origin),
			OpenStreetMap: openStreetMapURL(dest, origin),
		}
	},
	domain.PlatformAndroid: func(dest domain.Coordinate, label string, origin *domain.Coordinate) domain.MapsLinks {
		primary := fmt.Sprintf("google.navigation:q=%f,%f", dest.Lat, dest.Lon)
		if label != "" {
			primary += "(" + url.QueryEscape(label) + ")"
		}
		return domain.MapsLinks{
			Primary:       primary,
			Fallback:      googleMapsWebURL(dest, origin),
			OpenStreetMap: openStreetMapURL(dest, origin),
		}
	},
	domain.PlatformWeb: func(dest domain.Coordinate, label string, origin *domain.Coordinate) domain.MapsLinks {
		return domain.MapsLinks{
			Primary:       googleMapsWebURL(dest, origin),
			OpenStreetMap: openStreetMapURL(dest, origin),
		}
	},
}

// MapsLinks builds external maps hand-off URLs for the given platform. Pure
// URL construction: opening them is the client's best-effort concern.
func (uc *RouteUseCase) MapsLinks(
	dest domain.Coordinate,
	label string,
	origin *domain.Coordinate,
	platform domain.Platform,
) (*dto.MapsLinksResponse, error) {
	if !geo.ValidateCoordinates(dest.Lat, dest.Lon) {
		return nil, apperrors.ErrInvalidCoordinates
	}
	if origin != nil && !geo.ValidateCoordinates(origin.Lat, origin.Lon) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	builder, ok := mapsLinkStrategies[platform]
	if !ok {
		platform = domain.PlatformWeb
		builder = mapsLinkStrategies[domain.PlatformWeb]
	}

	return &dto.MapsLinksResponse{
		Platform: platform,
		Links:    builder(dest, label, origin),
	}, nil
}

func googleMapsWebURL(dest domain.Coordinate, origin *domain.Coordinate) string {
	params := url.Values{}
	params.Set("api", "1")
	params.Set("destination", fmt.Sprintf("%f,%f", dest.Lat, dest.Lon))
	if origin != nil {
		params.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lon))
	}
	return "https://www.google.com/maps/dir/?" + params.Encode()
}

func openStreetMapURL(dest domain.Coordinate, origin *domain.Coordinate) string {
	if origin != nil {
		params := url.Values{}
		params.Set("engine", "fossgis_osrm_car")
		params.Set("route", fmt.Sprintf("%f,%f;%f,%f", origin.Lat, origin.Lon, dest.Lat, dest.Lon))
		return "https://www.openstreetmap.org/directions?" + params.Encode()
	}
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%f&mlon=%f#map=16/%f/%f",
		dest.Lat, dest.Lon, dest.Lat, dest.Lon)
}
