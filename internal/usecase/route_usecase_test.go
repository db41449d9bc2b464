package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	apperrors "github.com/asmit-inzanist/medic-all-sub000/internal/pkg/errors"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/geo"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouteUseCase(routingRepo *MockRoutingRepository) *usecase.RouteUseCase {
	return usecase.NewRouteUseCase(routingRepo, zap.NewNop(), 50)
}

func TestRouteUseCase_GetRoute_Success(t *testing.T) {
	routingRepo := new(MockRoutingRepository)
	uc := newRouteUseCase(routingRepo)

	route := &domain.Route{
		DistanceMeters:  4200,
		DurationSeconds: 600,
		Geometry: []domain.Coordinate{
			{Lat: 40.0, Lon: -74.0},
			{Lat: 40.01, Lon: -74.01},
		},
		Steps: []domain.RouteStep{{Instruction: "Turn left"}},
	}
	routingRepo.On("GetRoute", mock.Anything,
		domain.Coordinate{Lat: 40.0, Lon: -74.0},
		domain.Coordinate{Lat: 40.01, Lon: -74.01},
	).Return(route, nil)

	resp, err := uc.GetRoute(context.Background(), dto.RouteRequest{
		FromLat: 40.0, FromLon: -74.0, ToLat: 40.01, ToLon: -74.01,
	})

	require.NoError(t, err)
	assert.False(t, resp.Estimated)
	assert.Empty(t, resp.Notice)
	assert.Equal(t, 4200.0, resp.Route.DistanceMeters)
}

func TestRouteUseCase_GetRoute_UpstreamFailureBuildsFallback(t *testing.T) {
	routingRepo := new(MockRoutingRepository)
	uc := newRouteUseCase(routingRepo)

	routingRepo.On("GetRoute", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("service unavailable"))

	req := dto.RouteRequest{FromLat: 40.7128, FromLon: -74.0060, ToLat: 40.7306, ToLon: -73.9352}
	resp, err := uc.GetRoute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Estimated)
	assert.NotEmpty(t, resp.Notice)
	require.NotNil(t, resp.Route)

	wantKm := geo.Distance(req.FromLat, req.FromLon, req.ToLat, req.ToLon)
	assert.InDelta(t, wantKm*1000, resp.Route.DistanceMeters, 0.01)
	assert.InDelta(t, wantKm/50*3600, resp.Route.DurationSeconds, 0.01)

	require.Len(t, resp.Route.Geometry, 2)
	assert.Equal(t, domain.Coordinate{Lat: req.FromLat, Lon: req.FromLon}, resp.Route.Geometry[0])
	assert.Equal(t, domain.Coordinate{Lat: req.ToLat, Lon: req.ToLon}, resp.Route.Geometry[1])

	require.Len(t, resp.Route.Steps, 1)
	assert.Contains(t, resp.Route.Steps[0].Instruction, "Head toward your destination")
}

func TestRouteUseCase_GetRoute_InvalidCoordinates(t *testing.T) {
	routingRepo := new(MockRoutingRepository)
	uc := newRouteUseCase(routingRepo)

	_, err := uc.GetRoute(context.Background(), dto.RouteRequest{
		FromLat: 100.0, FromLon: 0.0, ToLat: 40.0, ToLon: -74.0,
	})

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_COORDINATES", appErr.Code)
	routingRepo.AssertNotCalled(t, "GetRoute", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouteUseCase_MapsLinks_IOS(t *testing.T) {
	uc := newRouteUseCase(new(MockRoutingRepository))

	dest := domain.Coordinate{Lat: 40.7128, Lon: -74.0060}
	origin := &domain.Coordinate{Lat: 40.7306, Lon: -73.9352}

	resp, err := uc.MapsLinks(dest, "City Pharmacy", origin, domain.PlatformIOS)

	require.NoError(t, err)
	assert.Equal(t, domain.PlatformIOS, resp.Platform)
	assert.Contains(t, resp.Links.Primary, "maps.apple.com")
	assert.Contains(t, resp.Links.Primary, "daddr=")
	assert.Contains(t, resp.Links.Primary, "saddr=")
	assert.Contains(t, resp.Links.Fallback, "google.com/maps/dir")
	assert.Contains(t, resp.Links.OpenStreetMap, "openstreetmap.org")
}

func TestRouteUseCase_MapsLinks_Android(t *testing.T) {
	uc := newRouteUseCase(new(MockRoutingRepository))

	dest := domain.Coordinate{Lat: 40.7128, Lon: -74.0060}

	resp, err := uc.MapsLinks(dest, "City Pharmacy", nil, domain.PlatformAndroid)

	require.NoError(t, err)
	assert.Contains(t, resp.Links.Primary, "google.navigation:q=")
	assert.Contains(t, resp.Links.Primary, "City+Pharmacy")
	assert.Contains(t, resp.Links.Fallback, "google.com/maps/dir")
}

func TestRouteUseCase_MapsLinks_WebDefault(t *testing.T) {
	uc := newRouteUseCase(new(MockRoutingRepository))

	dest := domain.Coordinate{Lat: 40.7128, Lon: -74.0060}

	resp, err := uc.MapsLinks(dest, "", nil, domain.Platform("desktop"))

	require.NoError(t, err)
	assert.Equal(t, domain.PlatformWeb, resp.Platform)
	assert.Contains(t, resp.Links.Primary, "google.com/maps/dir")
	assert.Contains(t, resp.Links.OpenStreetMap, "mlat=")
}

func TestRouteUseCase_MapsLinks_InvalidDestination(t *testing.T) {
	uc := newRouteUseCase(new(MockRoutingRepository))

	_, err := uc.MapsLinks(domain.Coordinate{Lat: 95.0, Lon: 0.0}, "", nil, domain.PlatformWeb)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_COORDINATES", appErr.Code)
}
