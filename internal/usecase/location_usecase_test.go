package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	apperrors "github.com/asmit-inzanist/medic-all-sub000/internal/pkg/errors"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLocationUseCase(geocoder *MockGeocodingRepository, cache *MockCacheRepository) *usecase.LocationUseCase {
	return usecase.NewLocationUseCase(geocoder, cache, zap.NewNop(), 5*time.Second, 5*time.Minute, time.Hour)
}

func TestLocationUseCase_Resolve_Success(t *testing.T) {
	geocoder := new(MockGeocodingRepository)
	cache := new(MockCacheRepository)
	uc := newLocationUseCase(geocoder, cache)

	provider := &staticPositionProvider{pos: &domain.Position{Coords: domain.Coordinate{Lat: 40.7128, Lon: -74.0060}}}

	cache.On("GetAddress", mock.Anything, 40.7128, -74.0060).Return(nil, errors.New("cache miss"))
	geocoder.On("ReverseGeocode", mock.Anything, 40.7128, -74.0060).Return(&domain.Address{
		City:    "New York",
		State:   "New York",
		Country: "United States",
	}, nil)
	cache.On("SetAddress", mock.Anything, 40.7128, -74.0060, mock.Anything, time.Hour).Return(nil)

	location, err := uc.Resolve(context.Background(), provider)

	require.NoError(t, err)
	require.NotNil(t, location.Coords)
	assert.Equal(t, "New York, New York", location.FormattedAddress)
	assert.Equal(t, "New York", location.City)
	assert.Equal(t, domain.PermissionGranted, location.Permission)
	geocoder.AssertExpectations(t)
}

func TestLocationUseCase_Resolve_GeocodeFailureKeepsCoordinates(t *testing.T) {
	geocoder := new(MockGeocodingRepository)
	cache := new(MockCacheRepository)
	uc := newLocationUseCase(geocoder, cache)

	provider := &staticPositionProvider{pos: &domain.Position{Coords: domain.Coordinate{Lat: 51.5074, Lon: -0.1278}}}

	cache.On("GetAddress", mock.Anything, 51.5074, -0.1278).Return(nil, errors.New("cache miss"))
	geocoder.On("ReverseGeocode", mock.Anything, 51.5074, -0.1278).
		Return(nil, errors.New("upstream down"))

	location, err := uc.Resolve(context.Background(), provider)

	require.NoError(t, err)
	require.NotNil(t, location.Coords)
	assert.Equal(t, 51.5074, location.Coords.Lat)
	assert.Equal(t, "51.5074, -0.1278", location.FormattedAddress)
	assert.Equal(t, domain.PermissionGranted, location.Permission)
}

func TestLocationUseCase_Resolve_CacheHitSkipsGeocoder(t *testing.T) {
	geocoder := new(MockGeocodingRepository)
	cache := new(MockCacheRepository)
	uc := newLocationUseCase(geocoder, cache)

	provider := &staticPositionProvider{pos: &domain.Position{Coords: domain.Coordinate{Lat: 48.8566, Lon: 2.3522}}}

	cache.On("GetAddress", mock.Anything, 48.8566, 2.3522).Return(&domain.Address{
		City:  "Paris",
		State: "Ile-de-France",
	}, nil)

	location, err := uc.Resolve(context.Background(), provider)

	require.NoError(t, err)
	assert.Equal(t, "Paris, Ile-de-France", location.FormattedAddress)
	geocoder.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything, mock.Anything)
}

func TestLocationUseCase_Resolve_StalePositionRejected(t *testing.T) {
	geocoder := new(MockGeocodingRepository)
	cache := new(MockCacheRepository)
	uc := newLocationUseCase(geocoder, cache)

	provider := &staticPositionProvider{pos: &domain.Position{
		Coords:     domain.Coordinate{Lat: 40.7128, Lon: -74.0060},
		ReportedAt: time.Now().Add(-10 * time.Minute),
	}}

	location, err := uc.Resolve(context.Background(), provider)

	require.Error(t, err)
	assert.Nil(t, location)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "POSITION_UNAVAILABLE", appErr.Code)
	assert.Equal(t, "stale_position", appErr.Details["reason"])
	geocoder.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything, mock.Anything)
}

func TestLocationUseCase_Resolve_RecentPositionAccepted(t *testing.T) {
	geocoder := new(MockGeocodingRepository)
	cache := new(MockCacheRepository)
	uc := newLocationUseCase(geocoder, cache)

	provider := &staticPositionProvider{pos: &domain.Position{
		Coords:     domain.Coordinate{Lat: 40.7128, Lon: -74.0060},
		ReportedAt: time.Now().Add(-time.Minute),
	}}

	cache.On("GetAddress", mock.Anything, 40.7128, -74.0060).Return(&domain.Address{
		City:  "New York",
		State: "New York",
	}, nil)

	location, err := uc.Resolve(context.Background(), provider)

	require.NoError(t, err)
	assert.Equal(t, "New York, New York", location.FormattedAddress)
}

func TestLocationUseCase_Resolve_PermissionDenied(t *testing.T) {
	geocoder := new(MockGeocodingRepository)
	cache := new(MockCacheRepository)
	uc := newLocationUseCase(geocoder, cache)

	provider := &staticPositionProvider{err: usecase.ErrPositionPermissionDenied}

	location, err := uc.Resolve(context.Background(), provider)

	require.Error(t, err)
	assert.Nil(t, location)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PERMISSION_DENIED", appErr.Code)
	assert.Equal(t, string(domain.PermissionDenied), appErr.Details["permission"])
}

func TestLocationUseCase_Resolve_Timeout(t *testing.T) {
	geocoder := new(MockGeocodingRepository)
	cache := new(MockCacheRepository)
	uc := newLocationUseCase(geocoder, cache)

	provider := &staticPositionProvider{err: usecase.ErrPositionTimeout}

	_, err := uc.Resolve(context.Background(), provider)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LOCATION_TIMEOUT", appErr.Code)
}

func TestLocationUseCase_Resolve_NilProviderUnsupported(t *testing.T) {
	geocoder := new(MockGeocodingRepository)
	cache := new(MockCacheRepository)
	uc := newLocationUseCase(geocoder, cache)

	_, err := uc.Resolve(context.Background(), nil)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "UNSUPPORTED_ENVIRONMENT", appErr.Code)
}

func TestLocationUseCase_ReverseGeocode_InvalidCoordinates(t *testing.T) {
	geocoder := new(MockGeocodingRepository)
	cache := new(MockCacheRepository)
	uc := newLocationUseCase(geocoder, cache)

	_, err := uc.ReverseGeocode(context.Background(), 91.0, 0.0)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_COORDINATES", appErr.Code)
	geocoder.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything, mock.Anything)
}

func TestLocationUseCase_ReverseGeocode_UpstreamFailure(t *testing.T) {
	geocoder := new(MockGeocodingRepository)
	cache := new(MockCacheRepository)
	uc := newLocationUseCase(geocoder, cache)

	cache.On("GetAddress", mock.Anything, 10.0, 10.0).Return(nil, errors.New("cache miss"))
	geocoder.On("ReverseGeocode", mock.Anything, 10.0, 10.0).Return(nil, errors.New("timeout"))

	_, err := uc.ReverseGeocode(context.Background(), 10.0, 10.0)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NETWORK_FAILURE", appErr.Code)
}
