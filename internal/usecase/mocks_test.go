package usecase_test

import (
	"context"
	"time"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockGeocodingRepository is a mock of GeocodingRepository
type MockGeocodingRepository struct {
	mock.Mock
}

func (m *MockGeocodingRepository) ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.Address, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

func (m *MockGeocodingRepository) Geocode(ctx context.Context, query string) (*domain.Coordinate, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coordinate), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetAddress(ctx context.Context, lat, lon float64) (*domain.Address, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

func (m *MockCacheRepository) SetAddress(ctx context.Context, lat, lon float64, addr *domain.Address, ttl time.Duration) error {
	args := m.Called(ctx, lat, lon, addr, ttl)
	return args.Error(0)
}

// MockPOIRepository is a mock of POIRepository
type MockPOIRepository struct {
	mock.Mock
}

func (m *MockPOIRepository) SearchNearby(
	ctx context.Context,
	center domain.Coordinate,
	radiusKm float64,
	category domain.FacilityCategory,
) ([]domain.PointOfInterest, error) {
	args := m.Called(ctx, center, radiusKm, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PointOfInterest), args.Error(1)
}

// MockRoutingRepository is a mock of RoutingRepository
type MockRoutingRepository struct {
	mock.Mock
}

func (m *MockRoutingRepository) GetRoute(ctx context.Context, from, to domain.Coordinate) (*domain.Route, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

// MockInventoryRepository is a mock of InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) SearchListings(
	ctx context.Context,
	filter domain.InventoryFilter,
	pharmacyIDs []uuid.UUID,
) ([]domain.InventoryListing, error) {
	args := m.Called(ctx, filter, pharmacyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryListing), args.Error(1)
}

// MockPharmacyRepository is a mock of PharmacyRepository
type MockPharmacyRepository struct {
	mock.Mock
}

func (m *MockPharmacyRepository) GetAll(ctx context.Context) ([]domain.Pharmacy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pharmacy), args.Error(1)
}

func (m *MockPharmacyRepository) ListWithoutCoordinates(ctx context.Context, limit int) ([]domain.Pharmacy, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pharmacy), args.Error(1)
}

func (m *MockPharmacyRepository) UpdateCoordinates(ctx context.Context, id uuid.UUID, lat, lon float64) error {
	args := m.Called(ctx, id, lat, lon)
	return args.Error(0)
}

// staticPositionProvider returns a fixed position or error.
type staticPositionProvider struct {
	pos *domain.Position
	err error
}

func (p *staticPositionProvider) CurrentPosition(ctx context.Context) (*domain.Position, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.pos, nil
}
