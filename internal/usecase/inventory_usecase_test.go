package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	apperrors "github.com/asmit-inzanist/medic-all-sub000/internal/pkg/errors"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newInventoryUseCase(inventoryRepo *MockInventoryRepository, pharmacyRepo *MockPharmacyRepository) *usecase.InventoryUseCase {
	return usecase.NewInventoryUseCase(inventoryRepo, pharmacyRepo, zap.NewNop())
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func TestInventoryUseCase_Search_WithoutLocation(t *testing.T) {
	inventoryRepo := new(MockInventoryRepository)
	pharmacyRepo := new(MockPharmacyRepository)
	uc := newInventoryUseCase(inventoryRepo, pharmacyRepo)

	listings := []domain.InventoryListing{
		{MedicineName: "Paracetamol", Price: 4.50},
		{MedicineName: "Ibuprofen", Price: 3.20},
	}
	inventoryRepo.On("SearchListings", mock.Anything, mock.Anything, []uuid.UUID(nil)).
		Return(listings, nil)

	resp, err := uc.Search(context.Background(), dto.InventorySearchRequest{Text: "pain"})

	require.NoError(t, err)
	assert.Len(t, resp.Listings, 2)
	pharmacyRepo.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestInventoryUseCase_Search_DistanceFilterAndAttach(t *testing.T) {
	inventoryRepo := new(MockInventoryRepository)
	pharmacyRepo := new(MockPharmacyRepository)
	uc := newInventoryUseCase(inventoryRepo, pharmacyRepo)

	nearID := uuid.New()
	farID := uuid.New()
	noCoordsID := uuid.New()

	pharmacies := []domain.Pharmacy{
		// ~111 km north of the user, outside the default 10 km radius.
		{ID: farID, Name: "Far Pharmacy", Lat: floatPtr(41.0), Lon: floatPtr(-74.0)},
		{ID: nearID, Name: "Near Pharmacy", Lat: floatPtr(40.01), Lon: floatPtr(-74.0)},
		{ID: noCoordsID, Name: "Unmapped Pharmacy"},
	}
	pharmacyRepo.On("GetAll", mock.Anything).Return(pharmacies, nil)

	inventoryRepo.On("SearchListings", mock.Anything, mock.Anything, []uuid.UUID{nearID}).
		Return([]domain.InventoryListing{
			{MedicineName: "Paracetamol", PharmacyID: nearID, Price: 4.50},
		}, nil)

	resp, err := uc.Search(context.Background(), dto.InventorySearchRequest{
		Text: "paracetamol",
		Lat:  floatPtr(40.0),
		Lon:  floatPtr(-74.0),
	})

	require.NoError(t, err)
	require.Len(t, resp.Listings, 1)
	require.NotNil(t, resp.Listings[0].DistanceKm)
	assert.InDelta(t, 1.11, *resp.Listings[0].DistanceKm, 0.05)
	inventoryRepo.AssertExpectations(t)
}

func TestInventoryUseCase_Search_NoPharmacyInRangeSkipsInventoryQuery(t *testing.T) {
	inventoryRepo := new(MockInventoryRepository)
	pharmacyRepo := new(MockPharmacyRepository)
	uc := newInventoryUseCase(inventoryRepo, pharmacyRepo)

	farID := uuid.New()
	pharmacyRepo.On("GetAll", mock.Anything).Return([]domain.Pharmacy{
		{ID: farID, Name: "Far Pharmacy", Lat: floatPtr(50.0), Lon: floatPtr(10.0)},
	}, nil)

	resp, err := uc.Search(context.Background(), dto.InventorySearchRequest{
		Lat: floatPtr(40.0),
		Lon: floatPtr(-74.0),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Listings)
	assert.Equal(t, 0, resp.Total)
	inventoryRepo.AssertNotCalled(t, "SearchListings", mock.Anything, mock.Anything, mock.Anything)
}

func TestInventoryUseCase_Search_SortPriceAsc(t *testing.T) {
	inventoryRepo := new(MockInventoryRepository)
	pharmacyRepo := new(MockPharmacyRepository)
	uc := newInventoryUseCase(inventoryRepo, pharmacyRepo)

	inventoryRepo.On("SearchListings", mock.Anything, mock.Anything, []uuid.UUID(nil)).
		Return([]domain.InventoryListing{
			{MedicineName: "C", Price: 9.00},
			{MedicineName: "A", Price: 2.00},
			{MedicineName: "B", Price: 5.00},
		}, nil)

	resp, err := uc.Search(context.Background(), dto.InventorySearchRequest{Sort: "price_asc"})

	require.NoError(t, err)
	require.Len(t, resp.Listings, 3)
	assert.Equal(t, "A", resp.Listings[0].MedicineName)
	assert.Equal(t, "B", resp.Listings[1].MedicineName)
	assert.Equal(t, "C", resp.Listings[2].MedicineName)
}

func TestInventoryUseCase_Search_SortRatingNilLast(t *testing.T) {
	inventoryRepo := new(MockInventoryRepository)
	pharmacyRepo := new(MockPharmacyRepository)
	uc := newInventoryUseCase(inventoryRepo, pharmacyRepo)

	inventoryRepo.On("SearchListings", mock.Anything, mock.Anything, []uuid.UUID(nil)).
		Return([]domain.InventoryListing{
			{MedicineName: "Unrated"},
			{MedicineName: "Good", Rating: floatPtr(4.2)},
			{MedicineName: "Best", Rating: floatPtr(4.9)},
		}, nil)

	resp, err := uc.Search(context.Background(), dto.InventorySearchRequest{Sort: "rating"})

	require.NoError(t, err)
	require.Len(t, resp.Listings, 3)
	assert.Equal(t, "Best", resp.Listings[0].MedicineName)
	assert.Equal(t, "Good", resp.Listings[1].MedicineName)
	assert.Equal(t, "Unrated", resp.Listings[2].MedicineName)
}

func TestInventoryUseCase_Search_SortDeliveryTimeLexicographic(t *testing.T) {
	inventoryRepo := new(MockInventoryRepository)
	pharmacyRepo := new(MockPharmacyRepository)
	uc := newInventoryUseCase(inventoryRepo, pharmacyRepo)

	inventoryRepo.On("SearchListings", mock.Anything, mock.Anything, []uuid.UUID(nil)).
		Return([]domain.InventoryListing{
			{MedicineName: "Slow", DeliveryTime: strPtr("45-60 min")},
			{MedicineName: "Fast", DeliveryTime: strPtr("15-20 min")},
			{MedicineName: "NoEstimate"},
		}, nil)

	resp, err := uc.Search(context.Background(), dto.InventorySearchRequest{Sort: "delivery_time"})

	require.NoError(t, err)
	require.Len(t, resp.Listings, 3)
	assert.Equal(t, "Fast", resp.Listings[0].MedicineName)
	assert.Equal(t, "Slow", resp.Listings[1].MedicineName)
	assert.Equal(t, "NoEstimate", resp.Listings[2].MedicineName)
}

func TestInventoryUseCase_Search_InvalidCoordinates(t *testing.T) {
	inventoryRepo := new(MockInventoryRepository)
	pharmacyRepo := new(MockPharmacyRepository)
	uc := newInventoryUseCase(inventoryRepo, pharmacyRepo)

	_, err := uc.Search(context.Background(), dto.InventorySearchRequest{
		Lat: floatPtr(120.0),
		Lon: floatPtr(0.0),
	})

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_COORDINATES", appErr.Code)
}

func TestInventoryUseCase_Search_RepoErrorBecomesQueryFailed(t *testing.T) {
	inventoryRepo := new(MockInventoryRepository)
	pharmacyRepo := new(MockPharmacyRepository)
	uc := newInventoryUseCase(inventoryRepo, pharmacyRepo)

	inventoryRepo.On("SearchListings", mock.Anything, mock.Anything, []uuid.UUID(nil)).
		Return(nil, errors.New("db down"))

	_, err := uc.Search(context.Background(), dto.InventorySearchRequest{Text: "aspirin"})

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "QUERY_FAILED", appErr.Code)
}
