package handler

import (
	"context"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/errors"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/utils"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/validator"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocationHandler serves location resolution and reverse geocoding.
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

func NewLocationHandler(locationUC *usecase.LocationUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		logger:     logger,
	}
}

// clientPosition adapts the client-reported geolocation outcome to the
// position provider port. The browser or mobile shell performs the actual
// acquisition; the request carries either coordinates or the failure kind.
type clientPosition struct {
	pos *domain.Position
	err error
}

func (p *clientPosition) CurrentPosition(ctx context.Context) (*domain.Position, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.pos, nil
}

func positionFromRequest(req dto.ResolveLocationRequest) usecase.PositionProvider {
	switch req.ErrorKind {
	case "permission_denied":
		return &clientPosition{err: usecase.ErrPositionPermissionDenied}
	case "position_unavailable":
		return &clientPosition{err: usecase.ErrPositionUnavailable}
	case "timeout":
		return &clientPosition{err: usecase.ErrPositionTimeout}
	case "unsupported":
		return nil
	}
	if req.Lat == nil || req.Lon == nil {
		return &clientPosition{err: usecase.ErrPositionUnavailable}
	}
	pos := &domain.Position{Coords: domain.Coordinate{Lat: *req.Lat, Lon: *req.Lon}}
	if req.ReportedAt != nil {
		pos.ReportedAt = *req.ReportedAt
	}
	return &clientPosition{pos: pos}
}

// Resolve godoc
// @Summary Resolve the user's location
// @Description Turns the client-reported geolocation outcome into a resolved location snapshot with a human-readable place label. A reverse-geocoding failure degrades to raw coordinates instead of failing the call.
// @Tags Location
// @Accept json
// @Produce json
// @Param request body dto.ResolveLocationRequest true "Geolocation outcome reported by the client"
// @Success 200 {object} utils.SuccessResponse{data=domain.ResolvedLocation}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 408 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/location/resolve [post]
func (h *LocationHandler) Resolve(c *fiber.Ctx) error {
	var req dto.ResolveLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.locationUC.Resolve(c.Context(), positionFromRequest(req))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ReverseGeocode godoc
// @Summary Reverse geocode coordinates
// @Description Converts a coordinate pair into a structured address (city, state, country) with a short display label.
// @Tags Location
// @Accept json
// @Produce json
// @Param request body dto.ReverseGeocodeRequest true "Point coordinates"
// @Success 200 {object} utils.SuccessResponse{data=domain.Address}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/reverse-geocode [post]
func (h *LocationHandler) ReverseGeocode(c *fiber.Ctx) error {
	var req dto.ReverseGeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.locationUC.ReverseGeocode(c.Context(), req.Lat, req.Lon)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
