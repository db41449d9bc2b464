package handler

import (
	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/errors"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/utils"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/validator"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NearbyHandler serves nearby facility searches.
type NearbyHandler struct {
	nearbyUC *usecase.NearbyUseCase
	logger   *zap.Logger
}

func NewNearbyHandler(nearbyUC *usecase.NearbyUseCase, logger *zap.Logger) *NearbyHandler {
	return &NearbyHandler{
		nearbyUC: nearbyUC,
		logger:   logger,
	}
}

// SearchPharmacies godoc
// @Summary Find pharmacies around a point
// @Description Queries public map data for pharmacies within the given radius, ordered ascending by straight-line distance.
// @Tags Nearby
// @Accept json
// @Produce json
// @Param request body dto.NearbySearchRequest true "Search center and radius"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearbyResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/nearby/pharmacies [post]
func (h *NearbyHandler) SearchPharmacies(c *fiber.Ctx) error {
	return h.search(c, domain.CategoryPharmacy)
}

// SearchHospitals godoc
// @Summary Find hospitals and clinics around a point
// @Description Queries public map data for hospitals and clinics within the given radius, ordered ascending by straight-line distance. Records carry emergency capability and specialty tags when known.
// @Tags Nearby
// @Accept json
// @Produce json
// @Param request body dto.NearbySearchRequest true "Search center and radius"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearbyResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/nearby/hospitals [post]
func (h *NearbyHandler) SearchHospitals(c *fiber.Ctx) error {
	return h.search(c, domain.CategoryHospital)
}

func (h *NearbyHandler) search(c *fiber.Ctx, category domain.FacilityCategory) error {
	var req dto.NearbySearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.nearbyUC.SearchNearby(c.Context(), req, category)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
