package handler

import (
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/errors"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/utils"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/validator"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InventoryHandler serves medicine inventory searches.
type InventoryHandler struct {
	inventoryUC *usecase.InventoryUseCase
	logger      *zap.Logger
}

func NewInventoryHandler(inventoryUC *usecase.InventoryUseCase, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: inventoryUC,
		logger:      logger,
	}
}

// Search godoc
// @Summary Search medicine availability across pharmacies
// @Description Joins the medicine catalog against per-pharmacy stock. With a user location, pharmacies outside the distance limit are excluded and each listing carries its pharmacy distance. Results use a single stable sort key.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.InventorySearchRequest true "Search filters"
// @Success 200 {object} utils.SuccessResponse{data=dto.InventorySearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/medicines/search [post]
func (h *InventoryHandler) Search(c *fiber.Ctx) error {
	var req dto.InventorySearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.inventoryUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
