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

// RouteHandler serves route computation and external maps hand-off links.
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// GetRoute godoc
// @Summary Compute a route between two points
// @Description Requests turn-by-turn directions from the routing service. When the service is unavailable the response carries a straight-line estimate with an advisory notice instead of an error.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.RouteRequest true "Route endpoints"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/routes [post]
func (h *RouteHandler) GetRoute(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.routeUC.GetRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	var meta *utils.Meta
	if result.Notice != "" {
		meta = &utils.Meta{Notice: result.Notice}
	}

	return utils.SendSuccess(c, result, meta)
}

// MapsLinks godoc
// @Summary Build external maps hand-off links
// @Description Builds the URLs a client should try, in order, to open the destination in a native maps application. The strategy depends on the reported platform.
// @Tags Routes
// @Produce json
// @Param lat query number true "Destination latitude"
// @Param lon query number true "Destination longitude"
// @Param label query string false "Destination label shown in the maps app"
// @Param from_lat query number false "Origin latitude"
// @Param from_lon query number false "Origin longitude"
// @Param platform query string false "Client platform (ios, android, web)" default(web)
// @Success 200 {object} utils.SuccessResponse{data=dto.MapsLinksResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/routes/maps-links [get]
func (h *RouteHandler) MapsLinks(c *fiber.Ctx) error {
	lat := c.QueryFloat("lat")
	lon := c.QueryFloat("lon")
	label := c.Query("label")
	platform := domain.ParsePlatform(c.Query("platform", "web"))

	var origin *domain.Coordinate
	if c.Query("from_lat") != "" && c.Query("from_lon") != "" {
		origin = &domain.Coordinate{
			Lat: c.QueryFloat("from_lat"),
			Lon: c.QueryFloat("from_lon"),
		}
	}

	result, err := h.routeUC.MapsLinks(domain.Coordinate{Lat: lat, Lon: lon}, label, origin, platform)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
