package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/pkg/utils"
	"github.com/route-optimizer/internal/pkg/validator"
	"github.com/route-optimizer/internal/usecase"
	"github.com/route-optimizer/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler - route computation endpoints
type RouteHandler struct {
	routeUC       *usecase.RouteUseCase
	costUC        *usecase.CostUseCase
	advisoryUC    *usecase.AdvisoryUseCase
	geocodeUC     *usecase.GeocodeUseCase
	environmentUC *usecase.EnvironmentUseCase
	vehicleUC     *usecase.VehicleUseCase
	logger        *zap.Logger
}

func NewRouteHandler(
	routeUC *usecase.RouteUseCase,
	costUC *usecase.CostUseCase,
	advisoryUC *usecase.AdvisoryUseCase,
	geocodeUC *usecase.GeocodeUseCase,
	environmentUC *usecase.EnvironmentUseCase,
	vehicleUC *usecase.VehicleUseCase,
	logger *zap.Logger,
) *RouteHandler {
	return &RouteHandler{
		routeUC:       routeUC,
		costUC:        costUC,
		advisoryUC:    advisoryUC,
		geocodeUC:     geocodeUC,
		environmentUC: environmentUC,
		vehicleUC:     vehicleUC,
		logger:        logger,
	}
}

// ComputeRoute godoc
// @Summary Compute an optimized route
// @Description Resolves a route between two points for the requested objective, with cost, emission, hazard and advisory data attached. Upstream routing failures are recovered with a synthesized fallback geometry.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.RouteRequest true "Route request"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes [post]
func (h *RouteHandler) ComputeRoute(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	ctx := c.Context()
	origin := domain.Coordinate{Lat: req.Origin.Lat, Lon: req.Origin.Lon}
	destination := domain.Coordinate{Lat: req.Destination.Lat, Lon: req.Destination.Lon}
	objective := domain.ParseObjective(req.Objective)

	vehicle, err := h.vehicleUC.Resolve(ctx, req.VehicleID)
	if err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.AcquireRoute(ctx, origin, destination, objective, vehicle, req.WantAlternatives())
	if err != nil {
		return utils.SendError(c, err)
	}

	originLabel := h.geocodeUC.ReverseLabel(ctx, origin)
	destinationLabel := h.geocodeUC.ReverseLabel(ctx, destination)
	env := h.environmentUC.Current(ctx)

	resp := dto.RouteResponse{
		Route:            route,
		Summary:          h.costUC.BuildSummary(route, vehicle, env, objective),
		Emission:         h.costUC.EstimateEmission(route.DistanceMeters, vehicle, req.AgeYears, req.LoadTons, env.TrafficMultiplier, objective),
		Alerts:           h.advisoryUC.Alerts(ctx, originLabel, destinationLabel),
		Advice:           h.advisoryUC.Advice(ctx, originLabel, destinationLabel),
		Environment:      env,
		OriginLabel:      originLabel,
		DestinationLabel: destinationLabel,
	}

	return utils.SendSuccess(c, resp, nil)
}

// Summaries godoc
// @Summary Compare all route objectives for one trip
// @Description Computes a route per objective (fastest, economic, eco, truck) and returns the derived cost/emission summary of each, in a stable order.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.SummariesRequest true "Trip endpoints"
// @Success 200 {object} utils.SuccessResponse{data=dto.SummariesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/routes/summaries [post]
func (h *RouteHandler) Summaries(c *fiber.Ctx) error {
	var req dto.SummariesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	ctx := c.Context()
	origin := domain.Coordinate{Lat: req.Origin.Lat, Lon: req.Origin.Lon}
	destination := domain.Coordinate{Lat: req.Destination.Lat, Lon: req.Destination.Lon}

	vehicle, err := h.vehicleUC.Resolve(ctx, req.VehicleID)
	if err != nil {
		return utils.SendError(c, err)
	}

	env := h.environmentUC.Current(ctx)

	objectives := []domain.RouteObjective{
		domain.ObjectiveFastest,
		domain.ObjectiveEconomic,
		domain.ObjectiveEco,
		domain.ObjectiveTruck,
	}

	summaries := make([]domain.RouteSummary, 0, len(objectives))
	for _, objective := range objectives {
		route, err := h.routeUC.AcquireRoute(ctx, origin, destination, objective, vehicle, true)
		if err != nil {
			return utils.SendError(c, err)
		}
		summaries = append(summaries, h.costUC.BuildSummary(route, vehicle, env, objective))
	}

	return utils.SendSuccess(c, dto.SummariesResponse{Summaries: summaries}, nil)
}
