package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/navigation"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"github.com/route-optimizer/internal/pkg/utils"
	"github.com/route-optimizer/internal/pkg/validator"
	"github.com/route-optimizer/internal/usecase"
	"github.com/route-optimizer/internal/usecase/dto"
	"go.uber.org/zap"
)

// NavigationHandler - simulated navigation endpoints
type NavigationHandler struct {
	manager    *navigation.Manager
	routeUC    *usecase.RouteUseCase
	advisoryUC *usecase.AdvisoryUseCase
	geocodeUC  *usecase.GeocodeUseCase
	vehicleUC  *usecase.VehicleUseCase
	logger     *zap.Logger
}

func NewNavigationHandler(
	manager *navigation.Manager,
	routeUC *usecase.RouteUseCase,
	advisoryUC *usecase.AdvisoryUseCase,
	geocodeUC *usecase.GeocodeUseCase,
	vehicleUC *usecase.VehicleUseCase,
	logger *zap.Logger,
) *NavigationHandler {
	return &NavigationHandler{
		manager:    manager,
		routeUC:    routeUC,
		advisoryUC: advisoryUC,
		geocodeUC:  geocodeUC,
		vehicleUC:  vehicleUC,
		logger:     logger,
	}
}

// Start godoc
// @Summary Start a simulated navigation run
// @Description Computes a route, binds its hazard alerts and starts the tick-based simulation. Any previously active session is stopped: a new route always means a fresh run.
// @Tags Navigation
// @Accept json
// @Produce json
// @Param request body dto.StartNavigationRequest true "Trip to navigate"
// @Success 200 {object} utils.SuccessResponse{data=dto.NavigationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/navigation/start [post]
func (h *NavigationHandler) Start(c *fiber.Ctx) error {
	var req dto.StartNavigationRequest
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

	route, err := h.routeUC.AcquireRoute(ctx, origin, destination, domain.ParseObjective(req.Objective), vehicle, true)
	if err != nil {
		return utils.SendError(c, err)
	}

	originLabel := h.geocodeUC.ReverseLabel(ctx, origin)
	destinationLabel := h.geocodeUC.ReverseLabel(ctx, destination)
	alerts := h.advisoryUC.Alerts(ctx, originLabel, destinationLabel)

	// The runner outlives this request; it stops on completion,
	// explicit stop, or server shutdown.
	id, state, err := h.manager.Start(c.UserContext(), route, alerts)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NavigationResponse{SessionID: id, State: state}, nil)
}

// Get godoc
// @Summary Get the state of a navigation session
// @Tags Navigation
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.NavigationResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/navigation/{id} [get]
func (h *NavigationHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	state, err := h.manager.Get(id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NavigationResponse{SessionID: id, State: state}, nil)
}

// Stop godoc
// @Summary Stop a navigation session
// @Description Tears down the session's tick loop immediately; a tick in flight is discarded, never applied after the stop.
// @Tags Navigation
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/navigation/{id} [delete]
func (h *NavigationHandler) Stop(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := h.manager.Stop(id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"stopped": true}, nil)
}
