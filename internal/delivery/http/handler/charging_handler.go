package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/route-optimizer/internal/domain"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"github.com/route-optimizer/internal/pkg/geo"
	"github.com/route-optimizer/internal/pkg/utils"
	"github.com/route-optimizer/internal/pkg/validator"
	"github.com/route-optimizer/internal/usecase"
	"github.com/route-optimizer/internal/usecase/dto"
	"go.uber.org/zap"
)

// ChargingHandler - EV charging endpoints
type ChargingHandler struct {
	chargingUC *usecase.ChargingUseCase
	routeUC    *usecase.RouteUseCase
	vehicleUC  *usecase.VehicleUseCase
	logger     *zap.Logger
}

func NewChargingHandler(
	chargingUC *usecase.ChargingUseCase,
	routeUC *usecase.RouteUseCase,
	vehicleUC *usecase.VehicleUseCase,
	logger *zap.Logger,
) *ChargingHandler {
	return &ChargingHandler{
		chargingUC: chargingUC,
		routeUC:    routeUC,
		vehicleUC:  vehicleUC,
		logger:     logger,
	}
}

// Plan godoc
// @Summary Estimate charging need and build a schedule advisory
// @Description Projects the energy demand of a trip and applies the rule-based charging schedule: pre-trip vs destination charging, off-peak windows and the 80% charge cap.
// @Tags Charging
// @Accept json
// @Produce json
// @Param request body dto.ChargingPlanRequest true "Trip and battery state"
// @Success 200 {object} utils.SuccessResponse{data=dto.ChargingPlanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/charging/plan [post]
func (h *ChargingHandler) Plan(c *fiber.Ctx) error {
	var req dto.ChargingPlanRequest
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

	route, err := h.routeUC.AcquireRoute(ctx, origin, destination, domain.ObjectiveEco, vehicle, false)
	if err != nil {
		return utils.SendError(c, err)
	}

	departure := time.Now()
	if req.Departure != nil {
		departure = *req.Departure
	}

	need := h.chargingUC.EstimateChargingNeed(route.DistanceKm(), vehicle, req.CurrentBatteryPercent)
	plan, err := h.chargingUC.PlanCharging(ctx, route, vehicle, departure)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ChargingPlanResponse{Need: need, Plan: plan}, nil)
}

// Stations godoc
// @Summary List charging stations near a point
// @Tags Charging
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param limit query int false "Maximum number of stations" default(5)
// @Success 200 {object} utils.SuccessResponse{data=dto.StationsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/charging/stations [get]
func (h *ChargingHandler) Stations(c *fiber.Ctx) error {
	point := domain.Coordinate{
		Lat: c.QueryFloat("lat"),
		Lon: c.QueryFloat("lon"),
	}
	limit := c.QueryInt("limit", 5)

	if !geo.ValidateCoordinate(point) {
		return utils.SendError(c, apperrors.ErrInvalidCoordinates)
	}

	stations, err := h.chargingUC.NearestStations(c.Context(), point, limit)
	if err != nil {
		return utils.SendError(c, apperrors.ErrDatabaseError)
	}

	return utils.SendSuccess(c, dto.StationsResponse{Stations: stations}, &utils.Meta{
		Total: len(stations),
	})
}
