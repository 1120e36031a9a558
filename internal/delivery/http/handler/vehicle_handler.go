package handler

import (
	"github.com/gofiber/fiber/v2"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"github.com/route-optimizer/internal/pkg/utils"
	"github.com/route-optimizer/internal/usecase"
	"github.com/route-optimizer/internal/usecase/dto"
	"go.uber.org/zap"
)

// VehicleHandler - vehicle catalog endpoints
type VehicleHandler struct {
	vehicleUC *usecase.VehicleUseCase
	logger    *zap.Logger
}

func NewVehicleHandler(vehicleUC *usecase.VehicleUseCase, logger *zap.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleUC: vehicleUC,
		logger:    logger,
	}
}

// List godoc
// @Summary List vehicle profiles
// @Tags Vehicles
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.VehiclesResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/vehicles [get]
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	vehicles, err := h.vehicleUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.VehiclesResponse{Vehicles: vehicles}, &utils.Meta{
		Total: len(vehicles),
	})
}

// GetByID godoc
// @Summary Get one vehicle profile
// @Tags Vehicles
// @Produce json
// @Param id path string true "Vehicle profile ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/vehicles/{id} [get]
func (h *VehicleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	vehicle, err := h.vehicleUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, vehicle, nil)
}
