package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-optimizer/internal/domain"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"github.com/route-optimizer/internal/pkg/utils"
	"github.com/route-optimizer/internal/pkg/validator"
	"github.com/route-optimizer/internal/usecase"
	"github.com/route-optimizer/internal/usecase/dto"
	"go.uber.org/zap"
)

// GeocodeHandler - geocoding endpoints
type GeocodeHandler struct {
	geocodeUC *usecase.GeocodeUseCase
	logger    *zap.Logger
}

func NewGeocodeHandler(geocodeUC *usecase.GeocodeUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: geocodeUC,
		logger:    logger,
	}
}

// Search godoc
// @Summary Geocode a free-text query
// @Description Resolves a place name or address to candidate coordinates. Results are cached.
// @Tags Geocoding
// @Accept json
// @Produce json
// @Param q query string true "Search query (minimum 2 characters)"
// @Param limit query int false "Maximum number of results" default(5)
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/geocode/search [get]
func (h *GeocodeHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	limit := c.QueryInt("limit", 5)

	if len(query) < 2 {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	places, err := h.geocodeUC.Search(c.Context(), query, limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.SearchResponse{Places: places, Total: len(places)}, &utils.Meta{
		Total: len(places),
	})
}

// Reverse godoc
// @Summary Reverse geocode a coordinate
// @Description Resolves a coordinate to a display name. Falls back to the formatted coordinate string when the geocoder is unavailable, so this endpoint always succeeds for valid input.
// @Tags Geocoding
// @Accept json
// @Produce json
// @Param request body dto.ReverseGeocodeRequest true "Coordinate"
// @Success 200 {object} utils.SuccessResponse{data=dto.ReverseGeocodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/geocode/reverse [post]
func (h *GeocodeHandler) Reverse(c *fiber.Ctx) error {
	var req dto.ReverseGeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	label := h.geocodeUC.ReverseLabel(c.Context(), domain.Coordinate{Lat: req.Lat, Lon: req.Lon})

	return utils.SendSuccess(c, dto.ReverseGeocodeResponse{Label: label}, nil)
}
