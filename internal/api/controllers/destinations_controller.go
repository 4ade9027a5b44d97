package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dasilari/internal/repositories"
	"dasilari/internal/services"
	"dasilari/pkg/utils"
)

type DestinationsController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationsController(destinationService services.DestinationServiceInterface) *DestinationsController {
	return &DestinationsController{
		destinationService: destinationService,
	}
}

// ListDestinations godoc
// @Summary      List catalog destinations
// @Description  Optional filters: category (local/famous), photo_spot (true/false), max_cost
// @Tags         destinations
// @Produce      json
// @Param        category  query string  false "Category filter"
// @Param        photo_spot query bool   false "Photo spot filter"
// @Param        max_cost  query number false "Maximum estimated cost"
// @Success      200 {object} utils.APIResponse
// @Router       /api/destinations [get]
func (d *DestinationsController) ListDestinations(c *gin.Context) {
	var filter repositories.DestinationFilter

	filter.Category = c.Query("category")

	if raw := c.Query("photo_spot"); raw != "" {
		photoSpot, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid photo_spot value (must be true or false)")
			return
		}
		filter.PhotoSpot = &photoSpot
	}

	if raw := c.Query("max_cost"); raw != "" {
		maxCost, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxCost < 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid max_cost value")
			return
		}
		filter.MaxCost = &maxCost
	}

	destinations, err := d.destinationService.List(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

func (d *DestinationsController) GetDestinationById(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid destination ID")
		return
	}

	destination, err := d.destinationService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}

func (d *DestinationsController) GetPhotoSpots(c *gin.Context) {
	spots, err := d.destinationService.PhotoSpots(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, spots, "Photo spots fetched successfully")
}

func (d *DestinationsController) SeedDestinations(c *gin.Context) {
	result, err := d.destinationService.Seed(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, result.Message)
}
