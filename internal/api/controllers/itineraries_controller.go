package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dasilari/internal/models/request_models"
	"dasilari/internal/services"
	"dasilari/pkg/utils"
)

type ItinerariesController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItinerariesController(itineraryService services.ItineraryServiceInterface) *ItinerariesController {
	return &ItinerariesController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary      Generate and save a day itinerary
// @Description  Builds an AI day plan over the selected destinations and saves one row per stop
// @Tags         itineraries
// @Accept       json
// @Produce      json
// @Param        request body request_models.GenerateItineraryRequest true "Generation input"
// @Success      201 {object} utils.APIResponse
// @Router       /api/itineraries/generate [post]
func (i *ItinerariesController) GenerateItinerary(c *gin.Context) {
	var request request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary payload: "+err.Error())
		return
	}

	result, err := i.itineraryService.Generate(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, result.Message)
}

func (i *ItinerariesController) GetUserItineraries(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || userID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	visitDate := c.Query("visit_date")

	result, err := i.itineraryService.ListByUser(c.Request.Context(), userID, visitDate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itineraries fetched successfully")
}

func (i *ItinerariesController) DeleteItinerary(c *gin.Context) {
	itineraryID, err := strconv.Atoi(c.Param("itineraryId"))
	if err != nil || itineraryID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	if err := i.itineraryService.Delete(c.Request.Context(), itineraryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}
