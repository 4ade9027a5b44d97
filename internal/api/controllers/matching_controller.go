package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dasilari/internal/models/request_models"
	"dasilari/internal/services"
	"dasilari/pkg/utils"
)

type MatchingController struct {
	matchingService services.MatchingServiceInterface
}

func NewMatchingController(matchingService services.MatchingServiceInterface) *MatchingController {
	return &MatchingController{
		matchingService: matchingService,
	}
}

// FindTravelers godoc
// @Summary      Find compatible travelers
// @Description  Returns other travelers planning the same destination and time slot, scored by profile compatibility
// @Tags         matching
// @Produce      json
// @Param        user_id        query int    true  "Requesting user"
// @Param        destination_id query int    true  "Shared destination"
// @Param        time_slot      query string true  "morning, afternoon or evening"
// @Param        visit_date     query string false "Calendar date, 2006-01-02"
// @Success      200 {object} utils.APIResponse
// @Router       /api/matching/travelers [get]
func (m *MatchingController) FindTravelers(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil || userID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid or missing user_id")
		return
	}

	destinationID, err := strconv.Atoi(c.Query("destination_id"))
	if err != nil || destinationID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid or missing destination_id")
		return
	}

	timeSlot := c.Query("time_slot")
	if timeSlot == "" {
		utils.RespondError(c, http.StatusBadRequest, "time_slot is required")
		return
	}

	visitDate := c.Query("visit_date")

	travelers, err := m.matchingService.FindMatchingTravelers(c.Request.Context(), userID, destinationID, timeSlot, visitDate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, travelers, "Matching travelers fetched successfully")
}

// SuggestGroupItinerary godoc
// @Summary      Build a shared schedule for a group
// @Description  Votes per time slot across the group's saved plans; a structured error is returned when fewer than two travelers are given
// @Tags         matching
// @Accept       json
// @Produce      json
// @Param        request body request_models.GroupItineraryRequest true "Group members and target date"
// @Success      200 {object} utils.APIResponse
// @Router       /api/matching/group-itinerary [post]
func (m *MatchingController) SuggestGroupItinerary(c *gin.Context) {
	var request request_models.GroupItineraryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid group itinerary payload: "+err.Error())
		return
	}

	result, err := m.matchingService.SuggestGroupItinerary(c.Request.Context(), request.UserIDs, request.TargetDate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if result.Error != "" {
		utils.RespondErrorData(c, http.StatusBadRequest, result.Error, result)
		return
	}

	utils.RespondSuccess(c, result, "Group itinerary generated successfully")
}
