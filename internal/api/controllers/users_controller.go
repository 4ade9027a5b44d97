package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dasilari/internal/models/request_models"
	"dasilari/internal/services"
	"dasilari/pkg/utils"
)

type UsersController struct {
	userService services.UserServiceInterface
}

func NewUsersController(userService services.UserServiceInterface) *UsersController {
	return &UsersController{
		userService: userService,
	}
}

// SubmitSurvey godoc
// @Summary      Save a traveler's onboarding survey
// @Description  Persists the traveler profile used by chat, itinerary and matching
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body request_models.SurveyRequest true "Survey answers"
// @Success      201 {object} utils.APIResponse
// @Router       /api/survey [post]
func (u *UsersController) SubmitSurvey(c *gin.Context) {
	var request request_models.SurveyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid survey payload: "+err.Error())
		return
	}

	result, err := u.userService.SaveSurvey(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Survey data saved successfully")
}

func (u *UsersController) GetProfile(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || userID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	profile, err := u.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "User profile fetched successfully")
}
