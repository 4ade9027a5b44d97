package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dasilari/internal/models/request_models"
	"dasilari/internal/models/response_models"
	"dasilari/internal/services"
	"dasilari/pkg/utils"
)

type stubUserService struct {
	saveSurvey func(request request_models.SurveyRequest) (*response_models.SurveyResponse, error)
	getProfile func(userID int) (*response_models.UserResponse, error)
}

var _ services.UserServiceInterface = (*stubUserService)(nil)

func (s *stubUserService) SaveSurvey(_ context.Context, request request_models.SurveyRequest) (*response_models.SurveyResponse, error) {
	return s.saveSurvey(request)
}

func (s *stubUserService) GetProfile(_ context.Context, userID int) (*response_models.UserResponse, error) {
	return s.getProfile(userID)
}

func userTestRouter(service services.UserServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewUsersController(service)
	r := gin.New()
	r.POST("/api/survey", controller.SubmitSurvey)
	r.GET("/api/users/:userId", controller.GetProfile)
	return r
}

func TestSubmitSurvey(t *testing.T) {
	service := &stubUserService{
		saveSurvey: func(request request_models.SurveyRequest) (*response_models.SurveyResponse, error) {
			assert.Equal(t, "An", request.Name)
			return &response_models.SurveyResponse{UserID: 7, Message: "Survey data saved successfully"}, nil
		},
	}
	router := userTestRouter(service)

	body := `{"name":"An","personality_type":"introvert","travel_style":"solo","transport_type":"bicycle"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/survey", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
}

func TestSubmitSurveyRejectsBadPersonality(t *testing.T) {
	router := userTestRouter(&stubUserService{})

	body := `{"name":"An","personality_type":"ambivert","travel_style":"solo","transport_type":"bicycle"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/survey", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProfileNotFound(t *testing.T) {
	service := &stubUserService{
		getProfile: func(userID int) (*response_models.UserResponse, error) {
			return nil, utils.ErrUserNotFound
		},
	}
	router := userTestRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProfileInvalidID(t *testing.T) {
	router := userTestRouter(&stubUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
