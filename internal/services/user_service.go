package services

import (
	"context"
	"log"

	"dasilari/internal/models/db_models"
	"dasilari/internal/models/request_models"
	"dasilari/internal/models/response_models"
	"dasilari/internal/repositories"
	"dasilari/pkg/utils"
)

type UserServiceInterface interface {
	SaveSurvey(ctx context.Context, request request_models.SurveyRequest) (*response_models.SurveyResponse, error)
	GetProfile(ctx context.Context, userID int) (*response_models.UserResponse, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (u *UserService) SaveSurvey(ctx context.Context, request request_models.SurveyRequest) (*response_models.SurveyResponse, error) {
	newUser := &db_models.User{
		Name:            request.Name,
		PersonalityType: request.PersonalityType,
		TravelStyle:     request.TravelStyle,
		TransportType:   request.TransportType,
		HasItinerary:    request.HasItinerary,
	}

	userID, err := u.userRepo.Create(ctx, newUser)
	if err != nil {
		log.Printf("Error saving survey: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SurveyResponse{
		UserID:  userID,
		Message: "Survey data saved successfully",
	}, nil
}

func (u *UserService) GetProfile(ctx context.Context, userID int) (*response_models.UserResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Printf("Error fetching user %d: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	return &response_models.UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		PersonalityType: user.PersonalityType,
		TravelStyle:     user.TravelStyle,
		TransportType:   user.TransportType,
		HasItinerary:    user.HasItinerary,
		CreatedAt:       utils.FormatRFC3339VN(user.CreatedAt),
	}, nil
}
