package utils

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrItineraryNotFound   = errors.New("itinerary not found")
	ErrAlreadySeeded       = errors.New("destinations already seeded")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDatabaseError       = errors.New("database error")
	ErrAIServiceError      = errors.New("ai service error")
)
