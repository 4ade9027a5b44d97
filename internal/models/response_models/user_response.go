package response_models

type UserResponse struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	PersonalityType string `json:"personality_type"`
	TravelStyle     string `json:"travel_style"`
	TransportType   string `json:"transport_type"`
	HasItinerary    bool   `json:"has_itinerary"`
	CreatedAt       string `json:"created_at"`
}

type SurveyResponse struct {
	UserID  int    `json:"user_id"`
	Message string `json:"message"`
}
