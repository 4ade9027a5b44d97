package request_models

type SurveyRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	PersonalityType string `json:"personality_type" binding:"required,oneof=extrovert introvert"`
	TravelStyle     string `json:"travel_style" binding:"required,oneof=group solo"`
	TransportType   string `json:"transport_type" binding:"required,min=1"`
	HasItinerary    bool   `json:"has_itinerary"`
}
