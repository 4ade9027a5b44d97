package response_models

// ScheduleItem mirrors one AI-planned (or fallback) schedule row.
type ScheduleItem struct {
	DestinationID   int     `json:"destination_id"`
	DestinationName string  `json:"destination_name"`
	TimeSlot        string  `json:"time_slot"`
	TimeRange       string  `json:"time_range,omitempty"`
	Activity        string  `json:"activity,omitempty"`
	Duration        string  `json:"duration,omitempty"`
	Cost            float64 `json:"cost"`
	Directions      string  `json:"directions,omitempty"`
	Tips            string  `json:"tips,omitempty"`
}

type MealSuggestion struct {
	Time          string  `json:"time"`
	Suggestion    string  `json:"suggestion"`
	EstimatedCost float64 `json:"estimated_cost"`
}

type GeneratedItinerary struct {
	Title              string           `json:"title"`
	TotalEstimatedCost float64          `json:"total_estimated_cost"`
	TotalDuration      string           `json:"total_duration"`
	Schedule           []ScheduleItem   `json:"schedule"`
	MealSuggestions    []MealSuggestion `json:"meal_suggestions"`
}

type GenerateItineraryResponse struct {
	Message           string             `json:"message"`
	UserID            int                `json:"user_id"`
	VisitDate         string             `json:"visit_date"`
	EmotionTag        string             `json:"emotion_tag,omitempty"`
	Itinerary         GeneratedItinerary `json:"itinerary"`
	DestinationsCount int                `json:"destinations_count"`
}

type ItineraryDestination struct {
	ItineraryID int         `json:"itinerary_id"`
	Destination Destination `json:"destination"`
	TimeSlot    string      `json:"time_slot"`
}

type DayItinerary struct {
	VisitDate    string                 `json:"visit_date"`
	EmotionTag   string                 `json:"emotion_tag,omitempty"`
	Destinations []ItineraryDestination `json:"destinations"`
	TotalCost    float64                `json:"total_cost"`
	TotalTime    int                    `json:"total_time"`
	CreatedAt    string                 `json:"created_at"`
}

type ItinerarySummary struct {
	TotalItineraries  int     `json:"total_itineraries"`
	TotalDestinations int     `json:"total_destinations"`
	TotalCost         float64 `json:"total_cost"`
	AverageCostPerDay float64 `json:"average_cost_per_day"`
}

type UserItinerariesResponse struct {
	UserID          int              `json:"user_id"`
	UserName        string           `json:"user_name"`
	UserPreferences *UserPreferences `json:"user_preferences,omitempty"`
	Itineraries     []DayItinerary   `json:"itineraries"`
	Summary         ItinerarySummary `json:"summary"`
}

type UserPreferences struct {
	PersonalityType string `json:"personality_type"`
	TravelStyle     string `json:"travel_style"`
	TransportType   string `json:"transport_type"`
}
