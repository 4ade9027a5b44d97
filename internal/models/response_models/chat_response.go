package response_models

type SuggestedDestination struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Category  string   `json:"category,omitempty"`
	Reason    string   `json:"reason"`
	Priority  string   `json:"priority"`
	Cost      *float64 `json:"cost"`
	Time      *int     `json:"time"`
	PhotoSpot bool     `json:"photo_spot"`
}

type ChatMetadata struct {
	DetectedEmotion   string   `json:"detected_emotion,omitempty"`
	DetectedIntents   []string `json:"detected_intents"`
	UserPersonality   string   `json:"user_personality,omitempty"`
	UserTravelStyle   string   `json:"user_travel_style,omitempty"`
	FallbackTriggered bool     `json:"fallback_triggered,omitempty"`
}

type ChatResponse struct {
	Response              string                 `json:"response"`
	SuggestedDestinations []SuggestedDestination `json:"suggested_destinations,omitempty"`
	Metadata              ChatMetadata           `json:"metadata"`
}
