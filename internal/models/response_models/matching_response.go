package response_models

// MatchingTraveler is one candidate travel buddy, ordered by compatibility.
type MatchingTraveler struct {
	UserID             int              `json:"user_id"`
	Name               string           `json:"name"`
	PersonalityType    string           `json:"personality_type"`
	TravelStyle        string           `json:"travel_style"`
	TransportType      string           `json:"transport_type"`
	Destination        DestinationBrief `json:"destination"`
	VisitDate          string           `json:"visit_date"`
	TimeSlot           string           `json:"time_slot"`
	EmotionTag         string           `json:"emotion_tag,omitempty"`
	CompatibilityScore float64          `json:"compatibility_score"`
	CompatibilityLevel string           `json:"compatibility_level"`
	MatchReasons       []string         `json:"match_reasons"`
}

type GroupParticipant struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	PersonalityType string `json:"personality_type"`
	TravelStyle     string `json:"travel_style"`
}

type GroupActivity struct {
	TimeSlot         string      `json:"time_slot"`
	Type             string      `json:"type"`
	Destination      Destination `json:"destination"`
	Participants     []string    `json:"participants"`
	ParticipantCount int         `json:"participant_count"`
	AgreementLevel   string      `json:"agreement_level"`
}

type SplitOption struct {
	Destination     Destination `json:"destination"`
	InterestedUsers []string    `json:"interested_users"`
	UserCount       int         `json:"user_count"`
}

type SplitActivity struct {
	TimeSlot string        `json:"time_slot"`
	Type     string        `json:"type"`
	Reason   string        `json:"reason"`
	Options  []SplitOption `json:"options"`
}

type GroupCompatibility struct {
	Score                  float64        `json:"score"`
	Level                  string         `json:"level"`
	DominantPersonality    string         `json:"dominant_personality,omitempty"`
	PersonalityMix         map[string]int `json:"personality_mix,omitempty"`
	TravelStyleMix         map[string]int `json:"travel_style_mix,omitempty"`
	CoordinationDifficulty string         `json:"coordination_difficulty,omitempty"`
}

type MeetingSuggestion struct {
	Time     string `json:"time"`
	Location string `json:"location"`
	Reason   string `json:"reason"`
}

type GroupSummary struct {
	CommonActivities int    `json:"common_activities"`
	SplitActivities  int    `json:"split_activities"`
	Recommendation   string `json:"recommendation"`
}

// GroupItinerary is the full group plan. When the request carries fewer than
// two user ids only Error and GroupSize are populated; this is a structured
// payload, not a Go error.
type GroupItinerary struct {
	Error              string              `json:"error,omitempty"`
	Date               string              `json:"date,omitempty"`
	GroupSize          int                 `json:"group_size"`
	Participants       []GroupParticipant  `json:"participants,omitempty"`
	GroupCompatibility *GroupCompatibility `json:"group_compatibility,omitempty"`
	GroupSchedule      []GroupActivity     `json:"group_schedule,omitempty"`
	SplitOptions       []SplitActivity     `json:"split_options,omitempty"`
	MeetingSuggestions []MeetingSuggestion `json:"meeting_suggestions,omitempty"`
	Summary            *GroupSummary       `json:"summary,omitempty"`
}
