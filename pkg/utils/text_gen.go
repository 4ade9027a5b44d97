package utils

import (
	"context"
	"fmt"
	"strings"
)

// TravelProfile is the read-only user context handed to the AI provider.
type TravelProfile struct {
	PersonalityType string
	TravelStyle     string
	TransportType   string
	HasItinerary    bool
}

// DestinationSummary is the flattened destination info sent in prompts.
type DestinationSummary struct {
	ID            int
	Name          string
	Location      string
	Category      string
	PhotoSpot     bool
	EstimatedCost float64
	EstimatedTime int
	Description   string
}

type EmotionRecommendation struct {
	DestinationName string `json:"destination_name"`
	Reason          string `json:"reason"`
	Priority        string `json:"priority"`
}

type EmotionSuggestionResult struct {
	EmotionAnalysis string                  `json:"emotion_analysis"`
	Recommendations []EmotionRecommendation `json:"recommendations"`
}

type PlannedStop struct {
	TimeSlot    string  `json:"time_slot"`
	TimeRange   string  `json:"time_range"`
	Destination string  `json:"destination"`
	Activity    string  `json:"activity"`
	Duration    string  `json:"duration"`
	Cost        float64 `json:"cost"`
	Directions  string  `json:"directions"`
	Tips        string  `json:"tips"`
}

type PlannedMeal struct {
	Time          string  `json:"time"`
	Suggestion    string  `json:"suggestion"`
	EstimatedCost float64 `json:"estimated_cost"`
}

type PlannedItinerary struct {
	Title              string        `json:"itinerary_title"`
	TotalEstimatedCost float64       `json:"total_estimated_cost"`
	TotalDuration      string        `json:"total_duration"`
	Schedule           []PlannedStop `json:"schedule"`
	MealSuggestions    []PlannedMeal `json:"meal_suggestions"`
}

// TextGenClientInterface abstracts the external text-generation collaborator.
// Gemini is the default implementation; go-openai is the alternative, picked
// with AI_PROVIDER=openai.
type TextGenClientInterface interface {
	ChatReply(ctx context.Context, message string, profile *TravelProfile) (string, error)
	SuggestByEmotion(ctx context.Context, emotion string, destinations []DestinationSummary) (*EmotionSuggestionResult, error)
	GenerateDayPlan(ctx context.Context, profile TravelProfile, destinations []DestinationSummary) (*PlannedItinerary, error)
}

const assistantSystemPrompt = `You are DasiLari, a friendly and knowledgeable travel assistant specializing in Da Lat, Vietnam.
Your role is to help travelers discover the beauty of Da Lat and create memorable experiences.

IMPORTANT: You must ALWAYS respond in English only, regardless of what language the user uses to ask questions.

Key responsibilities:
- Provide helpful information about Da Lat attractions, activities, and local insights
- Recommend destinations based on user preferences and personality
- Suggest itineraries that match travel styles (solo/group, introvert/extrovert)
- Offer practical advice on costs, timing, and transportation
- Be warm, enthusiastic, and culturally sensitive

Communication style:
- Friendly and conversational
- Use simple, clear English
- Provide specific, actionable recommendations
- Include practical details (costs, time, location)
- Always reply in English, even if the user asks in Vietnamese or another language`

func systemPromptWithProfile(profile *TravelProfile) string {
	if profile == nil {
		return assistantSystemPrompt
	}
	hasItinerary := "No"
	if profile.HasItinerary {
		hasItinerary = "Yes"
	}
	return assistantSystemPrompt + fmt.Sprintf(`

User Profile:
- Personality: %s
- Travel Style: %s
- Transport: %s
- Has existing itinerary: %s`,
		profile.PersonalityType, profile.TravelStyle, profile.TransportType, hasItinerary)
}

func destinationPromptList(destinations []DestinationSummary) string {
	var b strings.Builder
	for _, dest := range destinations {
		fmt.Fprintf(&b, "- %s: %s (Category: %s, Photo spot: %t, Cost: %.0f VND, Time: %d minutes, Location: %s)\n",
			dest.Name, dest.Description, dest.Category, dest.PhotoSpot, dest.EstimatedCost, dest.EstimatedTime, dest.Location)
	}
	return b.String()
}

func emotionPrompt(emotion string, destinations []DestinationSummary) string {
	return fmt.Sprintf(`Based on the user's current emotion: %q, analyze and recommend 3-5 suitable destinations from Da Lat.

Available destinations:
%s
Consider:
- For "happy" emotions: Suggest vibrant, social places with photo opportunities
- For "sad" emotions: Suggest peaceful, healing places in nature
- For "stressed" emotions: Suggest quiet, relaxing spots away from crowds
- For "excited" emotions: Suggest adventurous, energetic activities
- For "romantic" emotions: Suggest beautiful, intimate locations

Return **JSON only**, match these keys exactly:
{
  "emotion_analysis": "string",
  "recommendations": [
    {"destination_name": "string", "reason": "string", "priority": "high/medium"}
  ]
}`, emotion, destinationPromptList(destinations))
}

func dayPlanPrompt(profile TravelProfile, destinations []DestinationSummary) string {
	return fmt.Sprintf(`Create a detailed day itinerary for a traveler visiting Da Lat with these preferences:
- Personality: %s
- Travel Style: %s
- Transportation: %s

Selected destinations to visit:
%s
Requirements:
- Organize destinations by optimal time slots (morning/afternoon/evening)
- Consider travel time between locations
- Include break times for meals
- Calculate total estimated cost
- Provide brief directions and tips
- Adjust pace based on personality (introverts: slower, more breaks; extroverts: active, social)
- Use exact destination names from the list

Return **JSON only**, match these keys exactly:
{
  "itinerary_title": "Your Da Lat Day Trip",
  "total_estimated_cost": 0,
  "total_duration": "X hours",
  "schedule": [
    {"time_slot": "morning/afternoon/evening", "time_range": "09:00 - 11:00", "destination": "Destination Name",
     "activity": "What to do", "duration": "X minutes", "cost": 0, "directions": "How to get there", "tips": "Helpful advice"}
  ],
  "meal_suggestions": [
    {"time": "12:00", "suggestion": "Lunch recommendation", "estimated_cost": 0}
  ]
}`, profile.PersonalityType, profile.TravelStyle, profile.TransportType, destinationPromptList(destinations))
}
