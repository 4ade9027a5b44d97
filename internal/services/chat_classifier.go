package services

import "strings"

// keywordCategory pairs a category name with its trigger keywords. Categories
// live in slices, not maps: declaration order is part of the contract, both
// for first-match-wins emotion detection and for the order intents appear in
// results.
type keywordCategory struct {
	name     string
	keywords []string
}

var emotionKeywords = []keywordCategory{
	{"happy", []string{"happy", "joy", "joyful", "excited", "cheerful", "glad", "delighted", "thrilled", "wonderful"}},
	{"sad", []string{"sad", "lonely", "down", "depressed", "blue", "upset", "unhappy", "gloomy", "melancholy"}},
	{"stressed", []string{"stress", "stressed", "anxiety", "anxious", "worried", "tense", "overwhelmed", "tired", "exhausted"}},
	{"excited", []string{"excited", "adventure", "adventurous", "energetic", "pump", "pumped", "thrilled", "eager"}},
	{"romantic", []string{"romantic", "romance", "love", "couple", "date", "honeymoon", "intimate"}},
	{"peaceful", []string{"peace", "peaceful", "calm", "relax", "quiet", "tranquil", "serene", "meditate"}},
}

const (
	IntentDestinationSuggestion = "destination_suggestion"
	IntentItineraryCreation     = "itinerary_creation"
	IntentPhotoSpots            = "photo_spots"
	IntentDirections            = "directions"
	IntentCostInfo              = "cost_info"
	IntentTimeInfo              = "time_info"
	IntentGeneralQuery          = "general_query"
)

var intentKeywords = []keywordCategory{
	{IntentDestinationSuggestion, []string{"suggest", "recommend", "where", "place", "destination", "visit", "see", "go", "show me"}},
	{IntentItineraryCreation, []string{"itinerary", "plan", "schedule", "route", "organize", "day trip", "trip plan"}},
	{IntentPhotoSpots, []string{"photo", "instagram", "picture", "selfie", "photography", "camera", "scenic"}},
	{IntentDirections, []string{"direction", "how to get", "how do i get", "way to", "navigate", "location", "address"}},
	{IntentCostInfo, []string{"cost", "price", "expensive", "cheap", "budget", "money", "afford"}},
	{IntentTimeInfo, []string{"time", "how long", "duration", "hours", "minutes", "open", "close"}},
}

// DetectEmotion scans the emotion table in declaration order and returns the
// first category with a keyword found as a substring of the lowercased
// message. Only one emotion is ever returned, even when several would match.
func DetectEmotion(message string) (string, bool) {
	lower := strings.ToLower(message)

	for _, category := range emotionKeywords {
		for _, keyword := range category.keywords {
			if strings.Contains(lower, keyword) {
				return category.name, true
			}
		}
	}

	return "", false
}

// DetectIntents returns every matching intent category, at most once each and
// in declaration order. A message matching nothing yields ["general_query"].
func DetectIntents(message string) []string {
	lower := strings.ToLower(message)
	var detected []string

	for _, category := range intentKeywords {
		for _, keyword := range category.keywords {
			if strings.Contains(lower, keyword) {
				detected = append(detected, category.name)
				break
			}
		}
	}

	if len(detected) == 0 {
		detected = append(detected, IntentGeneralQuery)
	}

	return detected
}

func hasIntent(intents []string, intent string) bool {
	for _, candidate := range intents {
		if candidate == intent {
			return true
		}
	}
	return false
}
