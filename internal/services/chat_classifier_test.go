package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectEmotion(t *testing.T) {
	tests := []struct {
		name    string
		message string
		emotion string
		found   bool
	}{
		{"stressed", "I'm so stressed from work lately", "stressed", true},
		{"happy beats excited", "I'm happy and excited to travel", "happy", true},
		{"sad beats stressed", "Feeling sad and tired today", "sad", true},
		{"romantic", "Planning a honeymoon trip", "romantic", true},
		{"case insensitive", "SO EXHAUSTED right now", "stressed", true},
		{"neutral", "What is there to do around here?", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emotion, found := DetectEmotion(tt.message)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.emotion, emotion)
		})
	}
}

func TestDetectIntents(t *testing.T) {
	tests := []struct {
		name    string
		message string
		intents []string
	}{
		{
			"suggestion plus photos in declaration order",
			"Where should I go for good photo opportunities?",
			[]string{IntentDestinationSuggestion, IntentPhotoSpots},
		},
		{
			"itinerary",
			"Help me plan a day trip",
			[]string{IntentItineraryCreation},
		},
		{
			"cost and time",
			"How much does it cost and how long does it take?",
			[]string{IntentCostInfo, IntentTimeInfo},
		},
		{
			"nothing matched defaults to general query",
			"Hello there!",
			[]string{IntentGeneralQuery},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.intents, DetectIntents(tt.message))
		})
	}
}

func TestDetectIntentsDeduplicates(t *testing.T) {
	intents := DetectIntents("suggest a place to visit, recommend somewhere to go")
	assert.Equal(t, []string{IntentDestinationSuggestion}, intents)
}
