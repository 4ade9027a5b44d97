package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"dasilari/internal/models/db_models"
	"dasilari/internal/models/request_models"
	"dasilari/internal/models/response_models"
	"dasilari/internal/repositories"
	"dasilari/pkg/utils"
)

const (
	maxEmotionCandidates  = 15
	maxEmotionSuggestions = 5
	maxPhotoSuggestions   = 10
	maxCuratedSuggestions = 5
)

type ChatServiceInterface interface {
	Chat(ctx context.Context, request request_models.ChatRequest) (*response_models.ChatResponse, error)
}

type ChatService struct {
	userRepo        repositories.UserRepository
	destinationRepo repositories.DestinationRepository
	aiClient        utils.TextGenClientInterface
}

func NewChatService(
	userRepo repositories.UserRepository,
	destinationRepo repositories.DestinationRepository,
	aiClient utils.TextGenClientInterface,
) ChatServiceInterface {
	return &ChatService{
		userRepo:        userRepo,
		destinationRepo: destinationRepo,
		aiClient:        aiClient,
	}
}

// Chat classifies the message (emotion first, then intents), picks destination
// suggestions for the winning branch and asks the AI provider for the reply.
// Any AI failure degrades to a canned reply built from the classification, so
// the endpoint never surfaces provider errors to the client.
func (c *ChatService) Chat(ctx context.Context, request request_models.ChatRequest) (*response_models.ChatResponse, error) {
	user, err := c.userRepo.GetByID(ctx, request.UserID)
	if err != nil {
		log.Printf("Error fetching user %d: %v", request.UserID, err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	emotion, hasEmotion := DetectEmotion(request.Message)
	intents := DetectIntents(request.Message)

	profile := &utils.TravelProfile{
		PersonalityType: user.PersonalityType,
		TravelStyle:     user.TravelStyle,
		TransportType:   user.TransportType,
		HasItinerary:    user.HasItinerary,
	}

	metadata := response_models.ChatMetadata{
		DetectedIntents: intents,
		UserPersonality: user.PersonalityType,
		UserTravelStyle: user.TravelStyle,
	}
	if hasEmotion {
		metadata.DetectedEmotion = emotion
	}

	reply, suggestions, err := c.respond(ctx, request.Message, profile, emotion, hasEmotion, intents)
	if err != nil {
		log.Printf("AI reply failed, using fallback response: %v", err)
		metadata.FallbackTriggered = true
		reply = fallbackReply(emotion, hasEmotion, intents)
	}

	return &response_models.ChatResponse{
		Response:              reply,
		SuggestedDestinations: suggestions,
		Metadata:              metadata,
	}, nil
}

func (c *ChatService) respond(
	ctx context.Context,
	message string,
	profile *utils.TravelProfile,
	emotion string,
	hasEmotion bool,
	intents []string,
) (string, []response_models.SuggestedDestination, error) {
	switch {
	case hasEmotion:
		return c.respondToEmotion(ctx, message, profile, emotion)
	case hasIntent(intents, IntentPhotoSpots):
		return c.respondWithPhotoSpots(ctx, message, profile)
	case hasIntent(intents, IntentDestinationSuggestion):
		return c.respondWithCuratedPicks(ctx, message, profile)
	default:
		reply, err := c.aiClient.ChatReply(ctx, message, profile)
		return reply, nil, err
	}
}

func (c *ChatService) respondToEmotion(ctx context.Context, message string, profile *utils.TravelProfile, emotion string) (string, []response_models.SuggestedDestination, error) {
	destinations, err := c.destinationRepo.List(ctx, repositories.DestinationFilter{})
	if err != nil {
		return "", nil, err
	}
	if len(destinations) > maxEmotionCandidates {
		destinations = destinations[:maxEmotionCandidates]
	}

	byName := make(map[string]db_models.Destination, len(destinations))
	summaries := make([]utils.DestinationSummary, 0, len(destinations))
	for _, destination := range destinations {
		byName[destination.Name] = destination
		summaries = append(summaries, toDestinationSummary(destination))
	}

	result, err := c.aiClient.SuggestByEmotion(ctx, emotion, summaries)
	if err != nil {
		return "", nil, err
	}

	var suggestions []response_models.SuggestedDestination
	for _, rec := range result.Recommendations {
		destination, ok := byName[rec.DestinationName]
		if !ok {
			continue
		}
		suggestions = append(suggestions, suggestedDestination(destination, rec.Reason, rec.Priority))
		if len(suggestions) >= maxEmotionSuggestions {
			break
		}
	}

	prompt := fmt.Sprintf("%s\n\n(The user is feeling %s. %s)", message, emotion, result.EmotionAnalysis)
	reply, err := c.aiClient.ChatReply(ctx, prompt, profile)
	if err != nil {
		return "", suggestions, err
	}
	return reply, suggestions, nil
}

func (c *ChatService) respondWithPhotoSpots(ctx context.Context, message string, profile *utils.TravelProfile) (string, []response_models.SuggestedDestination, error) {
	photoSpot := true
	destinations, err := c.destinationRepo.List(ctx, repositories.DestinationFilter{PhotoSpot: &photoSpot})
	if err != nil {
		return "", nil, err
	}
	if len(destinations) > maxPhotoSuggestions {
		destinations = destinations[:maxPhotoSuggestions]
	}

	suggestions := make([]response_models.SuggestedDestination, 0, len(destinations))
	for _, destination := range destinations {
		priority := "medium"
		if destination.Category == db_models.CategoryFamous {
			priority = "high"
		}
		suggestions = append(suggestions, suggestedDestination(destination, "Popular photo spot with stunning views", priority))
	}

	reply, err := c.aiClient.ChatReply(ctx, message, profile)
	if err != nil {
		return "", suggestions, err
	}
	return reply, suggestions, nil
}

func (c *ChatService) respondWithCuratedPicks(ctx context.Context, message string, profile *utils.TravelProfile) (string, []response_models.SuggestedDestination, error) {
	filter := repositories.DestinationFilter{}
	// Introverts get the quieter local spots rather than the famous circuit.
	if profile.PersonalityType == db_models.PersonalityIntrovert {
		filter.Category = db_models.CategoryLocal
	}

	destinations, err := c.destinationRepo.List(ctx, filter)
	if err != nil {
		return "", nil, err
	}
	if len(destinations) > maxCuratedSuggestions {
		destinations = destinations[:maxCuratedSuggestions]
	}

	suggestions := make([]response_models.SuggestedDestination, 0, len(destinations))
	for _, destination := range destinations {
		reason := fmt.Sprintf("Matches your %s personality", profile.PersonalityType)
		suggestions = append(suggestions, suggestedDestination(destination, reason, "high"))
	}

	reply, err := c.aiClient.ChatReply(ctx, message, profile)
	if err != nil {
		return "", suggestions, err
	}
	return reply, suggestions, nil
}

func suggestedDestination(destination db_models.Destination, reason, priority string) response_models.SuggestedDestination {
	return response_models.SuggestedDestination{
		ID:        destination.ID,
		Name:      destination.Name,
		Location:  destination.Location,
		Category:  destination.Category,
		Reason:    reason,
		Priority:  priority,
		Cost:      destination.EstimatedCost,
		Time:      destination.EstimatedTime,
		PhotoSpot: destination.PhotoSpot,
	}
}

func fallbackReply(emotion string, hasEmotion bool, intents []string) string {
	var b strings.Builder
	b.WriteString("I'm here to help you explore Da Lat! ")
	if len(intents) > 0 && intents[0] != IntentGeneralQuery {
		b.WriteString(fmt.Sprintf("I can see you're interested in %s. ", strings.ReplaceAll(intents[0], "_", " ")))
	}
	if hasEmotion {
		b.WriteString(fmt.Sprintf("It sounds like you're feeling %s. ", emotion))
	}
	b.WriteString("Could you tell me more about what you'd like to do in Da Lat?")
	return b.String()
}
