package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient is the go-openai backed alternative to GeminiClient.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) (TextGenClientInterface, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is empty")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{client: openai.NewClient(apiKey), model: model}, nil
}

func (c *OpenAIClient) ChatReply(ctx context.Context, message string, profile *TravelProfile) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPromptWithProfile(profile)},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIClient) SuggestByEmotion(ctx context.Context, emotion string, destinations []DestinationSummary) (*EmotionSuggestionResult, error) {
	raw, err := c.completeJSON(ctx,
		"You are an expert travel psychologist who matches destinations to emotional states.",
		emotionPrompt(emotion, destinations), 0.8, 600)
	if err != nil {
		return nil, err
	}

	var result EmotionSuggestionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("openai: decoding emotion suggestions: %w", err)
	}
	return &result, nil
}

func (c *OpenAIClient) GenerateDayPlan(ctx context.Context, profile TravelProfile, destinations []DestinationSummary) (*PlannedItinerary, error) {
	raw, err := c.completeJSON(ctx,
		"You are an expert Da Lat travel planner who creates optimized, personalized itineraries.",
		dayPlanPrompt(profile, destinations), 0.7, 1000)
	if err != nil {
		return nil, err
	}

	var plan PlannedItinerary
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("openai: decoding day plan: %w", err)
	}
	return &plan, nil
}

func (c *OpenAIClient) completeJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature:    temperature,
		MaxTokens:      maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("openai returned invalid JSON")
	}
	return content, nil
}
