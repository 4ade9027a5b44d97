package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements TextGenClientInterface on Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (TextGenClientInterface, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) ChatReply(ctx context.Context, message string, profile *TravelProfile) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)
	m.SetMaxOutputTokens(500)

	prompt := fmt.Sprintf("%s\n\nUser: %s\n\nAssistant:", systemPromptWithProfile(profile), message)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiClient) SuggestByEmotion(ctx context.Context, emotion string, destinations []DestinationSummary) (*EmotionSuggestionResult, error) {
	raw, err := c.generateJSON(ctx, emotionPrompt(emotion, destinations), 0.8, 600)
	if err != nil {
		return nil, err
	}

	var result EmotionSuggestionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("gemini: decoding emotion suggestions: %w", err)
	}
	return &result, nil
}

func (c *GeminiClient) GenerateDayPlan(ctx context.Context, profile TravelProfile, destinations []DestinationSummary) (*PlannedItinerary, error) {
	raw, err := c.generateJSON(ctx, dayPlanPrompt(profile, destinations), 0.7, 1000)
	if err != nil {
		return nil, err
	}

	var plan PlannedItinerary
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("gemini: decoding day plan: %w", err)
	}
	return &plan, nil
}

// generateJSON asks for a JSON-only response so no brace-matching cleanup is
// needed on the way out.
func (c *GeminiClient) generateJSON(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(temperature)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(maxTokens)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini returned invalid JSON")
	}
	return content, nil
}
