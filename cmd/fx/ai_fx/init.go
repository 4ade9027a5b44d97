package aifx

import (
	"os"

	"go.uber.org/fx"

	"dasilari/pkg/utils"
)

var Module = fx.Provide(
	provideTextGenClient)

// provideTextGenClient picks the text-generation provider from AI_PROVIDER.
// Gemini is the default; set AI_PROVIDER=openai to switch.
func provideTextGenClient() (utils.TextGenClientInterface, error) {
	if os.Getenv("AI_PROVIDER") == "openai" {
		return utils.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	}
	return utils.NewGeminiClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
}
