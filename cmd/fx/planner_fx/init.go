package planner_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"archtrip/internal/api/controllers"
	"archtrip/internal/services"
	"archtrip/pkg/utils"
)

var Module = fx.Provide(
	ProvideItineraryClient,
	ProvidePlannerService,
	ProvidePlannerController)

// ProvideItineraryClient creates the LLM client based on environment variables.
func ProvideItineraryClient() (utils.ItineraryClientInterface, error) {
	config := getAIClientConfig()

	log.Printf("Initializing %s itinerary client with model: %s", config.Provider, config.Model)

	client, err := utils.NewItineraryClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create itinerary client: %w", err)
	}
	return client, nil
}

func ProvidePlannerService(aiClient utils.ItineraryClientInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(aiClient)
}

func ProvidePlannerController(
	plannerService services.PlannerServiceInterface,
	historyService services.HistoryServiceInterface,
	sessionService services.SessionServiceInterface,
) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService, historyService, sessionService)
}

// getAIClientConfig reads provider configuration from environment variables.
func getAIClientConfig() utils.AIClientConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openrouter":
		apiKey = os.Getenv("OPENROUTER_API_KEY")
		model = getEnvWithDefault("OPENROUTER_MODEL", "google/gemma-3-27b-it:free")
		if apiKey == "" {
			log.Fatal("OPENROUTER_API_KEY is required when using OpenRouter provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return utils.AIClientConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
