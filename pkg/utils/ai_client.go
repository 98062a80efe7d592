package utils

import (
	"context"
	"fmt"
	"strings"
)

// ItineraryClientInterface hides the concrete LLM backend. Implementations
// return the raw response text; cleanup, parsing and repair happen in the
// planner service so every provider goes through the same pipeline.
type ItineraryClientInterface interface {
	// GenerateItinerary asks the model for a days-long plan for destination.
	// apiKeyOverride, when non-empty, replaces the configured credential for
	// this single call (the retry-with-own-key flow).
	GenerateItinerary(ctx context.Context, destination string, days int, apiKeyOverride string) (string, error)
	Close() error
}

// AIClientConfig holds provider selection for the itinerary generator.
type AIClientConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// NewItineraryClient creates either an OpenRouter or Gemini backed client.
func NewItineraryClient(cfg AIClientConfig) (ItineraryClientInterface, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openrouter":
		return NewOpenRouterItineraryClient(cfg.APIKey, cfg.Model), nil
	case "gemini":
		return NewGeminiItineraryClient(cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openrouter' or 'gemini'", cfg.Provider)
	}
}

// ClassifyProviderError maps an upstream failure onto the service error
// taxonomy. Credential problems surface as 401s, or 400s whose message
// mentions the key; quota problems as 429s or "quota" messages.
func ClassifyProviderError(statusCode int, message string) error {
	lower := strings.ToLower(message)
	switch {
	case statusCode == 401,
		statusCode == 403,
		strings.Contains(message, "API_KEY_INVALID"),
		statusCode == 400 && (strings.Contains(lower, "api key") || strings.Contains(lower, "credential") || strings.Contains(lower, "invalid key")):
		return ErrInvalidCredential
	case statusCode == 429, strings.Contains(lower, "quota"), strings.Contains(lower, "rate limit"):
		return ErrRateLimited
	default:
		return ErrUpstreamUnavailable
	}
}
