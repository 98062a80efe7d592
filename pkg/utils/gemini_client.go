package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const geminiCallTimeout = 30 * time.Second

// GeminiItineraryClient implements ItineraryClientInterface against Google's
// Gemini models with schema-guided JSON output.
type GeminiItineraryClient struct {
	client *genai.Client
	apiKey string
	model  string
}

// NewGeminiItineraryClient creates a new Gemini-backed client.
func NewGeminiItineraryClient(apiKey, model string) (ItineraryClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiItineraryClient{
		client: client,
		apiKey: apiKey,
		model:  model,
	}, nil
}

func (c *GeminiItineraryClient) GenerateItinerary(ctx context.Context, destination string, days int, apiKeyOverride string) (string, error) {
	client := c.client
	if apiKeyOverride != "" && apiKeyOverride != c.apiKey {
		// A user-supplied key replaces the configured credential for this
		// call only; the startup client stays untouched.
		override, err := genai.NewClient(ctx, option.WithAPIKey(apiKeyOverride))
		if err != nil {
			return "", ErrInvalidCredential
		}
		defer override.Close()
		client = override
	}

	m := client.GenerativeModel(c.model)
	// Force JSON-only output so fence stripping is rarely needed.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(8192)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(BuildSystemInstruction())},
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, geminiCallTimeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(BuildUserPrompt(destination, days)))
	if err != nil {
		return "", classifyGeminiError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrMalformedResponse
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func classifyGeminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return ClassifyProviderError(apiErr.Code, apiErr.Message)
	}
	return ClassifyProviderError(0, err.Error())
}

// Close closes the Gemini client.
func (c *GeminiItineraryClient) Close() error {
	return c.client.Close()
}
