package utils

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterItineraryClient implements ItineraryClientInterface over the
// OpenRouter chat-completions gateway via the OpenAI-compatible client.
type OpenRouterItineraryClient struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewOpenRouterItineraryClient creates a new OpenRouter-backed client.
func NewOpenRouterItineraryClient(apiKey, model string) ItineraryClientInterface {
	if model == "" {
		model = "google/gemma-3-27b-it:free"
	}
	return &OpenRouterItineraryClient{
		client: newOpenRouterClient(apiKey),
		apiKey: apiKey,
		model:  model,
	}
}

func newOpenRouterClient(apiKey string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = openRouterBaseURL
	cfg.HTTPClient = &http.Client{Transport: &openRouterHeaders{base: http.DefaultTransport}}
	return openai.NewClientWithConfig(cfg)
}

// openRouterHeaders attaches the attribution headers OpenRouter uses for
// rankings on every outbound request.
type openRouterHeaders struct {
	base http.RoundTripper
}

func (t *openRouterHeaders) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", "https://trip-planner-alpha-flax.vercel.app")
	req.Header.Set("X-Title", "Trip Planner")
	return t.base.RoundTrip(req)
}

func (c *OpenRouterItineraryClient) GenerateItinerary(ctx context.Context, destination string, days int, apiKeyOverride string) (string, error) {
	client := c.client
	if apiKeyOverride != "" && apiKeyOverride != c.apiKey {
		client = newOpenRouterClient(apiKeyOverride)
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: BuildSystemInstruction()},
			{Role: openai.ChatMessageRoleUser, Content: BuildUserPrompt(destination, days)},
		},
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrMalformedResponse
	}

	text, ok := ExtractChatMessageText(resp.Choices[0].Message)
	if !ok {
		return "", ErrMalformedResponse
	}
	return text, nil
}

// ExtractChatMessageText pulls the reply text out of a chat message, trying
// each known shape in order and stopping at the first match: the plain
// content string, then the text parts of a multi-content message.
func ExtractChatMessageText(msg openai.ChatCompletionMessage) (string, bool) {
	strategies := []func(openai.ChatCompletionMessage) (string, bool){
		func(m openai.ChatCompletionMessage) (string, bool) {
			if strings.TrimSpace(m.Content) != "" {
				return m.Content, true
			}
			return "", false
		},
		func(m openai.ChatCompletionMessage) (string, bool) {
			var b strings.Builder
			for _, part := range m.MultiContent {
				if part.Type == openai.ChatMessagePartTypeText {
					b.WriteString(part.Text)
				}
			}
			if strings.TrimSpace(b.String()) != "" {
				return b.String(), true
			}
			return "", false
		},
	}

	for _, strategy := range strategies {
		if text, ok := strategy(msg); ok {
			return text, true
		}
	}
	return "", false
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return ClassifyProviderError(apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return ClassifyProviderError(reqErr.HTTPStatusCode, reqErr.Error())
	}
	return ClassifyProviderError(0, err.Error())
}

// Close is a no-op; the underlying HTTP client has no resources to release.
func (c *OpenRouterItineraryClient) Close() error {
	return nil
}
