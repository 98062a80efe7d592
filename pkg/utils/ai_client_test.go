package utils_test

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"

	"archtrip/pkg/utils"
)

func TestClassifyProviderError(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		message string
		want    error
	}{
		{"unauthorized", 401, "unauthorized", utils.ErrInvalidCredential},
		{"forbidden", 403, "forbidden", utils.ErrInvalidCredential},
		{"bad key message", 400, "the provided API key is invalid", utils.ErrInvalidCredential},
		{"gemini key marker", 400, "API_KEY_INVALID", utils.ErrInvalidCredential},
		{"rate limited", 429, "too many requests", utils.ErrRateLimited},
		{"quota message", 500, "Quota exceeded for this project", utils.ErrRateLimited},
		{"server error", 500, "internal error", utils.ErrUpstreamUnavailable},
		{"network failure", 0, "connection refused", utils.ErrUpstreamUnavailable},
		{"plain bad request", 400, "missing field messages", utils.ErrUpstreamUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, utils.ClassifyProviderError(tc.status, tc.message), tc.want)
		})
	}
}

func TestExtractChatMessageText_ContentFirst(t *testing.T) {
	text, ok := utils.ExtractChatMessageText(openai.ChatCompletionMessage{Content: `{"a":1}`})
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, text)
}

func TestExtractChatMessageText_FallsBackToMultiContent(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: `{"a":`},
			{Type: openai.ChatMessagePartTypeText, Text: `1}`},
		},
	}
	text, ok := utils.ExtractChatMessageText(msg)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, text)
}

func TestExtractChatMessageText_EmptyMessage(t *testing.T) {
	_, ok := utils.ExtractChatMessageText(openai.ChatCompletionMessage{Content: "   "})
	assert.False(t, ok)
}
