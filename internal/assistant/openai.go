package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var ErrNoAPIKey = fmt.Errorf("assistant: api key not configured")

// OpenAIAssistant answers through the OpenAI chat completions API.
type OpenAIAssistant struct {
	apiKey string
	model  string
	client openai.Client
	ready  bool
}

func NewOpenAIAssistant(apiKey, model string) *OpenAIAssistant {
	return &OpenAIAssistant{apiKey: strings.TrimSpace(apiKey), model: strings.TrimSpace(model)}
}

func (a *OpenAIAssistant) ensureClient() error {
	if a.apiKey == "" {
		return ErrNoAPIKey
	}
	if !a.ready {
		a.client = openai.NewClient(option.WithAPIKey(a.apiKey))
		a.ready = true
	}
	return nil
}

// Reply asks the model for a short helpdesk answer. Timeout: 8s.
func (a *OpenAIAssistant) Reply(ctx context.Context, query string) (string, error) {
	if err := a.ensureClient(); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	model := a.model
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(query),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("assistant: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
