package openai

import (
	"context"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"flashcards/internal/domain"
	"flashcards/internal/infra"
)

type Interpreter struct {
	client *goopenai.Client
	apiKey string
	model  string
	retry  infra.RetryConfig
}

func NewInterpreter(apiKey, model string) *Interpreter {
	return NewInterpreterWithURL(apiKey, model, "")
}

func NewInterpreterWithURL(apiKey, model, baseURL string) *Interpreter {
	if model == "" {
		model = goopenai.GPT4oMini
	}
	return &Interpreter{
		client: newClient(apiKey, baseURL),
		apiKey: apiKey,
		model:  model,
		retry:  infra.DefaultRetryConfig(),
	}
}

func (i *Interpreter) WithRetry(cfg infra.RetryConfig) *Interpreter {
	i.retry = cfg
	return i
}

func (i *Interpreter) Interpret(ctx context.Context, transcript string, expected int) (string, error) {
	if i.apiKey == "" {
		return "", fmt.Errorf("openai interpreter: %w: api_key not set", domain.ErrConfigurationMissing)
	}

	req := goopenai.ChatCompletionRequest{
		Model: i.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: infra.InterpretSystemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: infra.InterpretUserPrompt(transcript, expected)},
		},
	}

	var resp goopenai.ChatCompletionResponse
	retryErr := infra.WithRetry(ctx, i.retry, func() error {
		var err error
		resp, err = i.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return retryable(fmt.Errorf("chat completion: %w", err))
		}
		return nil
	})
	if retryErr != nil {
		return "", retryErr
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from openai")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
