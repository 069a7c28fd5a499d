package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"

	"github.com/cortexnotes/cortex-ai/internal/config"
)

// OpenAI client implementation
type OpenAI struct {
	client  *openai.Client
	timeout time.Duration
}

func NewOpenAI(cfg *config.OpenAIConfig) (*OpenAI, error) {
	var client *openai.Client

	switch cfg.Provider {
	case "azure":
		client = openai.NewClient(
			azure.WithEndpoint(cfg.APIEndpoint, cfg.APIVersion),
			azure.WithAPIKey(cfg.APIKey),
		)
	default: // "openai"
		client = openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.APIEndpoint),
		)
	}

	return &OpenAI{
		client:  client,
		timeout: cfg.RequestTimeout,
	}, nil
}

func (o *OpenAI) Complete(ctx context.Context, cfg ModelConfig, promptText string) (string, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	resp, err := o.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Model: openai.F(cfg.Model),
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(promptText),
			}),
			Temperature: openai.F(cfg.Temperature),
			MaxTokens:   openai.F(cfg.MaxTokens),
		},
	)
	if err != nil {
		return "", &GatewayError{Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &GatewayError{Err: errors.New("gateway returned no completion choices")}
	}

	slog.Debug("completion received",
		"model", cfg.Model,
		"promptTokens", resp.Usage.PromptTokens,
		"completionTokens", resp.Usage.CompletionTokens,
		"totalTokens", resp.Usage.TotalTokens,
	)

	return resp.Choices[0].Message.Content, nil
}
