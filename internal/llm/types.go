package llm

import (
	"context"
	"fmt"

	"github.com/cortexnotes/cortex-ai/internal/config"
)

// Provider is a single request/response exchange with the hosted LLM gateway.
type Provider interface {
	// Complete sends promptText as a user message and returns the raw text completion.
	Complete(ctx context.Context, cfg ModelConfig, promptText string) (string, error)
}

// ModelConfig carries the generation parameters for one invocation.
type ModelConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int64
}

// Purpose selects which model profile a task runs against.
type Purpose string

const (
	// PurposeGeneral is the default profile for summary/insight/question chains.
	PurposeGeneral Purpose = "general"
	// PurposeReasoner is the profile for cross-domain connection synthesis.
	PurposeReasoner Purpose = "reasoner"
	// PurposeCoder is the profile for code generation, explanation, and review.
	PurposeCoder Purpose = "coder"
)

// Profiles is the static lookup of model configurations keyed by task purpose.
// It is built once at startup and never mutated per request.
type Profiles map[Purpose]ModelConfig

func NewProfiles(cfg config.OpenAIConfig) Profiles {
	return Profiles{
		PurposeGeneral:  {Model: cfg.GeneralModel, Temperature: cfg.Temperature, MaxTokens: cfg.MaxTokens},
		PurposeReasoner: {Model: cfg.ReasonerModel, Temperature: cfg.Temperature, MaxTokens: cfg.MaxTokens},
		PurposeCoder:    {Model: cfg.CoderModel, Temperature: cfg.Temperature, MaxTokens: cfg.MaxTokens},
	}
}

func (p Profiles) For(purpose Purpose) ModelConfig {
	return p[purpose]
}

// GatewayError wraps a network failure or non-success response from the gateway.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("llm gateway: %v", e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
