// Package codetask exposes the three one-shot code operations. Each is a
// standalone prompt-build then model-invoke round trip against the coder
// profile, with no post-parsing and no shared state.
package codetask

import (
	"context"
	"log/slog"

	"github.com/cortexnotes/cortex-ai/internal/llm"
	"github.com/cortexnotes/cortex-ai/internal/prompt"
)

const defaultLanguage = "typescript"

type Dispatcher struct {
	provider llm.Provider
	coder    llm.ModelConfig
}

func New(provider llm.Provider, profiles llm.Profiles) *Dispatcher {
	return &Dispatcher{
		provider: provider,
		coder:    profiles.For(llm.PurposeCoder),
	}
}

func (d *Dispatcher) Generate(ctx context.Context, description, language string) (string, error) {
	return d.run(ctx, prompt.CodeGenerate, map[string]string{
		"description": description,
		"language":    orDefault(language),
	})
}

func (d *Dispatcher) Explain(ctx context.Context, code, language string) (string, error) {
	return d.run(ctx, prompt.CodeExplain, map[string]string{
		"code":     code,
		"language": orDefault(language),
	})
}

func (d *Dispatcher) Review(ctx context.Context, code, language string) (string, error) {
	return d.run(ctx, prompt.CodeReview, map[string]string{
		"code":     code,
		"language": orDefault(language),
	})
}

func (d *Dispatcher) run(ctx context.Context, tmpl prompt.Template, vars map[string]string) (string, error) {
	promptText, err := prompt.Render(tmpl, vars)
	if err != nil {
		return "", err
	}
	slog.Debug("dispatching code task", "template", tmpl.Name, "language", vars["language"])
	return d.provider.Complete(ctx, d.coder, promptText)
}

func orDefault(language string) string {
	if language == "" {
		return defaultLanguage
	}
	return language
}
