package analyzer

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cortexnotes/cortex-ai/apimodels"
	"github.com/cortexnotes/cortex-ai/internal/llm"
	"github.com/cortexnotes/cortex-ai/internal/prompt"
	"github.com/cortexnotes/cortex-ai/internal/textparse"
)

// Analyzer runs the content-analysis chains against an LLM provider.
//
// Summary, insight, and question chains are independent of each other and of
// everything else, so they fan out concurrently. Connection synthesis embeds
// the raw insight text in its prompt to ground cross-domain linking, which is
// the one real ordering dependency: it must not start before the insight
// chain has completed.
type Analyzer struct {
	provider llm.Provider
	profiles llm.Profiles
}

func New(provider llm.Provider, profiles llm.Profiles) *Analyzer {
	return &Analyzer{
		provider: provider,
		profiles: profiles,
	}
}

// Analyze produces the full result or fails as a whole. If any chain fails,
// the first error propagates unchanged and no partial result is returned.
func (a *Analyzer) Analyze(ctx context.Context, content string) (*apimodels.AnalysisResult, error) {
	slog.Info("starting content analysis", "contentLength", len(content))
	startTime := time.Now()

	contentVars := map[string]string{"content": content}

	var summary, insightText, questionText string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = a.runChain(gctx, prompt.Summary, contentVars, llm.PurposeGeneral)
		return err
	})
	g.Go(func() error {
		var err error
		insightText, err = a.runChain(gctx, prompt.Insights, contentVars, llm.PurposeGeneral)
		return err
	})
	g.Go(func() error {
		var err error
		questionText, err = a.runChain(gctx, prompt.Questions, contentVars, llm.PurposeGeneral)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("content analysis failed", "error", err)
		return nil, err
	}

	connectionText, err := a.runChain(ctx, prompt.Connections, map[string]string{
		"content":  content,
		"insights": insightText,
	}, llm.PurposeReasoner)
	if err != nil {
		slog.Error("connection synthesis failed", "error", err)
		return nil, err
	}

	result := &apimodels.AnalysisResult{
		Summary:     summary,
		Insights:    textparse.ParseList(insightText),
		Questions:   textparse.ParseList(questionText),
		Connections: textparse.ParseList(connectionText),
	}

	slog.Info("content analysis completed",
		"duration", time.Since(startTime),
		"insights", len(result.Insights),
		"questions", len(result.Questions),
		"connections", len(result.Connections),
	)
	return result, nil
}

// runChain is one prompt-build then model-invoke step.
func (a *Analyzer) runChain(ctx context.Context, tmpl prompt.Template, vars map[string]string, purpose llm.Purpose) (string, error) {
	promptText, err := prompt.Render(tmpl, vars)
	if err != nil {
		return "", err
	}
	slog.Debug("invoking chain", "template", tmpl.Name, "purpose", purpose)
	return a.provider.Complete(ctx, a.profiles.For(purpose), promptText)
}
