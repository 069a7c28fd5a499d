// cmd/server/main.go
package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/cortexnotes/cortex-ai/internal/analyzer"
	"github.com/cortexnotes/cortex-ai/internal/codetask"
	"github.com/cortexnotes/cortex-ai/internal/config"
	"github.com/cortexnotes/cortex-ai/internal/llm"
	"github.com/cortexnotes/cortex-ai/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on process environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	llmProvider, err := llm.NewOpenAI(&cfg.OpenAI)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	profiles := llm.NewProfiles(cfg.OpenAI)
	analyzer := analyzer.New(llmProvider, profiles)
	dispatcher := codetask.New(llmProvider, profiles)

	srv := server.New(*cfg, analyzer, dispatcher)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
