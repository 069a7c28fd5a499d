package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
}

type ServerConfig struct {
	Port           string        `envconfig:"SERVER_PORT" default:"8000"`
	Host           string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout    time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout   time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"120s"`
	AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

type OpenAIConfig struct {
	Provider       string        `envconfig:"OPENAI_PROVIDER" default:"openai"`
	APIKey         string        `envconfig:"OPENAI_API_KEY" required:"true"`
	APIEndpoint    string        `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`
	APIVersion     string        `envconfig:"OPENAI_API_VERSION" default:"2023-05-15"`
	GeneralModel   string        `envconfig:"OPENAI_GENERAL_MODEL" default:"gpt-4o-mini"`
	ReasonerModel  string        `envconfig:"OPENAI_REASONER_MODEL" default:"gpt-4o"`
	CoderModel     string        `envconfig:"OPENAI_CODER_MODEL" default:"gpt-4o"`
	Temperature    float64       `envconfig:"OPENAI_TEMPERATURE" default:"0.7"`
	MaxTokens      int64         `envconfig:"OPENAI_MAX_TOKENS" default:"1024"`
	RequestTimeout time.Duration `envconfig:"OPENAI_REQUEST_TIMEOUT" default:"60s"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
