package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Port               int           `env:"PORT" envDefault:"8080"`
	PublicBaseURL      string        `env:"PUBLIC_BASE_URL" envDefault:"https://anti-doshirak.app"`
	OpenRouterBaseURL  string        `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	OpenRouterAPIKey   string        `env:"OPENROUTER_API_KEY"`
	OpenRouterModel    string        `env:"OPENROUTER_MODEL" envDefault:"qwen/qwen3-coder:free"`
	BriefParserMock    bool          `env:"BRIEF_PARSER_MOCK" envDefault:"false"`
	HTTPRequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
