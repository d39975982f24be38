package config

import (
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server  ServerConfig  `envPrefix:"SERVER_"`
	Catalog CatalogConfig `envPrefix:"CATALOG_"`
	LLM     LLMConfig     `envPrefix:"LLM_"`
	Prompt  PromptConfig  `envPrefix:"PROMPT_"`
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
	Host string `env:"HOST" envDefault:"0.0.0.0"`
}

// Addr is the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type CatalogConfig struct {
	URL     string        `env:"URL,required"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type LLMConfig struct {
	GoogleAIAPIKey  string  `env:"GOOGLE_AI_API_KEY"`
	Model           string  `env:"MODEL" envDefault:"googleai/gemini-2.5-flash"`
	MaxOutputTokens int32   `env:"MAX_OUTPUT_TOKENS" envDefault:"400"`
	Temperature     float32 `env:"TEMPERATURE" envDefault:"0.7"`
}

type PromptConfig struct {
	// Template overrides the built-in prompt wrapper. Leave empty to use the
	// default shopping assistant instruction.
	Template string `env:"TEMPLATE"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
