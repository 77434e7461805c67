package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries all process configuration. Values come from defaults,
// then a .env file, then process environment variables.
type Config struct {
	HTTPAddr string `json:"http_addr"`

	// Provider credentials
	AlphaVantageAPIKey string `json:"alpha_vantage_api_key"`
	GeminiAPIKey       string `json:"gemini_api_key"`
	OpenAIAPIKey       string `json:"openai_api_key"`
	OpenAIBaseURL      string `json:"openai_base_url"`

	// Generative-text provider selection
	LLMProvider string `json:"llm_provider"`
	LLMModel    string `json:"llm_model"`

	// Analysis behavior
	TargetRegion   string `json:"target_region"`
	TopCompetitors int    `json:"top_competitors"`
	HistoryMonths  int    `json:"history_months"`

	// Outbound call hardening. The upstream behavior had no timeout at
	// all; a single bounded timeout per provider call is applied here,
	// with no automatic retry.
	ProviderTimeout time.Duration `json:"provider_timeout"`

	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// Default builds the configuration from defaults, .env and environment.
func Default() *Config {
	cfg := &Config{
		HTTPAddr:        ":8080",
		LLMProvider:     "gemini",
		TargetRegion:    "United States",
		TopCompetitors:  3,
		HistoryMonths:   3,
		ProviderTimeout: 10 * time.Second,
		LogLevel:        "info",
		LogFormat:       "console",
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("HTTP_ADDR"); val != "" {
		c.HTTPAddr = val
	}

	if val := os.Getenv("ALPHA_VANTAGE_API_KEY"); val != "" {
		c.AlphaVantageAPIKey = val
	}
	if val := os.Getenv("GEMINI_API_KEY"); val != "" {
		c.GeminiAPIKey = val
	}
	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		c.OpenAIAPIKey = val
	}
	if val := os.Getenv("OPENAI_BASE_URL"); val != "" {
		c.OpenAIBaseURL = val
	}

	if val := os.Getenv("LLM_PROVIDER"); val != "" {
		c.LLMProvider = val
	}
	if val := os.Getenv("LLM_MODEL"); val != "" {
		c.LLMModel = val
	}

	if val := os.Getenv("TARGET_REGION"); val != "" {
		c.TargetRegion = val
	}
	if val := os.Getenv("TOP_COMPETITORS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			c.TopCompetitors = n
		}
	}
	if val := os.Getenv("HISTORY_MONTHS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			c.HistoryMonths = n
		}
	}
	if val := os.Getenv("PROVIDER_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d > 0 {
			c.ProviderTimeout = d
		}
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.LogFormat = val
	}
}
