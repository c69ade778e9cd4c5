package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/abhisek/paomind/internal/config"
)

// Supported provider names.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// defaultModels is used when no model is configured.
var defaultModels = map[string]string{
	ProviderAnthropic:  "claude-sonnet",
	ProviderOpenAI:     "gpt-4o",
	ProviderGemini:     "gemini-flash",
	ProviderOpenRouter: "google/gemini-2.0-flash-exp",
}

// keyEnv lists the vendor API key variables probed when no provider is
// configured, in priority order.
var keyEnv = []struct {
	provider string
	env      string
}{
	{ProviderAnthropic, "ANTHROPIC_API_KEY"},
	{ProviderOpenAI, "OPENAI_API_KEY"},
	{ProviderGemini, "GEMINI_API_KEY"},
	{ProviderOpenRouter, "OPENROUTER_API_KEY"},
}

// Config holds the settings for one provider.
type Config struct {
	Provider  string
	Model     string
	APIKey    string
	BaseURL   string
	MaxTokens int

	// Timeout bounds a whole generation, retries included.
	Timeout time.Duration
	Retry   RetryConfig
}

// FromSettings builds a Config from loaded application settings. When the
// settings name no provider, the vendor key variables are probed; ok is false
// when nothing usable was found.
func FromSettings(s config.LLM) (cfg Config, ok bool) {
	cfg = Config{
		Provider:  s.Provider,
		Model:     s.Model,
		APIKey:    s.APIKey,
		BaseURL:   s.BaseURL,
		MaxTokens: s.MaxTokens,
		Timeout:   s.Timeout,
		Retry:     DefaultRetry(s.MaxAttempts),
	}

	if cfg.Provider == "" {
		for _, k := range keyEnv {
			if v := os.Getenv(k.env); v != "" {
				cfg.Provider = k.provider
				if cfg.APIKey == "" {
					cfg.APIKey = v
				}
				break
			}
		}
	}
	if cfg.Provider == "" {
		return Config{}, false
	}
	if cfg.APIKey == "" {
		for _, k := range keyEnv {
			if k.provider == cfg.Provider {
				cfg.APIKey = os.Getenv(k.env)
			}
		}
	}
	if cfg.Model == "" {
		cfg.Model = defaultModels[cfg.Provider]
	}
	return cfg, true
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter:
		if c.APIKey == "" {
			return fmt.Errorf("an API key is required for the %s provider (set PAOMIND_LLM_API_KEY)", c.Provider)
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	return nil
}
