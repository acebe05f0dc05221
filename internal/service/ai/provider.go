// Package ai wraps the generative-language backends behind a single
// Provider interface.
package ai

import (
	"context"
	"errors"
)

const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrMissingAPIKey   = errors.New("missing API key")
	ErrMissingModel    = errors.New("missing model")
	ErrMissingBaseURL  = errors.New("missing base URL")
	ErrInvalidProvider = errors.New("invalid provider")
)

// Config selects and configures a generation backend.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// Provider is a generation backend. Complete returns the raw generated text;
// callers own validation and fallback.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
	Name() string
}

// NewProvider creates a Provider from config. ProviderCompatible talks the
// OpenAI wire protocol against a custom base URL, which covers Gemini's
// OpenAI-compatible endpoint.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI, "":
		return newOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, ProviderOpenAI), nil
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return newOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, ProviderCompatible), nil
	case ProviderAnthropic:
		return newAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, ErrInvalidProvider
	}
}
