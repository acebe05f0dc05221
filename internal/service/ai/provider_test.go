package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tradeops/backend/internal/service/ai"
)

func TestNewProvider_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  ai.Config
		want error
	}{
		{
			name: "missing api key",
			cfg:  ai.Config{Provider: ai.ProviderOpenAI, Model: "gpt-4o-mini"},
			want: ai.ErrMissingAPIKey,
		},
		{
			name: "missing model",
			cfg:  ai.Config{Provider: ai.ProviderOpenAI, APIKey: "sk-test"},
			want: ai.ErrMissingModel,
		},
		{
			name: "compatible without base URL",
			cfg:  ai.Config{Provider: ai.ProviderCompatible, APIKey: "key", Model: "gemini-1.5-flash"},
			want: ai.ErrMissingBaseURL,
		},
		{
			name: "unknown provider",
			cfg:  ai.Config{Provider: "bard", APIKey: "key", Model: "m"},
			want: ai.ErrInvalidProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ai.NewProvider(tt.cfg)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, p)
		})
	}
}

func TestNewProvider_Names(t *testing.T) {
	tests := []struct {
		name string
		cfg  ai.Config
		want string
	}{
		{
			name: "openai",
			cfg:  ai.Config{Provider: ai.ProviderOpenAI, APIKey: "key", Model: "gpt-4o-mini"},
			want: ai.ProviderOpenAI,
		},
		{
			name: "empty provider defaults to openai",
			cfg:  ai.Config{APIKey: "key", Model: "gpt-4o-mini"},
			want: ai.ProviderOpenAI,
		},
		{
			name: "compatible",
			cfg: ai.Config{
				Provider: ai.ProviderCompatible,
				APIKey:   "key",
				Model:    "gemini-1.5-flash",
				BaseURL:  "https://generativelanguage.googleapis.com/v1beta/openai/",
			},
			want: ai.ProviderCompatible,
		},
		{
			name: "anthropic",
			cfg:  ai.Config{Provider: ai.ProviderAnthropic, APIKey: "key", Model: "claude-sonnet-4-5"},
			want: ai.ProviderAnthropic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ai.NewProvider(tt.cfg)
			require.NoError(t, err)
			require.Equal(t, tt.want, p.Name())
		})
	}
}
