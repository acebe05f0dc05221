package ai

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 2048

type anthropicProvider struct {
	client anthropic.Client
	model  string
}

func newAnthropicProvider(apiKey, baseURL, model string) *anthropicProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &anthropicProvider{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

func (p *anthropicProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(content)),
		},
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			buf.WriteString(block.Text)
		}
	}
	return buf.String(), nil
}

func (p *anthropicProvider) Name() string {
	return ProviderAnthropic
}
