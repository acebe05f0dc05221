package ai

import (
	"context"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// openAIProvider implements Provider over the Chat Completions API. It
// serves both the native OpenAI backend and OpenAI-compatible endpoints.
type openAIProvider struct {
	client openai.Client
	model  string
	name   string
}

func newOpenAIProvider(apiKey, baseURL, model, name string) *openAIProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &openAIProvider{
		client: openai.NewClient(opts...),
		model:  model,
		name:   name,
	}
}

func (p *openAIProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(content))

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: messages,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *openAIProvider) Name() string {
	return p.name
}
