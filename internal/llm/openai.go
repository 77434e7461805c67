package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/schema"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAI generates text through any OpenAI-compatible chat endpoint,
// including DeepSeek via its base URL.
type OpenAI struct {
	model *openai.ChatModel
}

// NewOpenAI creates an OpenAI-compatible generator.
func NewOpenAI(ctx context.Context, baseURL, apiKey, modelName string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required (set OPENAI_API_KEY)")
	}
	if modelName == "" {
		modelName = defaultOpenAIModel
	}

	maxTokens := 2048
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		Model:     modelName,
		MaxTokens: &maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize chat model: %w", err)
	}

	return &OpenAI{model: chatModel}, nil
}

// Generate submits prompt as a single user message and returns the
// assistant's reply content.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := o.model.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return "", fmt.Errorf("chat generation: %w", err)
	}
	if msg == nil || msg.Content == "" {
		return "", fmt.Errorf("chat model returned an empty response")
	}
	return msg.Content, nil
}
