package llm

import (
	"context"
	"fmt"

	"github.com/vr-tejas/Stockmind/internal/config"
)

// Generator produces free-form text from a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the generator selected by cfg.LLMProvider. Gemini is the
// default; "openai" and "deepseek" use the OpenAI-compatible chat model.
func New(ctx context.Context, cfg *config.Config) (Generator, error) {
	switch cfg.LLMProvider {
	case "", "gemini":
		return NewGemini(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
	case "openai", "deepseek":
		return NewOpenAI(ctx, cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.LLMModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
