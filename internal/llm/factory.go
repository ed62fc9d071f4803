package llm

import (
	"context"
	"fmt"

	"feedbackservice/internal/config"
	"feedbackservice/internal/logging"
)

// NewFromConfig builds the client selected by LLM_PROVIDER.
func NewFromConfig(ctx context.Context, cfg *config.Config, logger *logging.Logger) (Client, error) {
	switch cfg.LLMProvider {
	case config.LLMProviderWorkersAI:
		return NewWorkersAIClient(WorkersAIConfig{
			BaseURL:   cfg.WorkersAIURL,
			AccountID: cfg.CloudflareAccountID,
			APIToken:  cfg.CloudflareAPIToken,
			Model:     cfg.LLMModel,
			Timeout:   cfg.LLMTimeout,
		}, logger), nil
	case config.LLMProviderGemini:
		model := cfg.LLMModel
		if model == config.DefaultWorkersAIModel {
			model = ""
		}
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, model)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}
