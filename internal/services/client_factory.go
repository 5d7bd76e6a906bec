package services

import (
	"os"

	"slidecraft/internal/config"
	"slidecraft/internal/logger"
	"slidecraft/pkg/decktypes"
)

// Default models per provider when the configuration names none.
const (
	defaultOpenAIModel      = "gpt-4o-mini"
	defaultAnthropicModel   = "claude-sonnet-4-20250514"
	defaultHuggingFaceModel = "meta-llama/Llama-3.1-8B-Instruct"

	huggingFaceRouterURL = "https://router.huggingface.co/v1"
)

// NewAdvisorClient builds the AdvisorClient for the configured provider.
// API keys come from the environment (OPENAI_API_KEY, ANTHROPIC_API_KEY,
// HF_TOKEN); unknown providers fall back to the deterministic mock so a
// bad configuration degrades to offline advice instead of failing the run.
func NewAdvisorClient(cfg *config.Config) decktypes.AdvisorClient {
	switch cfg.AdvisorProvider {
	case "openai":
		model := cfg.AdvisorModel
		if model == "" {
			model = defaultOpenAIModel
		}
		return NewOpenAIAdvisorClient("openai", os.Getenv("OPENAI_API_KEY"), cfg.AdvisorBaseURL, model)

	case "anthropic":
		model := cfg.AdvisorModel
		if model == "" {
			model = defaultAnthropicModel
		}
		return NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"), model)

	case "huggingface":
		model := cfg.AdvisorModel
		if model == "" {
			model = defaultHuggingFaceModel
		}
		baseURL := cfg.AdvisorBaseURL
		if baseURL == "" {
			baseURL = huggingFaceRouterURL
		}
		return NewOpenAIAdvisorClient("huggingface", os.Getenv("HF_TOKEN"), baseURL, model)

	case "mock":
		return NewMockAdvisorClient()

	default:
		logger.Warn("Unknown advisor provider, using mock", "provider", cfg.AdvisorProvider)
		return NewMockAdvisorClient()
	}
}
