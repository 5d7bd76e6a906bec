package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"slidecraft/pkg/decktypes"
)

// MockAdvisorClient is a deterministic AdvisorClient for tests and offline
// runs. It answers from the prompt text alone: industry keywords in the deck
// summary decide the suggestion, so the same input always produces the same
// advice.
type MockAdvisorClient struct{}

// NewMockAdvisorClient creates a new mock advisor client.
func NewMockAdvisorClient() *MockAdvisorClient {
	return &MockAdvisorClient{}
}

// ProviderName returns the provider name for this client.
func (c *MockAdvisorClient) ProviderName() string {
	return "mock"
}

// IsConfigured always returns true; the mock needs no credentials.
func (c *MockAdvisorClient) IsConfigured() bool {
	return true
}

// Advise returns a canned JSON suggestion derived from keywords in the
// user prompt.
func (c *MockAdvisorClient) Advise(_ context.Context, _, userPrompt string) (string, error) {
	suggestion := decktypes.DesignSuggestion{
		Industry:  "corporate",
		Style:     "professional",
		Formality: "business",
		Audience:  "general",
		Reasoning: "mock advice derived from deck keywords",
	}

	lower := strings.ToLower(userPrompt)
	for _, rule := range industryRules {
		if containsAny(lower, rule.keywords) {
			suggestion.Industry = rule.theme
			break
		}
	}

	switch {
	case strings.Contains(lower, "executive") || strings.Contains(lower, "board"):
		suggestion.Audience = "executive"
		suggestion.Formality = "formal"
	case strings.Contains(lower, "engineer") || strings.Contains(lower, "developer"):
		suggestion.Audience = "technical"
	case strings.Contains(lower, "student") || strings.Contains(lower, "training"):
		suggestion.Audience = "student"
		suggestion.Formality = "casual"
	}

	payload, err := json.Marshal(suggestion)
	if err != nil {
		return "", fmt.Errorf("failed to marshal mock advice: %w", err)
	}
	return string(payload), nil
}
