package decktypes

import "context"

// Service defines the minimal lifecycle contract all engine services satisfy.
// Services register once, initialize once, and are safe for concurrent use
// after Initialize returns.
type Service interface {
	// Name returns the service's registry name.
	Name() string

	// Initialize sets up the service before first use.
	Initialize() error
}

// DesignSuggestion is the advisor's verdict on how a deck should look.
// Industry and Style are catalog keys; Formality and Audience feed the
// theme scoring weights.
type DesignSuggestion struct {
	Industry  string `json:"industry"`
	Style     string `json:"style"`
	Formality string `json:"formality"`
	Audience  string `json:"audience"`
	Reasoning string `json:"reasoning,omitempty"`
}

// AdvisorClient abstracts an LLM backend used for design advice.
// Implementations are lazy: construction never dials the network, and
// IsConfigured reports whether credentials are available before any call.
type AdvisorClient interface {
	// Advise sends the deck summary to the backend and returns raw advice
	// text for the caller to parse.
	Advise(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// ProviderName identifies the backing provider ("openai", "anthropic",
	// "mock", ...).
	ProviderName() string

	// IsConfigured reports whether the client has what it needs to talk to
	// its backend.
	IsConfigured() bool
}
