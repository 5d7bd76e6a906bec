package services

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"slidecraft/internal/logger"
)

// advisorMaxTokens caps advice responses; a design suggestion is small.
const advisorMaxTokens = 1024

// AnthropicClient implements the AdvisorClient interface for Anthropic's API.
// It provides lazy initialization of the Anthropic client and handles all
// Anthropic-specific communication logic.
type AnthropicClient struct {
	apiKey string
	model  string
	client *anthropic.Client
}

// NewAnthropicClient creates a new Anthropic client with lazy initialization.
// The actual Anthropic client is created only when the first request is made.
func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	return &AnthropicClient{
		apiKey: apiKey,
		model:  model,
		client: nil, // Will be initialized lazily
	}
}

// ProviderName returns the provider name for this client.
func (c *AnthropicClient) ProviderName() string {
	return "anthropic"
}

// IsConfigured returns true if the client has a valid API key.
func (c *AnthropicClient) IsConfigured() bool {
	return c.apiKey != ""
}

// initializeClientIfNeeded initializes the Anthropic client if it hasn't been initialized yet.
func (c *AnthropicClient) initializeClientIfNeeded() error {
	if c.client != nil {
		return nil // Already initialized
	}

	if c.apiKey == "" {
		return fmt.Errorf("anthropic API key not configured")
	}

	client := anthropic.NewClient(option.WithAPIKey(c.apiKey))
	c.client = &client

	logger.Debug("Anthropic client initialized", "provider", "anthropic")
	return nil
}

// Advise sends the deck summary to Anthropic and returns the raw advice text.
func (c *AnthropicClient) Advise(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	logger.AdvisorCall("anthropic", c.model)

	if err := c.initializeClientIfNeeded(); err != nil {
		return "", fmt.Errorf("failed to initialize Anthropic client: %w", err)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: advisorMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: systemPrompt},
		}
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		logger.Error("Anthropic request failed", "error", err)
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("no response content returned")
	}

	// Concatenate all text blocks
	var content string
	for _, block := range message.Content {
		content += block.Text
	}

	if content == "" {
		return "", fmt.Errorf("empty response content")
	}

	logger.Debug("Anthropic response received", "content_length", len(content))
	return content, nil
}
