package services

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"slidecraft/internal/logger"
)

// OpenAIAdvisorClient implements the AdvisorClient interface on the OpenAI
// Chat Completions API. A custom base URL makes it work against any
// OpenAI-compatible endpoint (OpenRouter, the HuggingFace router, local
// inference servers), so it doubles as the generic compatible-provider
// client.
type OpenAIAdvisorClient struct {
	providerName string
	apiKey       string
	baseURL      string
	model        string
	client       *openai.Client
}

// NewOpenAIAdvisorClient creates a new OpenAI advisor client with lazy
// initialization. baseURL may be empty for the default OpenAI endpoint.
func NewOpenAIAdvisorClient(providerName, apiKey, baseURL, model string) *OpenAIAdvisorClient {
	if providerName == "" {
		providerName = "openai"
	}
	return &OpenAIAdvisorClient{
		providerName: providerName,
		apiKey:       apiKey,
		baseURL:      baseURL,
		model:        model,
		client:       nil, // Will be initialized lazily
	}
}

// ProviderName returns the provider name for this client.
func (c *OpenAIAdvisorClient) ProviderName() string {
	return c.providerName
}

// IsConfigured returns true if the client has a valid API key.
func (c *OpenAIAdvisorClient) IsConfigured() bool {
	return c.apiKey != ""
}

// initializeClientIfNeeded initializes the OpenAI client if it hasn't been initialized yet.
func (c *OpenAIAdvisorClient) initializeClientIfNeeded() error {
	if c.client != nil {
		return nil // Already initialized
	}

	if c.apiKey == "" {
		return fmt.Errorf("%s API key not configured", c.providerName)
	}

	opts := []option.RequestOption{option.WithAPIKey(c.apiKey)}
	if c.baseURL != "" {
		opts = append(opts, option.WithBaseURL(c.baseURL))
	}

	client := openai.NewClient(opts...)
	c.client = &client

	logger.Debug("OpenAI-compatible client initialized", "provider", c.providerName, "baseURL", c.baseURL)
	return nil
}

// Advise sends the deck summary to the chat completions endpoint and
// returns the raw advice text.
func (c *OpenAIAdvisorClient) Advise(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	logger.AdvisorCall(c.providerName, c.model)

	if err := c.initializeClientIfNeeded(); err != nil {
		return "", fmt.Errorf("failed to initialize %s client: %w", c.providerName, err)
	}

	messages := []openai.ChatCompletionMessageParamUnion{}
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(userPrompt))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: messages,
	})
	if err != nil {
		logger.Error("Chat completion request failed", "provider", c.providerName, "error", err)
		return "", fmt.Errorf("%s request failed: %w", c.providerName, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response content")
	}

	logger.Debug("Chat completion response received", "provider", c.providerName, "content_length", len(content))
	return content, nil
}
