package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"slidecraft/internal/logger"
	"slidecraft/pkg/decktypes"
)

const advisorSystemPrompt = "You are a presentation design strategist. " +
	"Given slide content, recommend a design direction as JSON with the keys " +
	"industry, style, formality, audience, and reasoning. Return only JSON."

// advisorSampleSlides bounds how much deck content goes into the prompt.
const advisorSampleSlides = 5

// AdvisorService asks an LLM backend for a deck-level design direction and
// parses the response into a DesignSuggestion. Any failure (no credentials,
// network error, unparseable response) degrades to a local keyword-based
// suggestion, so the pipeline never blocks on the advisor.
type AdvisorService struct {
	initialized bool
	client      decktypes.AdvisorClient
}

// NewAdvisorService creates a new AdvisorService using the given client.
func NewAdvisorService(client decktypes.AdvisorClient) *AdvisorService {
	return &AdvisorService{initialized: false, client: client}
}

// Name returns the service name "advisor" for registration.
func (a *AdvisorService) Name() string {
	return "advisor"
}

// Initialize sets up the AdvisorService for operation.
func (a *AdvisorService) Initialize() error {
	if a.client == nil {
		a.client = NewMockAdvisorClient()
	}
	a.initialized = true
	return nil
}

// SetClient swaps the advisor backend. Used by the CLI after configuration
// is loaded.
func (a *AdvisorService) SetClient(client decktypes.AdvisorClient) {
	a.client = client
}

// SuggestDesign returns a design direction for the deck. The advisor is
// consulted when configured; otherwise, or on any error, the local fallback
// answers.
func (a *AdvisorService) SuggestDesign(ctx context.Context, slides []decktypes.SlideContent) decktypes.DesignSuggestion {
	if !a.initialized {
		logger.Warn("AdvisorService used before initialization")
	}

	summary := summarizeDeck(slides)

	if a.client == nil || !a.client.IsConfigured() {
		logger.Debug("Advisor not configured, using local fallback")
		return FallbackSuggestion(summary)
	}

	raw, err := a.client.Advise(ctx, advisorSystemPrompt, buildAdvicePrompt(slides, summary))
	if err != nil {
		logger.Warn("Advisor call failed, using local fallback", "provider", a.client.ProviderName(), "error", err)
		return FallbackSuggestion(summary)
	}

	suggestion, err := parseSuggestion(raw)
	if err != nil {
		logger.Warn("Advisor response unparseable, using local fallback", "error", err)
		return FallbackSuggestion(summary)
	}

	logger.ServiceOperation("advisor", "suggest",
		"provider", a.client.ProviderName(),
		"industry", suggestion.Industry,
		"style", suggestion.Style)
	return suggestion
}

// buildAdvicePrompt renders the first few slides plus a combined summary
// into the user prompt.
func buildAdvicePrompt(slides []decktypes.SlideContent, summary string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total slides: %d\n\n", len(slides))

	limit := len(slides)
	if limit > advisorSampleSlides {
		limit = advisorSampleSlides
	}
	for _, slide := range slides[:limit] {
		fmt.Fprintf(&b, "Title: %s\nContent: %s\n\n", slide.Title, strings.Join(slide.Items, "; "))
	}

	b.WriteString("Summary text: ")
	b.WriteString(summary)
	return b.String()
}

// parseSuggestion extracts JSON from an advice response, tolerating fenced
// code blocks and surrounding prose.
func parseSuggestion(raw string) (decktypes.DesignSuggestion, error) {
	content := strings.TrimSpace(raw)

	if idx := strings.Index(content, "```json"); idx >= 0 {
		content = content[idx+len("```json"):]
		if end := strings.Index(content, "```"); end >= 0 {
			content = content[:end]
		}
	} else if start := strings.Index(content, "{"); start >= 0 {
		if end := strings.LastIndex(content, "}"); end > start {
			content = content[start : end+1]
		}
	}

	var suggestion decktypes.DesignSuggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &suggestion); err != nil {
		return decktypes.DesignSuggestion{}, fmt.Errorf("failed to parse advice: %w", err)
	}
	if suggestion.Industry == "" && suggestion.Style == "" {
		return decktypes.DesignSuggestion{}, fmt.Errorf("advice carries no usable signals")
	}
	return suggestion, nil
}

// FallbackSuggestion derives a design direction from deck text alone:
// industry by keyword scan, neutral style and formality.
func FallbackSuggestion(summary string) decktypes.DesignSuggestion {
	lower := strings.ToLower(summary)

	industry := "corporate"
	for _, rule := range industryRules {
		if containsAny(lower, rule.keywords) {
			industry = rule.theme
			break
		}
	}

	return decktypes.DesignSuggestion{
		Industry:  industry,
		Style:     "professional",
		Formality: "business",
		Audience:  "general",
		Reasoning: "keyword fallback without advisor",
	}
}

func summarizeDeck(slides []decktypes.SlideContent) string {
	var parts []string
	for _, slide := range slides {
		parts = append(parts, slide.Title)
		parts = append(parts, slide.Items...)
	}
	return strings.Join(parts, " ")
}

func init() {
	// Registered with the mock backend; the CLI swaps in the configured
	// client after config load.
	if err := GlobalRegistry.RegisterService(NewAdvisorService(nil)); err != nil {
		panic(fmt.Sprintf("failed to register advisor service: %v", err))
	}
}
