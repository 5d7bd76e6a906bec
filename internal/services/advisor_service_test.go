package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidecraft/pkg/decktypes"
)

// stubAdvisorClient returns a fixed response or error.
type stubAdvisorClient struct {
	response   string
	err        error
	configured bool
}

func (s *stubAdvisorClient) Advise(_ context.Context, _, _ string) (string, error) {
	return s.response, s.err
}

func (s *stubAdvisorClient) ProviderName() string { return "stub" }
func (s *stubAdvisorClient) IsConfigured() bool   { return s.configured }

func testSlides() []decktypes.SlideContent {
	return []decktypes.SlideContent{
		{Title: "Platform Overview", Items: []string{"Cloud software for hospitals"}},
		{Title: "Roadmap", Items: []string{"Q1 2026: Pilot", "Q2 2026: Rollout"}},
	}
}

func TestAdvisorService_Name(t *testing.T) {
	service := NewAdvisorService(nil)
	assert.Equal(t, "advisor", service.Name())
}

func TestAdvisorService_ParsesPlainJSON(t *testing.T) {
	client := &stubAdvisorClient{
		configured: true,
		response:   `{"industry": "healthcare", "style": "clean", "formality": "business", "audience": "executives"}`,
	}
	service := NewAdvisorService(client)
	require.NoError(t, service.Initialize())

	suggestion := service.SuggestDesign(context.Background(), testSlides())
	assert.Equal(t, "healthcare", suggestion.Industry)
	assert.Equal(t, "clean", suggestion.Style)
}

func TestAdvisorService_ParsesFencedJSON(t *testing.T) {
	client := &stubAdvisorClient{
		configured: true,
		response:   "Here is my advice:\n```json\n{\"industry\": \"finance\", \"style\": \"traditional\"}\n```\nGood luck!",
	}
	service := NewAdvisorService(client)
	require.NoError(t, service.Initialize())

	suggestion := service.SuggestDesign(context.Background(), testSlides())
	assert.Equal(t, "finance", suggestion.Industry)
}

func TestAdvisorService_ParsesEmbeddedJSON(t *testing.T) {
	client := &stubAdvisorClient{
		configured: true,
		response:   `I recommend the following: {"industry": "startup", "style": "bold"} based on the content.`,
	}
	service := NewAdvisorService(client)
	require.NoError(t, service.Initialize())

	suggestion := service.SuggestDesign(context.Background(), testSlides())
	assert.Equal(t, "startup", suggestion.Industry)
}

func TestAdvisorService_FallbackOnError(t *testing.T) {
	client := &stubAdvisorClient{configured: true, err: errors.New("network down")}
	service := NewAdvisorService(client)
	require.NoError(t, service.Initialize())

	// Deck mentions hospitals, so the keyword fallback lands on healthcare.
	suggestion := service.SuggestDesign(context.Background(), []decktypes.SlideContent{
		{Title: "Medical Platform", Items: []string{"For hospitals"}},
	})
	assert.Equal(t, "healthcare", suggestion.Industry)
	assert.Equal(t, "professional", suggestion.Style)
}

func TestAdvisorService_FallbackOnGarbageResponse(t *testing.T) {
	client := &stubAdvisorClient{configured: true, response: "no json here at all"}
	service := NewAdvisorService(client)
	require.NoError(t, service.Initialize())

	suggestion := service.SuggestDesign(context.Background(), testSlides())
	assert.NotEmpty(t, suggestion.Industry)
	assert.Equal(t, "keyword fallback without advisor", suggestion.Reasoning)
}

func TestAdvisorService_FallbackWhenUnconfigured(t *testing.T) {
	client := &stubAdvisorClient{configured: false, response: `{"industry": "finance"}`}
	service := NewAdvisorService(client)
	require.NoError(t, service.Initialize())

	suggestion := service.SuggestDesign(context.Background(), []decktypes.SlideContent{
		{Title: "Security Briefing", Items: []string{"Cyber threats"}},
	})
	assert.Equal(t, "security", suggestion.Industry)
}

func TestAdvisorService_InitializeDefaultsToMock(t *testing.T) {
	service := NewAdvisorService(nil)
	require.NoError(t, service.Initialize())

	suggestion := service.SuggestDesign(context.Background(), testSlides())
	assert.NotEmpty(t, suggestion.Industry)
}

func TestMockAdvisorClient_Deterministic(t *testing.T) {
	client := NewMockAdvisorClient()
	assert.True(t, client.IsConfigured())
	assert.Equal(t, "mock", client.ProviderName())

	first, err := client.Advise(context.Background(), "sys", "A deck about investment banking for the board")
	require.NoError(t, err)
	second, err := client.Advise(context.Background(), "sys", "A deck about investment banking for the board")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	suggestion, err := parseSuggestion(first)
	require.NoError(t, err)
	assert.Equal(t, "finance", suggestion.Industry)
	assert.Equal(t, "executive", suggestion.Audience)
}

func TestFallbackSuggestion_DefaultsToCorporate(t *testing.T) {
	suggestion := FallbackSuggestion("a plain deck about gardening")
	assert.Equal(t, "corporate", suggestion.Industry)
}
