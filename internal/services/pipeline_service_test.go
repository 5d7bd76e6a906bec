package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidecraft/internal/spec"
	"slidecraft/pkg/decktypes"
)

func newTestPipeline(t *testing.T) *DecisionPipelineService {
	t.Helper()
	pipeline := NewDecisionPipelineService()
	require.NoError(t, pipeline.Initialize())
	return pipeline
}

func healthcareSpec() spec.TemplateSpec {
	return spec.TemplateSpec{
		Tokens: map[string]any{},
		Layouts: []spec.Layout{
			{
				Name: "Opening",
				Placeholders: []spec.Placeholder{
					{ID: "title", Type: "title", Content: "Medical Platform Overview", Geometry: spec.Geometry{X: 0.1, Y: 0.1, W: 0.8, H: 0.15}},
					{ID: "body", Type: "body", Content: "Care coordination for hospitals\nBuilt with clinical teams", Geometry: spec.Geometry{X: 0.1, Y: 0.3, W: 0.8, H: 0.5}},
				},
			},
			{
				Name: "Adoption",
				Placeholders: []spec.Placeholder{
					{ID: "title", Type: "title", Content: "Adoption Metrics", Geometry: spec.Geometry{X: 0.1, Y: 0.1, W: 0.8, H: 0.15}},
					{ID: "body", Type: "body", Content: "Clinics onboarded: 40%\nRetention: 92%", Geometry: spec.Geometry{X: 0.1, Y: 0.3, W: 0.8, H: 0.5}},
				},
			},
		},
	}
}

func TestDecisionPipelineService_Name(t *testing.T) {
	pipeline := NewDecisionPipelineService()
	assert.Equal(t, "pipeline", pipeline.Name())
}

func TestDecisionPipelineService_PlanDeck(t *testing.T) {
	pipeline := newTestPipeline(t)

	plan, err := pipeline.PlanDeck(context.Background(), healthcareSpec())
	require.NoError(t, err)

	require.Len(t, plan.Decisions, 2)
	// Deck text mentions hospitals and clinical care, so the mock advisor
	// and theme scoring land on healthcare.
	assert.Equal(t, "Healthcare Professional", plan.Theme.Name)
	assert.Equal(t, "healthcare", plan.Suggestion.Industry)

	metrics := plan.Decisions[1]
	assert.Equal(t, decktypes.LayoutMetrics, metrics.Layout)
	require.NotNil(t, metrics.DataPattern)
	assert.Equal(t, decktypes.ChartPie, metrics.DataPattern.ChartType)
}

func TestDecisionPipelineService_PlanDeckFailsOnInvalidSpec(t *testing.T) {
	pipeline := newTestPipeline(t)

	_, err := pipeline.PlanDeck(context.Background(), spec.TemplateSpec{Tokens: map[string]any{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spec validation failed")
}

func TestDecisionPipelineService_TokenOverridesApplied(t *testing.T) {
	pipeline := newTestPipeline(t)

	s := healthcareSpec()
	s.Tokens["primary"] = "#123456"
	s.Tokens["accent"] = "not-a-color" // invalid override is reported by validation

	_, err := pipeline.PlanDeck(context.Background(), s)
	require.Error(t, err)

	delete(s.Tokens, "accent")
	plan, err := pipeline.PlanDeck(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "#123456", plan.Theme.Colors["primary"])

	// The catalog itself stays clean.
	fresh, ok := pipeline.ThemeSelector().GetTheme("healthcare")
	require.True(t, ok)
	assert.Equal(t, "#48BB78", fresh.Colors["primary"])
}

func TestDecisionPipelineService_DecideSlideDefaults(t *testing.T) {
	pipeline := newTestPipeline(t)

	decision := pipeline.DecideSlide(decktypes.SlideContent{}, "")

	assert.Equal(t, decktypes.LayoutSimple, decision.Layout)
	assert.Nil(t, decision.DataPattern)
	assert.NotEmpty(t, decision.ID)
	assert.GreaterOrEqual(t, decision.Analysis.VisualWeight, 0.1)
	assert.LessOrEqual(t, decision.Analysis.VisualWeight, 1.0)
}

func TestDecisionPipelineService_OverrideForcesLayout(t *testing.T) {
	pipeline := newTestPipeline(t)

	slide := decktypes.SlideContent{
		Title: "Quarterly Update",
		Items: []string{"One", "Two", "Three", "Four", "Five"},
	}
	decision := pipeline.DecideSlide(slide, "timeline")
	assert.Equal(t, decktypes.LayoutTimeline, decision.Layout)
}

func TestDecisionPipelineService_SpecLayoutNameAsOverride(t *testing.T) {
	pipeline := newTestPipeline(t)

	s := spec.TemplateSpec{
		Tokens: map[string]any{},
		Layouts: []spec.Layout{{
			Name: "grid",
			Placeholders: []spec.Placeholder{
				{ID: "title", Type: "title", Content: "Key Metrics", Geometry: spec.Geometry{X: 0.1, Y: 0.1, W: 0.8, H: 0.15}},
				{ID: "body", Type: "body", Content: "A: 40%\nB: 60%", Geometry: spec.Geometry{X: 0.1, Y: 0.3, W: 0.8, H: 0.5}},
			},
		}},
	}

	plan, err := pipeline.PlanDeck(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, decktypes.LayoutGrid, plan.Decisions[0].Layout)
}

func TestDecisionPipelineService_DecisionIDsUnique(t *testing.T) {
	pipeline := newTestPipeline(t)

	slide := decktypes.SlideContent{Title: "Notes", Items: []string{"a", "b"}}
	first := pipeline.DecideSlide(slide, "")
	second := pipeline.DecideSlide(slide, "")
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDecisionPipelineService_SingleProgressSurfaced(t *testing.T) {
	pipeline := newTestPipeline(t)

	slide := decktypes.SlideContent{
		Title: "Migration Status Results",
		Items: []string{"Completion: 85%", "On track for the cutover date"},
	}
	decision := pipeline.DecideSlide(slide, "")

	require.NotNil(t, decision.DataPattern)
	assert.Equal(t, decktypes.ChartNone, decision.DataPattern.ChartType)
	assert.True(t, decision.DataPattern.HasPercentages)
	assert.Equal(t, []float64{85}, decision.DataPattern.Values)
}
