package spec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidator_ValidSpec(t *testing.T) {
	v := DefaultValidator{}

	s := TemplateSpec{
		Tokens:      map[string]any{"primary": "#3366FF"},
		Constraints: Constraints{SafeMargin: 0.05},
		Layouts: []Layout{{
			Name: "Title",
			Placeholders: []Placeholder{
				{ID: "title", Geometry: Geometry{X: 0.1, Y: 0.2, W: 0.8, H: 0.2}},
				{ID: "subtitle", Geometry: Geometry{X: 0.1, Y: 0.45, W: 0.8, H: 0.15}},
			},
		}},
	}

	errs := v.Validate(s)
	assert.Empty(t, errs)
}

func TestDefaultValidator_MissingTokens(t *testing.T) {
	v := DefaultValidator{}

	s := TemplateSpec{
		Layouts: []Layout{{
			Name: "Title",
			Placeholders: []Placeholder{
				{ID: "title", Geometry: Geometry{X: 0.1, Y: 0.2, W: 0.8, H: 0.2}},
			},
		}},
	}

	errs := v.Validate(s)
	require.NotEmpty(t, errs)
	assert.Equal(t, "$.tokens", errs[0].Path)
}

func TestDefaultValidator_EmptyLayouts(t *testing.T) {
	v := DefaultValidator{}

	errs := v.Validate(TemplateSpec{Tokens: map[string]any{}})
	require.Len(t, errs, 1)
	assert.Equal(t, "$.layouts", errs[0].Path)
}

func TestDefaultValidator_SafeMarginRange(t *testing.T) {
	v := DefaultValidator{}

	s := TemplateSpec{
		Tokens:      map[string]any{},
		Constraints: Constraints{SafeMargin: 0.7},
		Layouts: []Layout{{
			Name: "Title",
			Placeholders: []Placeholder{
				{ID: "title", Geometry: Geometry{X: 0.1, Y: 0.2, W: 0.8, H: 0.2}},
			},
		}},
	}

	errs := v.Validate(s)
	found := false
	for _, e := range errs {
		if e.Path == "$.constraints.safeMargin" {
			found = true
		}
	}
	assert.True(t, found, "expected safeMargin range error, got: %+v", errs)
}

func TestDefaultValidator_DefaultSafeMarginApplied(t *testing.T) {
	v := DefaultValidator{}

	// x=0.02 breaks the default 0.05 margin even though SafeMargin is unset.
	s := TemplateSpec{
		Tokens: map[string]any{},
		Layouts: []Layout{{
			Name: "Tight",
			Placeholders: []Placeholder{
				{ID: "body", Geometry: Geometry{X: 0.02, Y: 0.2, W: 0.8, H: 0.2}},
			},
		}},
	}

	errs := v.Validate(s)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "safe margins")
}

func TestDefaultValidator_Overlap(t *testing.T) {
	v := DefaultValidator{}

	s := TemplateSpec{
		Tokens:      map[string]any{},
		Constraints: Constraints{SafeMargin: 0.05},
		Layouts: []Layout{{
			Name: "Bad",
			Placeholders: []Placeholder{
				{ID: "a", Geometry: Geometry{X: 0.1, Y: 0.2, W: 0.6, H: 0.3}},
				{ID: "b", Geometry: Geometry{X: 0.5, Y: 0.3, W: 0.4, H: 0.3}},
			},
		}},
	}

	errs := v.Validate(s)
	found := false
	for _, e := range errs {
		if e.Path == "$.layouts[0]" && strings.Contains(e.Message, "overlap") {
			found = true
			break
		}
	}
	assert.True(t, found, "expected overlap error, got: %+v", errs)
}

func TestDefaultValidator_TouchingEdgesAllowed(t *testing.T) {
	v := DefaultValidator{}

	s := TemplateSpec{
		Tokens:      map[string]any{},
		Constraints: Constraints{SafeMargin: 0.05},
		Layouts: []Layout{{
			Name: "Adjacent",
			Placeholders: []Placeholder{
				{ID: "left", Geometry: Geometry{X: 0.1, Y: 0.2, W: 0.4, H: 0.3}},
				{ID: "right", Geometry: Geometry{X: 0.5, Y: 0.2, W: 0.4, H: 0.3}},
			},
		}},
	}

	errs := v.Validate(s)
	assert.Empty(t, errs)
}

func TestDefaultValidator_ZeroAreaGeometry(t *testing.T) {
	v := DefaultValidator{}

	s := TemplateSpec{
		Tokens: map[string]any{},
		Layouts: []Layout{{
			Name: "Flat",
			Placeholders: []Placeholder{
				{ID: "line", Geometry: Geometry{X: 0.1, Y: 0.2, W: 0.8, H: 0}},
			},
		}},
	}

	errs := v.Validate(s)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "w and h must be > 0")
}

func TestDefaultValidator_TokenColorFormat(t *testing.T) {
	v := DefaultValidator{}

	s := TemplateSpec{
		Tokens: map[string]any{"primary": "blue", "accent": "#D69E2E"},
		Layouts: []Layout{{
			Name: "Title",
			Placeholders: []Placeholder{
				{ID: "title", Geometry: Geometry{X: 0.1, Y: 0.2, W: 0.8, H: 0.2}},
			},
		}},
	}

	errs := v.Validate(s)
	require.Len(t, errs, 1)
	assert.Equal(t, "$.tokens.primary", errs[0].Path)
}

func TestColorOverrides_FiltersInvalid(t *testing.T) {
	tokens := map[string]any{
		"primary": "#3366FF",
		"accent":  "gold",
		"title":   "Quarterly Review", // not a color role
	}

	overrides := ColorOverrides(tokens)
	assert.Equal(t, map[string]string{"primary": "#3366FF"}, overrides)
}
