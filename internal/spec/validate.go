package spec

import (
	"fmt"
	"regexp"
)

// DefaultSafeMargin applies when a spec leaves constraints.safeMargin unset.
const DefaultSafeMargin = 0.05

// tokenColorKeys are the palette roles a spec token map may override.
var tokenColorKeys = []string{"primary", "secondary", "background", "text", "accent", "light"}

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validator checks a TemplateSpec for structural problems.
type Validator interface {
	Validate(spec TemplateSpec) []ValidationError
}

// DefaultValidator implements the standard structural checks: required
// fields, safe-margin containment, pairwise placeholder overlap, and hex
// format for token color overrides.
type DefaultValidator struct{}

// Validate returns every problem found; an empty slice means the spec is
// structurally sound.
func (v DefaultValidator) Validate(spec TemplateSpec) []ValidationError {
	var errors []ValidationError

	if spec.Tokens == nil {
		errors = append(errors, ValidationError{Path: "$.tokens", Message: "tokens is required"})
	} else {
		errors = append(errors, validateTokenColors(spec.Tokens)...)
	}

	if len(spec.Layouts) == 0 {
		errors = append(errors, ValidationError{Path: "$.layouts", Message: "layouts must be a non-empty array"})
		return errors
	}

	safeMargin := spec.Constraints.SafeMargin
	if safeMargin == 0 {
		safeMargin = DefaultSafeMargin
	}
	if safeMargin < 0 || safeMargin >= 0.5 {
		errors = append(errors, ValidationError{Path: "$.constraints.safeMargin", Message: "safeMargin must be in [0, 0.5)"})
		safeMargin = DefaultSafeMargin
	}

	for layoutIndex, layout := range spec.Layouts {
		layoutPath := fmt.Sprintf("$.layouts[%d]", layoutIndex)

		if layout.Name == "" {
			errors = append(errors, ValidationError{Path: layoutPath + ".name", Message: "name is required"})
		}

		if len(layout.Placeholders) == 0 {
			errors = append(errors, ValidationError{Path: layoutPath + ".placeholders", Message: "placeholders must be non-empty"})
			continue
		}

		rects := make([]rect, 0, len(layout.Placeholders))
		for placeholderIndex, placeholder := range layout.Placeholders {
			placeholderPath := fmt.Sprintf("%s.placeholders[%d]", layoutPath, placeholderIndex)
			if placeholder.ID == "" {
				errors = append(errors, ValidationError{Path: placeholderPath + ".id", Message: "id is required"})
			}

			x, y, w, h := placeholder.Geometry.X, placeholder.Geometry.Y, placeholder.Geometry.W, placeholder.Geometry.H
			if w <= 0 || h <= 0 {
				errors = append(errors, ValidationError{Path: placeholderPath + ".geometry", Message: "w and h must be > 0"})
				continue
			}

			if x < safeMargin || y < safeMargin {
				errors = append(errors, ValidationError{Path: placeholderPath + ".geometry", Message: "x/y must respect safe margins"})
			}
			if x+w > 1.0-safeMargin || y+h > 1.0-safeMargin {
				errors = append(errors, ValidationError{Path: placeholderPath + ".geometry", Message: "geometry must fit within safe margins"})
			}

			rects = append(rects, rect{x: x, y: y, w: w, h: h, id: placeholder.ID})
		}

		for i := 0; i < len(rects); i++ {
			for j := i + 1; j < len(rects); j++ {
				if rectsOverlap(rects[i], rects[j]) {
					errors = append(errors, ValidationError{Path: layoutPath, Message: fmt.Sprintf("placeholders overlap: %s and %s", rects[i].id, rects[j].id)})
				}
			}
		}
	}

	return errors
}

// validateTokenColors checks that any palette-role override in the token map
// is a 7-character #RRGGBB string.
func validateTokenColors(tokens map[string]any) []ValidationError {
	var errors []ValidationError
	for _, key := range tokenColorKeys {
		raw, ok := tokens[key]
		if !ok {
			continue
		}
		value, ok := raw.(string)
		if !ok || !hexColorPattern.MatchString(value) {
			errors = append(errors, ValidationError{
				Path:    "$.tokens." + key,
				Message: fmt.Sprintf("color override must be a #RRGGBB string, got %v", raw),
			})
		}
	}
	return errors
}

// ColorOverrides extracts the valid hex color overrides from a token map.
// Invalid entries are skipped; Validate reports them separately.
func ColorOverrides(tokens map[string]any) map[string]string {
	overrides := make(map[string]string)
	for _, key := range tokenColorKeys {
		if value, ok := tokens[key].(string); ok && hexColorPattern.MatchString(value) {
			overrides[key] = value
		}
	}
	return overrides
}

type rect struct {
	x, y, w, h float64
	id         string
}

func rectsOverlap(a rect, b rect) bool {
	// Touching edges is allowed.
	if a.x+a.w <= b.x || b.x+b.w <= a.x {
		return false
	}
	if a.y+a.h <= b.y || b.y+b.h <= a.y {
		return false
	}
	return true
}
