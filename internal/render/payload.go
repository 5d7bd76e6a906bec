// Package render defines the handoff contract between the decision engine
// and a rendering surface. The engine never draws: it emits a payload per
// slide and the renderer translates it into primitives.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"slidecraft/pkg/decktypes"
)

// Payload is the complete per-slide instruction set for a renderer:
// the layout decision, the slide's position in the deck, and the resolved
// theme with the text color that contrasts with the theme background.
type Payload struct {
	SlideIndex int                            `json:"slide_index"`
	SlideCount int                            `json:"slide_count"`
	Decision   decktypes.LayoutDecision       `json:"decision"`
	ThemeKey   string                         `json:"theme_key"`
	ThemeName  string                         `json:"theme_name"`
	Colors     map[string]string              `json:"colors"`
	Typography map[string]decktypes.TextStyle `json:"typography,omitempty"`
	TextColor  string                         `json:"text_color"`
}

// BuildPayload assembles a renderer payload from one slide's decision and
// the deck theme. textColor is the contrast color computed against the
// theme background; it travels with the payload so renderers do not repeat
// the computation.
func BuildPayload(decision decktypes.LayoutDecision, theme decktypes.DesignTheme, textColor string) Payload {
	colors := make(map[string]string, len(theme.Colors))
	for role, hex := range theme.Colors {
		colors[role] = hex
	}
	var typography map[string]decktypes.TextStyle
	if len(theme.Typography) > 0 {
		typography = make(map[string]decktypes.TextStyle, len(theme.Typography))
		for role, style := range theme.Typography {
			typography[role] = style
		}
	}
	return Payload{
		Decision:   decision,
		ThemeKey:   theme.Key,
		ThemeName:  theme.Name,
		Colors:     colors,
		Typography: typography,
		TextColor:  textColor,
	}
}

// Marshal encodes the payload as JSON for transport to a renderer.
func (p Payload) Marshal() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode renderer payload: %w", err)
	}
	return data, nil
}

// ParsePayload decodes a renderer payload produced by Marshal. Unknown
// fields are rejected so drift between engine and renderer surfaces fails
// loudly instead of silently dropping data.
func ParsePayload(data []byte) (Payload, error) {
	var payload Payload
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return Payload{}, fmt.Errorf("failed to decode renderer payload: %w", err)
	}
	return payload, nil
}
