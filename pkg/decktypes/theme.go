package decktypes

// TextStyle describes how one text role (title, body, caption) is rendered.
// Color names a semantic color role from the theme palette, not a hex value.
type TextStyle struct {
	Font  string `json:"font" yaml:"font"`
	Size  int    `json:"size" yaml:"size"`
	Bold  bool   `json:"bold" yaml:"bold"`
	Color string `json:"color" yaml:"color"`
}

// BackgroundDesign describes the decorative background pattern of a theme.
type BackgroundDesign struct {
	Type      string  `json:"type" yaml:"type"`
	Primary   string  `json:"primary" yaml:"primary"`
	Secondary string  `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Opacity   float64 `json:"opacity" yaml:"opacity"`
}

// Watermark describes an optional repeated mark drawn behind slide content.
type Watermark struct {
	Type    string  `json:"type" yaml:"type"`
	Content string  `json:"content" yaml:"content"`
	Opacity float64 `json:"opacity" yaml:"opacity"`
}

// DesignTheme bundles the palette, typography, and background style applied
// uniformly to a generated deck. Catalog entries are never mutated: resolving
// a theme hands callers a copy, and overrides apply to the copy only.
type DesignTheme struct {
	Key         string               `json:"key" yaml:"key"`
	Name        string               `json:"name" yaml:"name"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Colors      map[string]string    `json:"colors" yaml:"colors"`
	Typography  map[string]TextStyle `json:"typography" yaml:"typography"`
	Background  *BackgroundDesign    `json:"background,omitempty" yaml:"background,omitempty"`
	Watermark   *Watermark           `json:"watermark,omitempty" yaml:"watermark,omitempty"`
}

// ThemeFile is the on-disk YAML shape of one embedded catalog entry.
type ThemeFile struct {
	Theme DesignTheme `yaml:"theme"`
}

// Clone returns a deep copy of the theme. Map fields are copied so that
// per-deck overrides never leak back into the shared catalog.
func (t DesignTheme) Clone() DesignTheme {
	out := t
	if t.Colors != nil {
		out.Colors = make(map[string]string, len(t.Colors))
		for k, v := range t.Colors {
			out.Colors[k] = v
		}
	}
	if t.Typography != nil {
		out.Typography = make(map[string]TextStyle, len(t.Typography))
		for k, v := range t.Typography {
			out.Typography[k] = v
		}
	}
	if t.Background != nil {
		bg := *t.Background
		out.Background = &bg
	}
	if t.Watermark != nil {
		wm := *t.Watermark
		out.Watermark = &wm
	}
	return out
}

// Color returns the hex value for a semantic color role, falling back to the
// text color and finally to black so rendering never sees an empty color.
func (t DesignTheme) Color(role string) string {
	if v, ok := t.Colors[role]; ok {
		return v
	}
	if v, ok := t.Colors["text"]; ok {
		return v
	}
	return "#000000"
}
