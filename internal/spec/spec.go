// Package spec defines the slide template specification consumed by the
// decision engine, its JSON loader, and structural validation.
package spec

import "strings"

// TemplateSpec is the top-level input document: design tokens, global layout
// constraints, and the named slide layouts with their placeholders.
type TemplateSpec struct {
	Tokens      map[string]any `json:"tokens"`
	Constraints Constraints    `json:"constraints"`
	Layouts     []Layout       `json:"layouts"`
}

// Constraints holds global geometric constraints for all layouts.
type Constraints struct {
	// SafeMargin is the fraction of the slide reserved on every edge.
	// Zero means "use the default" (0.05).
	SafeMargin float64 `json:"safeMargin"`
}

// Layout is one named slide layout.
type Layout struct {
	Name         string        `json:"name"`
	Placeholders []Placeholder `json:"placeholders"`
}

// Placeholder is a content region within a layout. Geometry is normalized to
// the unit square. Content may be multi-line; lines become slide items.
type Placeholder struct {
	ID       string   `json:"id"`
	Type     string   `json:"type,omitempty"`
	Content  string   `json:"content,omitempty"`
	Geometry Geometry `json:"geometry"`
}

// Geometry is a normalized rectangle: all coordinates in [0, 1].
type Geometry struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// ValidationError reports one structural problem, addressed by a JSON path.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Title returns the layout's title text: the content of the first placeholder
// typed "title", falling back to the first line of the first placeholder.
func (l Layout) Title() string {
	for _, p := range l.Placeholders {
		if strings.EqualFold(p.Type, "title") {
			return strings.TrimSpace(p.Content)
		}
	}
	for _, p := range l.Placeholders {
		for _, line := range strings.Split(p.Content, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				return line
			}
		}
	}
	return ""
}

// Items returns the layout's body items: every non-title placeholder's
// content split on newlines, blank lines dropped, in placeholder order.
// When the title was derived from a body line rather than a typed title
// placeholder, that line is consumed by Title and excluded here.
func (l Layout) Items() []string {
	skipDerivedTitle := true
	for _, p := range l.Placeholders {
		if strings.EqualFold(p.Type, "title") {
			skipDerivedTitle = false
			break
		}
	}

	var items []string
	for _, p := range l.Placeholders {
		if strings.EqualFold(p.Type, "title") {
			continue
		}
		for _, line := range strings.Split(p.Content, "\n") {
			if line = strings.TrimSpace(line); line == "" {
				continue
			} else if skipDerivedTitle {
				skipDerivedTitle = false
				continue
			} else {
				items = append(items, line)
			}
		}
	}
	return items
}
