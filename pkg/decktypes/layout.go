package decktypes

import "strings"

// LayoutPattern names one of the structural arrangements a slide's body
// content can be mapped to.
type LayoutPattern string

// The ten known layout patterns. An explicit layout name on the input that
// matches one of these (case-insensitive) overrides auto-detection.
const (
	LayoutTitle       LayoutPattern = "title"
	LayoutQuote       LayoutPattern = "quote"
	LayoutTimeline    LayoutPattern = "timeline"
	LayoutHierarchy   LayoutPattern = "hierarchy"
	LayoutComparison  LayoutPattern = "comparison"
	LayoutMetrics     LayoutPattern = "metrics"
	LayoutTable       LayoutPattern = "table"
	LayoutGrid        LayoutPattern = "grid"
	LayoutMultiColumn LayoutPattern = "multi_column"
	LayoutSimple      LayoutPattern = "simple"
)

// KnownLayoutPatterns lists every pattern name in a stable order.
func KnownLayoutPatterns() []LayoutPattern {
	return []LayoutPattern{
		LayoutTitle, LayoutQuote, LayoutTimeline, LayoutHierarchy,
		LayoutComparison, LayoutMetrics, LayoutTable, LayoutGrid,
		LayoutMultiColumn, LayoutSimple,
	}
}

// ParseLayoutPattern resolves a layout name to a known pattern,
// case-insensitively. The second return is false for unknown names.
func ParseLayoutPattern(name string) (LayoutPattern, bool) {
	candidate := LayoutPattern(strings.ToLower(strings.TrimSpace(name)))
	for _, p := range KnownLayoutPatterns() {
		if candidate == p {
			return p, true
		}
	}
	return "", false
}

// FontSet holds the computed point sizes for one slide.
type FontSet struct {
	Title   int `json:"title"`
	Body    int `json:"body"`
	Caption int `json:"caption"`
}

// Region is a rectangle in the same coordinate space as the input geometry.
type Region struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LayoutDecision is the full design decision for one slide, produced and
// consumed within a single render pass and never shared across slides.
type LayoutDecision struct {
	ID          string         `json:"id"`
	Layout      LayoutPattern  `json:"layout_pattern"`
	FontSizes   FontSet        `json:"font_sizes"`
	BodyRegion  Region         `json:"body_region"`
	DataPattern *DataPattern   `json:"data_pattern,omitempty"`
	Analysis    ContentAnalysis `json:"analysis"`
}
