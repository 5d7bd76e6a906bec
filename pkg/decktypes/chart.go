package decktypes

// ChartType identifies which chart, if any, fits a slide's numeric content.
type ChartType string

// Chart kinds in resolution priority order: percentages with at least two
// points map to pie, a timeline with at least two points to line, any other
// series of two or more points to bar, everything else to none.
const (
	ChartPie  ChartType = "pie"
	ChartLine ChartType = "line"
	ChartBar  ChartType = "bar"
	ChartNone ChartType = "none"
)

// DataPattern describes chartable data inferred from slide text.
//
// Values and Labels are always the same length, in input order. A single
// percentage point is surfaced as ChartNone with HasPercentages set: the
// renderer draws a progress indicator for that case rather than a chart.
type DataPattern struct {
	ChartType      ChartType `json:"chart_type"`
	Values         []float64 `json:"values,omitempty"`
	Labels         []string  `json:"labels,omitempty"`
	HasPercentages bool      `json:"has_percentages"`
	HasTimeline    bool      `json:"has_timeline"`
}

// HasChart reports whether the pattern resolved to a drawable chart.
func (p DataPattern) HasChart() bool {
	return p.ChartType != ChartNone && p.ChartType != ""
}
