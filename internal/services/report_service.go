package services

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"slidecraft/internal/logger"
	"slidecraft/pkg/decktypes"
)

// ReportService renders a deck plan as a human-readable decision report.
// The report is plain markdown; rendering to ANSI terminal output goes
// through Glamour so it reads well in the terminal.
type ReportService struct {
	initialized bool
	renderer    *glamour.TermRenderer
}

// NewReportService creates a new ReportService instance.
func NewReportService() *ReportService {
	return &ReportService{}
}

// Name returns the service name "report" for registration.
func (r *ReportService) Name() string {
	return "report"
}

// Initialize sets up the Glamour renderer with auto-style detection.
func (r *ReportService) Initialize() error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create report renderer: %w", err)
	}

	r.renderer = renderer
	r.initialized = true

	logger.Debug("ReportService initialized successfully")
	return nil
}

// BuildMarkdown formats a deck plan as a markdown document: the advisor
// suggestion, the resolved theme, and one section per slide decision.
func (r *ReportService) BuildMarkdown(plan decktypes.DeckPlan) string {
	var b strings.Builder

	b.WriteString("# Deck Design Report\n\n")

	b.WriteString("## Design Direction\n\n")
	fmt.Fprintf(&b, "- **Industry**: %s\n", plan.Suggestion.Industry)
	fmt.Fprintf(&b, "- **Style**: %s\n", plan.Suggestion.Style)
	fmt.Fprintf(&b, "- **Formality**: %s\n", plan.Suggestion.Formality)
	fmt.Fprintf(&b, "- **Audience**: %s\n", plan.Suggestion.Audience)
	if plan.Suggestion.Reasoning != "" {
		fmt.Fprintf(&b, "- **Reasoning**: %s\n", plan.Suggestion.Reasoning)
	}
	b.WriteString("\n")

	b.WriteString("## Theme\n\n")
	fmt.Fprintf(&b, "**%s** (%s)\n\n", plan.Theme.Name, plan.Theme.Key)
	if plan.Theme.Description != "" {
		b.WriteString(plan.Theme.Description + "\n\n")
	}
	for _, role := range []string{"primary", "secondary", "accent", "background", "text"} {
		if color, ok := plan.Theme.Colors[role]; ok {
			fmt.Fprintf(&b, "- %s: `%s`\n", role, color)
		}
	}
	b.WriteString("\n")

	b.WriteString("## Slides\n\n")
	for i, decision := range plan.Decisions {
		fmt.Fprintf(&b, "### Slide %d\n\n", i+1)
		fmt.Fprintf(&b, "- Layout: **%s**\n", decision.Layout)
		fmt.Fprintf(&b, "- Content: %s, %d words, %s complexity, %s sentiment\n",
			decision.Analysis.ContentType, decision.Analysis.WordCount,
			decision.Analysis.Complexity, decision.Analysis.Sentiment)
		fmt.Fprintf(&b, "- Fonts: title %dpt, body %dpt, caption %dpt\n",
			decision.FontSizes.Title, decision.FontSizes.Body, decision.FontSizes.Caption)
		fmt.Fprintf(&b, "- Body region: x=%.2f y=%.2f w=%.2f h=%.2f\n",
			decision.BodyRegion.X, decision.BodyRegion.Y,
			decision.BodyRegion.Width, decision.BodyRegion.Height)
		if decision.DataPattern != nil {
			b.WriteString("- " + describeDataPattern(*decision.DataPattern) + "\n")
		}
		if len(decision.Analysis.KeyConcepts) > 0 {
			fmt.Fprintf(&b, "- Key concepts: %s\n", strings.Join(decision.Analysis.KeyConcepts, ", "))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Render builds the markdown report and renders it to ANSI terminal output.
func (r *ReportService) Render(plan decktypes.DeckPlan) (string, error) {
	if !r.initialized {
		return "", fmt.Errorf("report service not initialized")
	}

	rendered, err := r.renderer.Render(r.BuildMarkdown(plan))
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return rendered, nil
}

// describeDataPattern summarizes an inferred data pattern in one line.
func describeDataPattern(pattern decktypes.DataPattern) string {
	switch {
	case pattern.HasChart():
		return fmt.Sprintf("Chart: %s with %d values", pattern.ChartType, len(pattern.Values))
	case pattern.HasPercentages:
		return fmt.Sprintf("Progress indicator: %d percentage(s), no chart", len(pattern.Values))
	case pattern.HasTimeline:
		return "Timeline markers detected, not enough points to chart"
	default:
		return "No chartable data"
	}
}

// GetGlobalReportService returns the registered report service instance.
func GetGlobalReportService() (*ReportService, error) {
	serviceInterface, err := GetGlobalRegistry().GetService("report")
	if err != nil {
		return nil, fmt.Errorf("report service not registered: %w", err)
	}

	reportService, ok := serviceInterface.(*ReportService)
	if !ok {
		return nil, fmt.Errorf("service is not a ReportService")
	}

	return reportService, nil
}

func init() {
	if err := GlobalRegistry.RegisterService(NewReportService()); err != nil {
		panic(fmt.Sprintf("failed to register report service: %v", err))
	}
}
