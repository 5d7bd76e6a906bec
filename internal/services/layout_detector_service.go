package services

import (
	"fmt"
	"regexp"
	"strings"

	"slidecraft/internal/logger"
	"slidecraft/pkg/decktypes"
)

var quarterTokenRe = regexp.MustCompile(`(?i)\bq[1-4]\b`)

// layoutRule is one named step of the detection precedence list.
type layoutRule struct {
	name    string
	pattern decktypes.LayoutPattern
	matches func(title, content string, items []string) bool
}

// LayoutDetectorService picks a layout pattern for a slide. Detection is an
// ordered precedence list: title-based signals outrank structural ones, so a
// five-item slide titled "Timeline" is a timeline, not a grid.
type LayoutDetectorService struct {
	initialized bool
	rules       []layoutRule
}

// NewLayoutDetectorService creates a new LayoutDetectorService instance.
func NewLayoutDetectorService() *LayoutDetectorService {
	return &LayoutDetectorService{
		initialized: false,
		rules:       detectionRules(),
	}
}

// Name returns the service name "layout_detector" for registration.
func (l *LayoutDetectorService) Name() string {
	return "layout_detector"
}

// Initialize sets up the LayoutDetectorService for operation.
func (l *LayoutDetectorService) Initialize() error {
	l.initialized = true
	return nil
}

// DetectLayout returns the layout pattern for a slide. A non-empty override
// naming a known pattern is taken verbatim and skips detection entirely.
func (l *LayoutDetectorService) DetectLayout(title string, items []string, override string) decktypes.LayoutPattern {
	pattern, rule := l.detect(title, items, override)
	logger.ServiceOperation("layout_detector", "detect", "layout", string(pattern), "rule", rule)
	return pattern
}

// ExplainLayout returns the pattern together with the name of the rule that
// fired, for decision reports.
func (l *LayoutDetectorService) ExplainLayout(title string, items []string, override string) (decktypes.LayoutPattern, string) {
	return l.detect(title, items, override)
}

func (l *LayoutDetectorService) detect(title string, items []string, override string) (decktypes.LayoutPattern, string) {
	if !l.initialized {
		logger.Warn("LayoutDetectorService used before initialization")
	}

	if override != "" {
		if pattern, ok := decktypes.ParseLayoutPattern(override); ok {
			return pattern, "override"
		}
		logger.Debug("Unknown layout override ignored", "override", override)
	}

	lowerTitle := strings.ToLower(title)
	lowerContent := strings.ToLower(title + " " + strings.Join(items, " "))

	for _, rule := range l.rules {
		if rule.matches(lowerTitle, lowerContent, items) {
			return rule.pattern, rule.name
		}
	}

	return decktypes.LayoutSimple, "default"
}

// detectionRules builds the precedence list. Order is load-bearing.
func detectionRules() []layoutRule {
	return []layoutRule{
		{
			name:    "empty_content",
			pattern: decktypes.LayoutSimple,
			matches: func(_, _ string, items []string) bool {
				return len(items) == 0
			},
		},
		{
			name:    "single_short_item",
			pattern: decktypes.LayoutQuote,
			matches: func(_, _ string, items []string) bool {
				return len(items) == 1 && len(strings.Fields(items[0])) < 30
			},
		},
		{
			name:    "timeline_tokens",
			pattern: decktypes.LayoutTimeline,
			matches: func(_, content string, _ []string) bool {
				return containsAny(content, []string{"timeline", "phase", "roadmap", "schedule"}) ||
					quarterTokenRe.MatchString(content)
			},
		},
		{
			name:    "hierarchy_title",
			pattern: decktypes.LayoutHierarchy,
			matches: func(title, _ string, _ []string) bool {
				return containsAny(title, []string{"architecture", "structure", "hierarchy", "organization"})
			},
		},
		{
			name:    "comparison_tokens",
			pattern: decktypes.LayoutComparison,
			matches: func(_, content string, _ []string) bool {
				if containsAny(content, []string{"vs", "versus", "comparison", "compared to"}) {
					return true
				}
				return strings.Contains(content, "current") && strings.Contains(content, "proposed")
			},
		},
		{
			name:    "metrics_signals",
			pattern: decktypes.LayoutMetrics,
			matches: func(title, _ string, items []string) bool {
				if containsAny(title, []string{"metrics", "kpi", "results", "performance"}) {
					return true
				}
				percentItems := 0
				for _, item := range items {
					if strings.Contains(item, "%") {
						percentItems++
					}
				}
				return percentItems >= 2
			},
		},
		{
			name:    "delimited_rows",
			pattern: decktypes.LayoutTable,
			matches: func(_, _ string, items []string) bool {
				for _, item := range items {
					if strings.ContainsAny(item, "|\t") {
						return true
					}
				}
				return false
			},
		},
		{
			name:    "grid_item_count",
			pattern: decktypes.LayoutGrid,
			matches: func(_, _ string, items []string) bool {
				return len(items) >= 4 && len(items) <= 6
			},
		},
		{
			name:    "many_items",
			pattern: decktypes.LayoutMultiColumn,
			matches: func(_, _ string, items []string) bool {
				return len(items) > 6
			},
		},
	}
}

func init() {
	if err := GlobalRegistry.RegisterService(NewLayoutDetectorService()); err != nil {
		panic(fmt.Sprintf("failed to register layout_detector service: %v", err))
	}
}
