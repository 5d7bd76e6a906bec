package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"slidecraft/internal/logger"
	"slidecraft/pkg/decktypes"
)

// maxChartLabelLength bounds chart labels so legends stay readable.
const maxChartLabelLength = 30

var (
	percentageRe = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)
	bareNumberRe = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?`)
	timelineRe   = regexp.MustCompile(`(?i)\b(?:q[1-4]|jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\s+\d{4}\b`)
)

// DataPatternService scans slide items for chartable numeric data. It
// produces a DataPattern describing the chart kind (if any), the numeric
// series, and a label per data point.
type DataPatternService struct {
	initialized bool
}

// NewDataPatternService creates a new DataPatternService instance.
func NewDataPatternService() *DataPatternService {
	return &DataPatternService{initialized: false}
}

// Name returns the service name "data_pattern" for registration.
func (d *DataPatternService) Name() string {
	return "data_pattern"
}

// Initialize sets up the DataPatternService for operation.
func (d *DataPatternService) Initialize() error {
	d.initialized = true
	return nil
}

// DetectPattern scans items in order and infers a chartable data pattern.
// Percentages take priority within each item: an item that contains any
// percentage contributes only those values, so a "34%" is never also
// counted as a bare number. Items with no numeric content contribute
// nothing; non-numeric slides yield ChartNone with an empty series rather
// than an error.
func (d *DataPatternService) DetectPattern(items []string) decktypes.DataPattern {
	if !d.initialized {
		logger.Warn("DataPatternService used before initialization")
	}

	pattern := decktypes.DataPattern{ChartType: decktypes.ChartNone}

	for _, item := range items {
		if timelineRe.MatchString(item) {
			pattern.HasTimeline = true
		}

		if matches := percentageRe.FindAllStringSubmatch(item, -1); len(matches) > 0 {
			pattern.HasPercentages = true
			label := chartLabel(item, percentageRe)
			for _, m := range matches {
				value, err := strconv.ParseFloat(m[1], 64)
				if err != nil {
					continue
				}
				pattern.Values = append(pattern.Values, value)
				pattern.Labels = append(pattern.Labels, label)
			}
			continue
		}

		if matches := bareNumberRe.FindAllString(item, -1); len(matches) > 0 {
			label := chartLabel(item, bareNumberRe)
			for _, m := range matches {
				value, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
				if err != nil {
					continue
				}
				pattern.Values = append(pattern.Values, value)
				pattern.Labels = append(pattern.Labels, label)
			}
		}
	}

	pattern.ChartType = resolveChartType(pattern)

	logger.ServiceOperation("data_pattern", "detect",
		"chart", string(pattern.ChartType),
		"points", len(pattern.Values),
		"percentages", pattern.HasPercentages,
		"timeline", pattern.HasTimeline)

	return pattern
}

// resolveChartType applies the chart priority: percentages over timeline
// over generic bars, each needing at least two points. A lone percentage is
// a progress signal, not a chart, so it stays ChartNone with the value kept.
func resolveChartType(p decktypes.DataPattern) decktypes.ChartType {
	switch {
	case p.HasPercentages && len(p.Values) >= 2:
		return decktypes.ChartPie
	case p.HasTimeline && len(p.Values) >= 2:
		return decktypes.ChartLine
	case len(p.Values) >= 2:
		return decktypes.ChartBar
	default:
		return decktypes.ChartNone
	}
}

// chartLabel derives a point label from an item: the numeric tokens are
// stripped, the trailing colon trimmed, and the result truncated.
func chartLabel(item string, tokenRe *regexp.Regexp) string {
	label := tokenRe.ReplaceAllString(item, "")
	label = strings.TrimSpace(label)
	label = strings.TrimSuffix(label, ":")
	label = strings.TrimSpace(label)
	// Truncate on runes so multi-byte labels stay valid UTF-8.
	if runes := []rune(label); len(runes) > maxChartLabelLength {
		label = string(runes[:maxChartLabelLength])
	}
	return label
}

func init() {
	if err := GlobalRegistry.RegisterService(NewDataPatternService()); err != nil {
		panic(fmt.Sprintf("failed to register data_pattern service: %v", err))
	}
}
