package services

import (
	"fmt"
	"math"
	"strings"

	"slidecraft/internal/logger"
	"slidecraft/pkg/decktypes"
)

// Typography bounds. Title and body sizes never leave these ranges no
// matter how extreme the inputs are.
const (
	minTitleSize   = 24
	maxTitleSize   = 48
	minBodySize    = 12
	maxBodySize    = 24
	minCaptionSize = 10
	maxCaptionSize = 14
)

// darkTextColor is the fixed foreground used on light backgrounds.
const darkTextColor = "#2D3748"

// titleBandFraction is the slide-height share reserved for the title.
const titleBandFraction = 0.20

// DesignRulesService computes typography and geometry: font sizes from the
// content analysis, a contrast-safe text color for a given background, and
// the body bounding box from content density. All methods are pure functions
// of their inputs.
type DesignRulesService struct {
	initialized bool
}

// NewDesignRulesService creates a new DesignRulesService instance.
func NewDesignRulesService() *DesignRulesService {
	return &DesignRulesService{initialized: false}
}

// Name returns the service name "design_rules" for registration.
func (d *DesignRulesService) Name() string {
	return "design_rules"
}

// Initialize sets up the DesignRulesService for operation.
func (d *DesignRulesService) Initialize() error {
	d.initialized = true
	return nil
}

// CalculateOptimalFontSizes derives title, body, and caption sizes from the
// visual weight, then applies content-volume and content-type deltas, then
// clamps.
func (d *DesignRulesService) CalculateOptimalFontSizes(analysis decktypes.ContentAnalysis) decktypes.FontSet {
	if !d.initialized {
		logger.Warn("DesignRulesService used before initialization")
	}

	title := int(math.Round(32 * (0.7 + analysis.VisualWeight*0.8)))
	body := int(math.Round(18 * (0.8 + analysis.VisualWeight*0.4)))

	if analysis.WordCount < 20 {
		title += 8
		body += 4
	} else if analysis.WordCount > 80 {
		title -= 4
		body -= 2
	}

	switch analysis.ContentType {
	case decktypes.ContentQuote:
		body += 6
	case decktypes.ContentDataDriven:
		body -= 2
	}

	title = clampInt(title, minTitleSize, maxTitleSize)
	body = clampInt(body, minBodySize, maxBodySize)
	caption := clampInt(body-4, minCaptionSize, maxCaptionSize)

	return decktypes.FontSet{Title: title, Body: body, Caption: caption}
}

// ContrastingTextColor returns a readable foreground for a background hex
// color. This is a two-bucket policy: light backgrounds (pure white, or a
// red channel starting at F) get the fixed dark text color, everything else
// gets white.
func (d *DesignRulesService) ContrastingTextColor(backgroundHex string) string {
	hex := strings.ToUpper(strings.TrimPrefix(backgroundHex, "#"))
	if hex == "FFFFFF" || (len(hex) == 6 && hex[0] == 'F') {
		return darkTextColor
	}
	return "#FFFFFF"
}

// CalculateBodyRegion positions the body box on a slide. When a title is
// present, the body starts below the title band. Horizontal margins depend
// on content density: dense content spans nearly full width, a lone item is
// centered with wide margins, everything else gets moderate margins.
// Coordinates share the unit of slideWidth/slideHeight.
func (d *DesignRulesService) CalculateBodyRegion(hasTitle bool, itemCount, totalChars int, slideWidth, slideHeight float64) decktypes.Region {
	var leftMargin float64
	switch {
	case totalChars > 500 || itemCount > 8:
		leftMargin = 0.05
	case itemCount <= 1:
		leftMargin = 0.15
	default:
		leftMargin = 0.10
	}

	top := 0.05
	if hasTitle {
		top = titleBandFraction
	}

	return decktypes.Region{
		X:      leftMargin * slideWidth,
		Y:      top * slideHeight,
		Width:  (1 - 2*leftMargin) * slideWidth,
		Height: (1 - top - 0.05) * slideHeight,
	}
}

// TitleRegion returns the title band: the top slice of the slide inside the
// same horizontal margins as a moderate body box.
func (d *DesignRulesService) TitleRegion(slideWidth, slideHeight float64) decktypes.Region {
	return decktypes.Region{
		X:      0.10 * slideWidth,
		Y:      0,
		Width:  0.80 * slideWidth,
		Height: titleBandFraction * slideHeight,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GetGlobalDesignRulesService returns the registered design rules instance.
func GetGlobalDesignRulesService() (*DesignRulesService, error) {
	serviceInterface, err := GetGlobalRegistry().GetService("design_rules")
	if err != nil {
		return nil, fmt.Errorf("design rules service not registered: %w", err)
	}

	rulesService, ok := serviceInterface.(*DesignRulesService)
	if !ok {
		return nil, fmt.Errorf("service is not a DesignRulesService")
	}

	return rulesService, nil
}

func init() {
	if err := GlobalRegistry.RegisterService(NewDesignRulesService()); err != nil {
		panic(fmt.Sprintf("failed to register design_rules service: %v", err))
	}
}
