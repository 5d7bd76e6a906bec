package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidecraft/pkg/decktypes"
)

func newTestDesignRules(t *testing.T) *DesignRulesService {
	t.Helper()
	service := NewDesignRulesService()
	require.NoError(t, service.Initialize())
	return service
}

func TestDesignRulesService_Name(t *testing.T) {
	service := NewDesignRulesService()
	assert.Equal(t, "design_rules", service.Name())
}

func TestDesignRulesService_FontSizesFromVisualWeight(t *testing.T) {
	service := newTestDesignRules(t)

	// weight 0.5, 40 words: title = round(32*1.1) = 35, body = round(18*1.0) = 18.
	fonts := service.CalculateOptimalFontSizes(decktypes.ContentAnalysis{
		ContentType:  decktypes.ContentListItems,
		WordCount:    40,
		VisualWeight: 0.5,
	})
	assert.Equal(t, 35, fonts.Title)
	assert.Equal(t, 18, fonts.Body)
	assert.Equal(t, 14, fonts.Caption)
}

func TestDesignRulesService_ShortContentGetsLargerFonts(t *testing.T) {
	service := newTestDesignRules(t)

	// weight 1.0, 10 words: title = round(32*1.5)+8 = 56 -> clamped 48,
	// body = round(18*1.2)+4 = 26 -> clamped 24.
	fonts := service.CalculateOptimalFontSizes(decktypes.ContentAnalysis{
		ContentType:  decktypes.ContentListItems,
		WordCount:    10,
		VisualWeight: 1.0,
	})
	assert.Equal(t, 48, fonts.Title)
	assert.Equal(t, 24, fonts.Body)
}

func TestDesignRulesService_LongContentGetsSmallerFonts(t *testing.T) {
	service := newTestDesignRules(t)

	// weight 0.1, 120 words: title = round(32*0.78)-4 = 21 -> clamped 24,
	// body = round(18*0.84)-2 = 13.
	fonts := service.CalculateOptimalFontSizes(decktypes.ContentAnalysis{
		ContentType:  decktypes.ContentTextHeavy,
		WordCount:    120,
		VisualWeight: 0.1,
	})
	assert.Equal(t, 24, fonts.Title)
	assert.Equal(t, 13, fonts.Body)
	assert.Equal(t, 10, fonts.Caption)
}

func TestDesignRulesService_QuoteBodyBoost(t *testing.T) {
	service := newTestDesignRules(t)

	base := decktypes.ContentAnalysis{WordCount: 40, VisualWeight: 0.5}

	plain := base
	plain.ContentType = decktypes.ContentListItems
	quote := base
	quote.ContentType = decktypes.ContentQuote

	assert.Equal(t, service.CalculateOptimalFontSizes(plain).Body+6, service.CalculateOptimalFontSizes(quote).Body)
}

func TestDesignRulesService_DataDrivenBodyReduced(t *testing.T) {
	service := newTestDesignRules(t)

	fonts := service.CalculateOptimalFontSizes(decktypes.ContentAnalysis{
		ContentType:  decktypes.ContentDataDriven,
		WordCount:    40,
		VisualWeight: 0.5,
	})
	assert.Equal(t, 16, fonts.Body)
}

func TestDesignRulesService_FontClampsHoldAtExtremes(t *testing.T) {
	service := newTestDesignRules(t)

	extremes := []decktypes.ContentAnalysis{
		{ContentType: decktypes.ContentQuote, WordCount: 1, VisualWeight: 5.0},
		{ContentType: decktypes.ContentDataDriven, WordCount: 10000, VisualWeight: -3.0},
		{ContentType: decktypes.ContentTextHeavy, WordCount: 0, VisualWeight: 0},
	}

	for _, analysis := range extremes {
		fonts := service.CalculateOptimalFontSizes(analysis)
		assert.GreaterOrEqual(t, fonts.Title, 24)
		assert.LessOrEqual(t, fonts.Title, 48)
		assert.GreaterOrEqual(t, fonts.Body, 12)
		assert.LessOrEqual(t, fonts.Body, 24)
		assert.GreaterOrEqual(t, fonts.Caption, 10)
		assert.LessOrEqual(t, fonts.Caption, 14)
	}
}

func TestDesignRulesService_ContrastingTextColor(t *testing.T) {
	service := newTestDesignRules(t)

	assert.Equal(t, "#2D3748", service.ContrastingTextColor("#FFFFFF"))
	assert.Equal(t, "#2D3748", service.ContrastingTextColor("#F7FAFC"))
	assert.Equal(t, "#2D3748", service.ContrastingTextColor("#fafafa"))
	assert.Equal(t, "#FFFFFF", service.ContrastingTextColor("#1A202C"))
	assert.Equal(t, "#FFFFFF", service.ContrastingTextColor("#2E75B6"))
}

func TestDesignRulesService_BodyRegionDensity(t *testing.T) {
	service := newTestDesignRules(t)

	dense := service.CalculateBodyRegion(true, 10, 800, 1.0, 1.0)
	assert.InDelta(t, 0.05, dense.X, 0.001)
	assert.InDelta(t, 0.90, dense.Width, 0.001)

	sparse := service.CalculateBodyRegion(true, 1, 40, 1.0, 1.0)
	assert.InDelta(t, 0.15, sparse.X, 0.001)
	assert.InDelta(t, 0.70, sparse.Width, 0.001)

	moderate := service.CalculateBodyRegion(true, 4, 200, 1.0, 1.0)
	assert.InDelta(t, 0.10, moderate.X, 0.001)
	assert.InDelta(t, 0.80, moderate.Width, 0.001)
}

func TestDesignRulesService_BodyRegionBelowTitleBand(t *testing.T) {
	service := newTestDesignRules(t)

	withTitle := service.CalculateBodyRegion(true, 4, 200, 1.0, 1.0)
	assert.InDelta(t, 0.20, withTitle.Y, 0.001)

	withoutTitle := service.CalculateBodyRegion(false, 4, 200, 1.0, 1.0)
	assert.InDelta(t, 0.05, withoutTitle.Y, 0.001)
	assert.Greater(t, withoutTitle.Height, withTitle.Height)
}

func TestDesignRulesService_RegionsScaleWithSlideSize(t *testing.T) {
	service := newTestDesignRules(t)

	region := service.CalculateBodyRegion(true, 4, 200, 13.33, 7.5)
	assert.InDelta(t, 1.333, region.X, 0.001)
	assert.InDelta(t, 10.664, region.Width, 0.001)
	assert.InDelta(t, 1.5, region.Y, 0.001)

	title := service.TitleRegion(13.33, 7.5)
	assert.InDelta(t, 1.5, title.Height, 0.001)
}
