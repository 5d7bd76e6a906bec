package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"slidecraft/internal/logger"
	"slidecraft/internal/spec"
	"slidecraft/pkg/decktypes"
)

// DecisionPipelineService orchestrates the per-slide decision sequence:
// analyze content, detect the layout pattern, infer chart data, compute
// typography and geometry, and resolve the deck theme. The per-slide path
// is pure computation; the only I/O is the optional advisor call, made once
// per deck.
type DecisionPipelineService struct {
	initialized bool
	analyzer    *ContentAnalyzerService
	detector    *LayoutDetectorService
	patterns    *DataPatternService
	rules       *DesignRulesService
	themes      *ThemeSelectorService
	advisor     *AdvisorService
	validator   spec.Validator
}

// NewDecisionPipelineService creates a pipeline wired to fresh instances of
// every engine service.
func NewDecisionPipelineService() *DecisionPipelineService {
	return &DecisionPipelineService{
		analyzer:  NewContentAnalyzerService(),
		detector:  NewLayoutDetectorService(),
		patterns:  NewDataPatternService(),
		rules:     NewDesignRulesService(),
		themes:    NewThemeSelectorService(),
		advisor:   NewAdvisorService(nil),
		validator: spec.DefaultValidator{},
	}
}

// Name returns the service name "pipeline" for registration.
func (p *DecisionPipelineService) Name() string {
	return "pipeline"
}

// Initialize sets up the pipeline and all its engine services.
func (p *DecisionPipelineService) Initialize() error {
	for _, service := range []decktypes.Service{p.analyzer, p.detector, p.patterns, p.rules, p.themes, p.advisor} {
		if err := service.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize %s: %w", service.Name(), err)
		}
	}
	p.initialized = true
	return nil
}

// SetAdvisorClient swaps the advisor backend used for deck-level advice.
func (p *DecisionPipelineService) SetAdvisorClient(client decktypes.AdvisorClient) {
	p.advisor.SetClient(client)
}

// ThemeSelector exposes the pipeline's theme catalog for listing commands.
func (p *DecisionPipelineService) ThemeSelector() *ThemeSelectorService {
	return p.themes
}

// PlanDeck validates a template spec, consults the advisor once for the
// deck's design direction, resolves the theme with any token color
// overrides, and emits one LayoutDecision per layout in input order.
// Validation problems fail fast before any decision is made.
func (p *DecisionPipelineService) PlanDeck(ctx context.Context, templateSpec spec.TemplateSpec) (decktypes.DeckPlan, error) {
	if !p.initialized {
		return decktypes.DeckPlan{}, fmt.Errorf("pipeline not initialized")
	}

	if errs := p.validator.Validate(templateSpec); len(errs) > 0 {
		return decktypes.DeckPlan{}, fmt.Errorf("spec validation failed: %s: %s", errs[0].Path, errs[0].Message)
	}

	slides := make([]decktypes.SlideContent, 0, len(templateSpec.Layouts))
	overrides := make([]string, 0, len(templateSpec.Layouts))
	for _, layout := range templateSpec.Layouts {
		slides = append(slides, decktypes.SlideContent{Title: layout.Title(), Items: layout.Items()})
		overrides = append(overrides, layoutOverride(layout.Name))
	}

	suggestion := p.advisor.SuggestDesign(ctx, slides)
	theme := p.themes.ResolveTheme(suggestion, spec.ColorOverrides(templateSpec.Tokens))

	plan := decktypes.DeckPlan{
		Suggestion: suggestion,
		Theme:      theme,
		Decisions:  make([]decktypes.LayoutDecision, 0, len(slides)),
	}
	for i, slide := range slides {
		plan.Decisions = append(plan.Decisions, p.DecideSlide(slide, overrides[i]))
	}

	logger.Info("Deck planned", "slides", len(plan.Decisions), "theme", theme.Name)
	return plan, nil
}

// DecideSlide runs the decision sequence for one slide. It never fails:
// missing titles, empty items, and non-numeric content all take documented
// defaults. Geometry is normalized to the unit square.
func (p *DecisionPipelineService) DecideSlide(slide decktypes.SlideContent, override string) decktypes.LayoutDecision {
	analysis := p.analyzer.Analyze(slide)
	layout := p.detector.DetectLayout(slide.Title, slide.Items, override)
	fonts := p.rules.CalculateOptimalFontSizes(analysis)

	totalChars := 0
	for _, item := range slide.Items {
		totalChars += len(item)
	}
	region := p.rules.CalculateBodyRegion(slide.Title != "", len(slide.Items), totalChars, 1.0, 1.0)

	decision := decktypes.LayoutDecision{
		ID:         uuid.New().String(),
		Layout:     layout,
		FontSizes:  fonts,
		BodyRegion: region,
		Analysis:   analysis,
	}

	pattern := p.patterns.DetectPattern(slide.Items)
	if pattern.HasChart() || pattern.HasPercentages || pattern.HasTimeline {
		decision.DataPattern = &pattern
	}

	logger.DecisionStep("decide", decision.ID,
		"layout", string(layout),
		"title_font", fonts.Title,
		"chart", string(pattern.ChartType))
	return decision
}

// layoutOverride treats a spec layout name as an explicit pattern override
// only when it names one of the known patterns; ordinary layout names like
// "Title & Body" are not overrides.
func layoutOverride(name string) string {
	if _, ok := decktypes.ParseLayoutPattern(strings.TrimSpace(name)); ok {
		return strings.TrimSpace(name)
	}
	return ""
}

// GetGlobalPipelineService returns the registered pipeline service instance.
func GetGlobalPipelineService() (*DecisionPipelineService, error) {
	serviceInterface, err := GetGlobalRegistry().GetService("pipeline")
	if err != nil {
		return nil, fmt.Errorf("pipeline service not registered: %w", err)
	}

	pipelineService, ok := serviceInterface.(*DecisionPipelineService)
	if !ok {
		return nil, fmt.Errorf("service is not a DecisionPipelineService")
	}

	return pipelineService, nil
}

func init() {
	if err := GlobalRegistry.RegisterService(NewDecisionPipelineService()); err != nil {
		panic(fmt.Sprintf("failed to register pipeline service: %v", err))
	}
}
