package services

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"slidecraft/internal/data/embedded"
	"slidecraft/internal/logger"
	"slidecraft/pkg/decktypes"
)

// Scoring weights for multi-factor theme selection. Industry dominates,
// style is a strong signal, formality and audience break near-ties.
const (
	industryWeight  = 3.0
	styleWeight     = 2.0
	formalityWeight = 1.5
	audienceWeight  = 1.0
)

// industryRule maps industry keywords to a catalog key. Rules are checked
// in order; more specific industries come first so "government technology"
// lands on government, not modern.
type industryRule struct {
	keywords []string
	theme    string
}

var industryRules = []industryRule{
	{[]string{"government", "public", "municipal"}, "government"},
	{[]string{"consulting", "advisory", "strategy"}, "consulting"},
	{[]string{"startup", "venture", "innovation"}, "startup"},
	{[]string{"health", "medical", "pharma", "biotech"}, "healthcare"},
	{[]string{"finance", "bank", "investment", "money"}, "finance"},
	{[]string{"security", "cyber", "protection", "risk"}, "security"},
	{[]string{"education", "training", "learning", "school"}, "education"},
	{[]string{"tech", "software", "digital"}, "modern"},
}

// styleKeywords maps style descriptors to catalog keys. Ordered so partial
// matching is deterministic.
var styleKeywords = []struct {
	keyword string
	theme   string
}{
	{"modern", "modern"},
	{"innovative", "modern"},
	{"gradient", "modern"},
	{"minimal", "minimal"},
	{"minimalist", "minimal"},
	{"clean", "minimal"},
	{"simple", "minimal"},
	{"bold", "startup"},
	{"dynamic", "startup"},
	{"energetic", "startup"},
	{"elegant", "consulting"},
	{"premium", "consulting"},
	{"sophisticated", "consulting"},
	{"formal", "government"},
	{"official", "government"},
	{"institutional", "government"},
	{"friendly", "education"},
	{"warm", "education"},
	{"approachable", "education"},
	{"strong", "security"},
	{"dark", "security"},
	{"protective", "security"},
	{"trustworthy", "healthcare"},
	{"medical", "healthcare"},
	{"conservative", "finance"},
	{"traditional", "finance"},
	{"professional", "corporate"},
	{"corporate", "corporate"},
}

// Formality groups. Each group gets the formality weight when the
// descriptor contains the matching word; anything that is neither formal
// nor casual counts as business.
var (
	formalThemes   = []string{"corporate", "finance", "government"}
	casualThemes   = []string{"startup", "education", "minimal"}
	businessThemes = []string{"modern", "healthcare", "consulting", "security"}
)

// ThemeSelectorService holds the design theme catalog and selects the best
// theme for a deck by weighted scoring over industry, style, formality, and
// audience signals. Catalog entries are immutable; resolution always hands
// out copies.
type ThemeSelectorService struct {
	initialized bool
	order       []string
	themes      map[string]decktypes.DesignTheme
}

// NewThemeSelectorService creates a new ThemeSelectorService with the
// catalog loaded from embedded YAML files.
func NewThemeSelectorService() *ThemeSelectorService {
	service := &ThemeSelectorService{
		initialized: false,
		themes:      make(map[string]decktypes.DesignTheme),
	}
	service.loadCatalog()
	return service
}

// Name returns the service name "theme_selector" for registration.
func (t *ThemeSelectorService) Name() string {
	return "theme_selector"
}

// Initialize sets up the ThemeSelectorService for operation.
func (t *ThemeSelectorService) Initialize() error {
	if len(t.themes) == 0 {
		return fmt.Errorf("theme catalog is empty")
	}
	t.initialized = true
	return nil
}

// loadCatalog reads every embedded catalog file. A file that fails to parse
// is replaced with the built-in fallback so selection always has a full
// catalog to score.
func (t *ThemeSelectorService) loadCatalog() {
	for _, key := range embedded.ThemeOrder {
		theme, err := loadThemeFile(key)
		if err != nil {
			logger.Error("Failed to load theme", "theme", key, "error", err)
			theme = fallbackTheme(key)
		}
		t.order = append(t.order, key)
		t.themes[key] = theme
	}
}

func loadThemeFile(key string) (decktypes.DesignTheme, error) {
	data, err := embedded.ThemeFS.ReadFile(embedded.ThemePath(key))
	if err != nil {
		return decktypes.DesignTheme{}, fmt.Errorf("failed to read theme file: %w", err)
	}

	var file decktypes.ThemeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return decktypes.DesignTheme{}, fmt.Errorf("failed to parse theme file: %w", err)
	}
	return file.Theme, nil
}

// fallbackTheme is a neutral corporate-style palette used when a catalog
// file cannot be loaded.
func fallbackTheme(key string) decktypes.DesignTheme {
	return decktypes.DesignTheme{
		Key:  key,
		Name: "Corporate Professional",
		Colors: map[string]string{
			"primary":    "#2E75B6",
			"secondary":  "#5A6C7D",
			"background": "#FFFFFF",
			"text":       "#2C3E50",
			"accent":     "#3498DB",
			"light":      "#F8F9FA",
		},
		Typography: map[string]decktypes.TextStyle{
			"title_slide": {Font: "Calibri", Size: 36, Bold: true, Color: "primary"},
			"slide_title": {Font: "Calibri", Size: 24, Bold: true, Color: "primary"},
			"body_text":   {Font: "Calibri", Size: 14, Color: "text"},
			"caption":     {Font: "Calibri", Size: 11, Color: "secondary"},
		},
	}
}

// AvailableThemes returns the catalog keys in canonical order.
func (t *ThemeSelectorService) AvailableThemes() []string {
	result := make([]string, len(t.order))
	copy(result, t.order)
	return result
}

// GetTheme returns a copy of the catalog entry for a key.
func (t *ThemeSelectorService) GetTheme(key string) (decktypes.DesignTheme, bool) {
	theme, ok := t.themes[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return decktypes.DesignTheme{}, false
	}
	return theme.Clone(), true
}

// ThemeByName finds a catalog entry by display name, case-insensitively.
func (t *ThemeSelectorService) ThemeByName(name string) (decktypes.DesignTheme, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, key := range t.order {
		if strings.ToLower(t.themes[key].Name) == want {
			return t.themes[key].Clone(), true
		}
	}
	return decktypes.DesignTheme{}, false
}

// ThemeForIndustry maps an industry descriptor to a copy of its theme,
// defaulting to corporate.
func (t *ThemeSelectorService) ThemeForIndustry(industry string) decktypes.DesignTheme {
	return t.themes[t.industryKey(industry)].Clone()
}

func (t *ThemeSelectorService) industryKey(industry string) string {
	lower := strings.ToLower(industry)
	for _, rule := range industryRules {
		if containsAny(lower, rule.keywords) {
			return rule.theme
		}
	}
	return "corporate"
}

// ThemeForStyle maps a style descriptor to a copy of its theme. Exact
// keyword matches win; otherwise the first keyword sharing a substring with
// the descriptor decides; corporate is the fallback.
func (t *ThemeSelectorService) ThemeForStyle(style string) decktypes.DesignTheme {
	return t.themes[t.styleKey(style)].Clone()
}

func (t *ThemeSelectorService) styleKey(style string) string {
	lower := strings.ToLower(strings.TrimSpace(style))
	if lower == "" {
		return "corporate"
	}

	for _, entry := range styleKeywords {
		if entry.keyword == lower {
			return entry.theme
		}
	}
	for _, entry := range styleKeywords {
		if strings.Contains(lower, entry.keyword) || strings.Contains(entry.keyword, lower) {
			return entry.theme
		}
	}
	return "corporate"
}

// SelectTheme scores the whole catalog against the suggestion and returns a
// copy of the winner. Empty factors contribute nothing; if nothing scores,
// the corporate default wins. Ties resolve to the earliest catalog entry.
func (t *ThemeSelectorService) SelectTheme(suggestion decktypes.DesignSuggestion) decktypes.DesignTheme {
	if !t.initialized {
		logger.Warn("ThemeSelectorService used before initialization")
	}

	scores := make(map[string]float64, len(t.order))

	if suggestion.Industry != "" {
		scores[t.industryKey(suggestion.Industry)] += industryWeight
	}

	if suggestion.Style != "" {
		scores[t.styleKey(suggestion.Style)] += styleWeight
	}

	if suggestion.Formality != "" {
		group := businessThemes
		formality := strings.ToLower(suggestion.Formality)
		// Substring match, so "informal" lands in the formal group.
		if strings.Contains(formality, "formal") {
			group = formalThemes
		} else if strings.Contains(formality, "casual") {
			group = casualThemes
		}
		for _, key := range group {
			scores[key] += formalityWeight
		}
	}

	if suggestion.Audience != "" {
		audience := strings.ToLower(suggestion.Audience)
		switch {
		case containsAny(audience, []string{"executive", "board", "c-suite"}):
			scores["consulting"] += audienceWeight
			scores["corporate"] += audienceWeight
		case containsAny(audience, []string{"developer", "engineer", "technical"}):
			scores["modern"] += audienceWeight
		case containsAny(audience, []string{"student", "teacher", "learner"}):
			scores["education"] += audienceWeight
		case containsAny(audience, []string{"investor", "shareholder"}):
			scores["finance"] += audienceWeight
		}
	}

	best := ""
	bestScore := 0.0
	for _, key := range t.order {
		if scores[key] > bestScore {
			best = key
			bestScore = scores[key]
		}
	}

	if best == "" {
		best = "corporate"
	}

	logger.ServiceOperation("theme_selector", "select", "theme", best, "score", bestScore)
	return t.themes[best].Clone()
}

// ResolveTheme selects a theme and applies validated color overrides on a
// copy, leaving the catalog untouched.
func (t *ThemeSelectorService) ResolveTheme(suggestion decktypes.DesignSuggestion, overrides map[string]string) decktypes.DesignTheme {
	theme := t.SelectTheme(suggestion)
	for role, hex := range overrides {
		theme.Colors[role] = hex
	}
	return theme
}

// GetGlobalThemeSelectorService returns the registered theme selector instance.
func GetGlobalThemeSelectorService() (*ThemeSelectorService, error) {
	serviceInterface, err := GetGlobalRegistry().GetService("theme_selector")
	if err != nil {
		return nil, fmt.Errorf("theme selector service not registered: %w", err)
	}

	selectorService, ok := serviceInterface.(*ThemeSelectorService)
	if !ok {
		return nil, fmt.Errorf("service is not a ThemeSelectorService")
	}

	return selectorService, nil
}

func init() {
	if err := GlobalRegistry.RegisterService(NewThemeSelectorService()); err != nil {
		panic(fmt.Sprintf("failed to register theme_selector service: %v", err))
	}
}
