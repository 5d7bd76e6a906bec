package services

import (
	"fmt"
	"regexp"
	"strings"

	"slidecraft/internal/logger"
	"slidecraft/pkg/decktypes"
)

// maxKeyConcepts bounds the concept list surfaced per slide.
const maxKeyConcepts = 5

var (
	numberTokenRe = regexp.MustCompile(`\d+[%$]?|\$\d+|\d+\.\d+`)

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`),
		regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`),
		regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\b`),
		regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\b`),
		regexp.MustCompile(`(?i)\bq[1-4]\b`),
	}

	capitalizedWordRe = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
	acronymRe         = regexp.MustCompile(`\b[A-Z]{2,}\b`)
)

var (
	timelineTitleWords  = []string{"timeline", "phases", "roadmap", "schedule"}
	dataTitleWords      = []string{"metrics", "kpi", "results", "analysis"}
	compareTitleWords   = []string{"vs", "comparison", "options", "alternatives"}
	hierarchyTitleWords = []string{"architecture", "structure", "hierarchy", "organization"}

	urgentWords   = []string{"critical", "urgent", "immediate", "risk", "threat", "warning"}
	positiveWords = []string{"success", "growth", "improve", "achieve", "excellent", "opportunity", "increase", "win"}
	negativeWords = []string{"problem", "issue", "decline", "decrease", "loss", "fail", "concern"}

	levelOneWords = []string{"executive", "summary", "overview"}
	levelTwoWords = []string{"introduction", "conclusion", "agenda"}
)

// ContentAnalyzerService classifies slide content: type, complexity,
// sentiment, hierarchy level, key concepts, and a visual weight that the
// design rules use to scale typography.
type ContentAnalyzerService struct {
	initialized bool
}

// NewContentAnalyzerService creates a new ContentAnalyzerService instance.
func NewContentAnalyzerService() *ContentAnalyzerService {
	return &ContentAnalyzerService{initialized: false}
}

// Name returns the service name "content_analyzer" for registration.
func (c *ContentAnalyzerService) Name() string {
	return "content_analyzer"
}

// Initialize sets up the ContentAnalyzerService for operation.
func (c *ContentAnalyzerService) Initialize() error {
	c.initialized = true
	return nil
}

// Analyze classifies a slide from its title and ordered items.
func (c *ContentAnalyzerService) Analyze(slide decktypes.SlideContent) decktypes.ContentAnalysis {
	if !c.initialized {
		logger.Warn("ContentAnalyzerService used before initialization")
	}

	combined := strings.TrimSpace(slide.Title + " " + strings.Join(slide.Items, " "))
	wordCount := len(strings.Fields(combined))

	analysis := decktypes.ContentAnalysis{
		WordCount:      wordCount,
		Complexity:     determineComplexity(slide.Items),
		Sentiment:      determineSentiment(combined),
		KeyConcepts:    extractKeyConcepts(combined),
		HasNumbers:     numberTokenRe.MatchString(combined),
		HasDates:       containsDates(combined),
		HierarchyLevel: determineHierarchyLevel(slide.Title),
	}
	analysis.ContentType = determineContentType(slide, wordCount)
	analysis.VisualWeight = calculateVisualWeight(wordCount, analysis.Complexity, analysis.HierarchyLevel)

	logger.ServiceOperation("content_analyzer", "analyze",
		"type", string(analysis.ContentType),
		"words", wordCount,
		"complexity", string(analysis.Complexity),
		"sentiment", string(analysis.Sentiment))

	return analysis
}

// determineContentType walks the precedence list top to bottom; the first
// match wins. Title keywords outrank structural signals like item count.
func determineContentType(slide decktypes.SlideContent, wordCount int) decktypes.ContentType {
	title := strings.ToLower(slide.Title)

	switch {
	case containsAny(title, timelineTitleWords):
		return decktypes.ContentTimeline
	case containsAny(title, dataTitleWords):
		return decktypes.ContentDataDriven
	case containsAny(title, compareTitleWords):
		return decktypes.ContentComparison
	case containsAny(title, hierarchyTitleWords):
		return decktypes.ContentHierarchy
	case len(slide.Items) == 1 && len(strings.Fields(slide.Items[0])) < 30:
		return decktypes.ContentQuote
	case len(slide.Items) > 3:
		return decktypes.ContentListItems
	case wordCount > 100:
		return decktypes.ContentTextHeavy
	default:
		return decktypes.ContentListItems
	}
}

// determineComplexity buckets the average words per item.
func determineComplexity(items []string) decktypes.Complexity {
	if len(items) == 0 {
		return decktypes.ComplexitySimple
	}

	total := 0
	for _, item := range items {
		total += len(strings.Fields(item))
	}
	average := float64(total) / float64(len(items))

	switch {
	case average > 15:
		return decktypes.ComplexityComplex
	case average > 8:
		return decktypes.ComplexityMedium
	default:
		return decktypes.ComplexitySimple
	}
}

// determineSentiment gives urgent keywords an outright win; otherwise the
// larger of the positive and negative counts decides, ties are neutral.
func determineSentiment(text string) decktypes.Sentiment {
	lower := strings.ToLower(text)

	if containsAny(lower, urgentWords) {
		return decktypes.SentimentUrgent
	}

	positive := countMatches(lower, positiveWords)
	negative := countMatches(lower, negativeWords)

	switch {
	case positive > negative:
		return decktypes.SentimentPositive
	case negative > positive:
		return decktypes.SentimentNegative
	default:
		return decktypes.SentimentNeutral
	}
}

func determineHierarchyLevel(title string) int {
	lower := strings.ToLower(title)
	switch {
	case containsAny(lower, levelOneWords):
		return 1
	case containsAny(lower, levelTwoWords):
		return 2
	default:
		return 3
	}
}

// calculateVisualWeight starts at 0.5 and accumulates signed adjustments
// for brevity, complexity, and hierarchy level, clamped to [0.1, 1.0].
func calculateVisualWeight(wordCount int, complexity decktypes.Complexity, hierarchyLevel int) float64 {
	weight := 0.5

	if wordCount < 20 {
		weight += 0.3
	} else if wordCount > 80 {
		weight -= 0.2
	}

	switch complexity {
	case decktypes.ComplexitySimple:
		weight += 0.2
	case decktypes.ComplexityComplex:
		weight -= 0.2
	}

	switch hierarchyLevel {
	case 1:
		weight += 0.4
	case 2:
		weight += 0.2
	}

	if weight > 1.0 {
		weight = 1.0
	}
	if weight < 0.1 {
		weight = 0.1
	}

	return weight
}

// extractKeyConcepts collects capitalized words and all-caps acronyms in
// first-seen order, deduplicated, capped at maxKeyConcepts.
func extractKeyConcepts(text string) []string {
	seen := make(map[string]bool)
	var concepts []string

	add := func(matches []string) {
		for _, m := range matches {
			if len(concepts) >= maxKeyConcepts {
				return
			}
			if !seen[m] {
				seen[m] = true
				concepts = append(concepts, m)
			}
		}
	}

	add(capitalizedWordRe.FindAllString(text, -1))
	add(acronymRe.FindAllString(text, -1))

	return concepts
}

func containsDates(text string) bool {
	for _, pattern := range datePatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

func countMatches(text string, words []string) int {
	count := 0
	for _, word := range words {
		if strings.Contains(text, word) {
			count++
		}
	}
	return count
}

func init() {
	if err := GlobalRegistry.RegisterService(NewContentAnalyzerService()); err != nil {
		panic(fmt.Sprintf("failed to register content_analyzer service: %v", err))
	}
}
