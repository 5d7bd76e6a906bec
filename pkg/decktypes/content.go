// Package decktypes defines the shared types used across slidecraft packages.
// It contains the value types exchanged between the decision pipeline, the
// analysis services, and the rendering boundary. The package is intentionally
// dependency-free so it can be imported from anywhere without cycles.
package decktypes

// ContentType classifies what kind of content a slide carries.
type ContentType string

// Content type classifications, decided by an ordered precedence list in the
// content analyzer (title keywords outrank item-count signals).
const (
	ContentTextHeavy  ContentType = "text_heavy"
	ContentDataDriven ContentType = "data_driven"
	ContentListItems  ContentType = "list_items"
	ContentComparison ContentType = "comparison"
	ContentTimeline   ContentType = "timeline"
	ContentHierarchy  ContentType = "hierarchy"
	ContentQuote      ContentType = "quote"
	ContentImageText  ContentType = "image_text"
)

// Complexity buckets content by average words per item.
type Complexity string

// Complexity tiers.
const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// Sentiment is the coarse emotional tone detected in slide text.
type Sentiment string

// Sentiment tags. Urgent keywords win outright over the positive/negative
// counts; ties and no-matches resolve to neutral.
const (
	SentimentUrgent   Sentiment = "urgent"
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// SlideContent is the per-slide input to the decision pipeline: a title and
// the body lines, already split on newlines by the caller. Items never
// contains the title itself.
type SlideContent struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// ContentAnalysis is the full classification of one slide's content.
// It is created fresh per slide, immutable once produced, and never persisted.
type ContentAnalysis struct {
	ContentType    ContentType `json:"content_type"`
	WordCount      int         `json:"word_count"`
	Complexity     Complexity  `json:"complexity"`
	Sentiment      Sentiment   `json:"sentiment"`
	KeyConcepts    []string    `json:"key_concepts,omitempty"`
	HasNumbers     bool        `json:"has_numbers"`
	HasDates       bool        `json:"has_dates"`
	HierarchyLevel int         `json:"hierarchy_level"`
	VisualWeight   float64     `json:"visual_weight"`
}
