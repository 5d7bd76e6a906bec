package decktypes

// DeckPlan is the engine's full output for one deck: the design direction
// that drove theme selection, the resolved theme (catalog copy plus any
// validated token overrides), and one layout decision per slide in input
// order.
type DeckPlan struct {
	Suggestion DesignSuggestion `json:"suggestion"`
	Theme      DesignTheme      `json:"theme"`
	Decisions  []LayoutDecision `json:"decisions"`
}
