package spec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RoundTrip(t *testing.T) {
	doc := `{
		"tokens": {"primary": "#3366FF"},
		"constraints": {"safeMargin": 0.05},
		"layouts": [{
			"name": "Title",
			"placeholders": [
				{"id": "title", "type": "title", "content": "Q3 Results", "geometry": {"x": 0.1, "y": 0.1, "w": 0.8, "h": 0.2}}
			]
		}]
	}`
	path := filepath.Join(t.TempDir(), "spec.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#3366FF", s.Tokens["primary"])
	require.Len(t, s.Layouts, 1)
	assert.Equal(t, "Title", s.Layouts[0].Name)
	assert.Equal(t, "Q3 Results", s.Layouts[0].Placeholders[0].Content)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open spec file")
}

func TestDecode_UnknownFieldFails(t *testing.T) {
	doc := `{"tokens": {}, "layuots": []}`
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode spec")
}

func TestLayout_TitleAndItems(t *testing.T) {
	l := Layout{
		Name: "Overview",
		Placeholders: []Placeholder{
			{ID: "t", Type: "title", Content: "Executive Overview"},
			{ID: "b", Type: "body", Content: "Revenue up 12%\nChurn down 3%\n\nHeadcount flat"},
		},
	}

	assert.Equal(t, "Executive Overview", l.Title())
	assert.Equal(t, []string{"Revenue up 12%", "Churn down 3%", "Headcount flat"}, l.Items())
}

func TestLayout_TitleFallsBackToFirstLine(t *testing.T) {
	l := Layout{
		Name: "Untyped",
		Placeholders: []Placeholder{
			{ID: "b", Type: "body", Content: "Roadmap 2026\nPhase one in Q1 2026"},
		},
	}

	assert.Equal(t, "Roadmap 2026", l.Title())
	assert.Equal(t, []string{"Phase one in Q1 2026"}, l.Items())
}

func TestLayout_DerivedTitleSkippedAcrossPlaceholders(t *testing.T) {
	l := Layout{
		Name: "Untyped",
		Placeholders: []Placeholder{
			{ID: "a", Type: "body", Content: "\n  \n"},
			{ID: "b", Type: "body", Content: "Milestones\nKickoff complete"},
			{ID: "c", Type: "body", Content: "Beta in June"},
		},
	}

	assert.Equal(t, "Milestones", l.Title())
	assert.Equal(t, []string{"Kickoff complete", "Beta in June"}, l.Items())
}

func TestLayout_TypedTitleKeepsAllBodyLines(t *testing.T) {
	l := Layout{
		Name: "Typed",
		Placeholders: []Placeholder{
			{ID: "t", Type: "title", Content: "Roadmap 2026"},
			{ID: "b", Type: "body", Content: "Roadmap 2026\nPhase one in Q1 2026"},
		},
	}

	// A body line that happens to equal the typed title is still an item.
	assert.Equal(t, []string{"Roadmap 2026", "Phase one in Q1 2026"}, l.Items())
}
