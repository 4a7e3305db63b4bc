//
// Package theme holds the colour scheme used when rendering
// sections and scores, and the tab -> section mapping of the
// assessment form.
//
package theme

import "github.com/nsip/otf-eyda/internal/assessment"

type Kind string

const (
	Primary Kind = "primary"
	Light   Kind = "light"
	Hover   Kind = "hover"
)

const (
	DefaultColor      = "#1976d2"
	DefaultBackground = "#fafafa"
)

type Palette struct {
	Primary string `json:"primary"`
	Light   string `json:"light"`
	Hover   string `json:"hover"`
}

func (p Palette) get(k Kind) string {
	switch k {
	case Light:
		return p.Light
	case Hover:
		return p.Hover
	default:
		return p.Primary
	}
}

var sectionColors = map[string]Palette{
	"Communication and interaction":       {Primary: "#1565c0", Light: "#e3f2fd", Hover: "#bbdefb"},
	"Cognition and learning":              {Primary: "#6a1b9a", Light: "#f3e5f5", Hover: "#e1bee7"},
	"Social, emotional and mental health": {Primary: "#ef6c00", Light: "#fff3e0", Hover: "#ffe0b2"},
	"Sensory and physical":                {Primary: "#2e7d32", Light: "#e8f5e8", Hover: "#c8e6c9"},
}

var scoreColors = map[string]Palette{
	"Emerging":    {Primary: "#f44336", Light: "#ffebee", Hover: "#ffcdd2"},
	"Supported":   {Primary: "#ffc107", Light: "#fffbf0", Hover: "#ffecb3"},
	"Independent": {Primary: "#4caf50", Light: "#e8f5e8", Hover: "#c8e6c9"},
}

// SectionColor falls back to DefaultColor for sections without a palette.
func SectionColor(title string, k Kind) string {
	p, ok := sectionColors[title]
	if !ok {
		return DefaultColor
	}
	return p.get(k)
}

func SectionPalette(title string) Palette {
	if p, ok := sectionColors[title]; ok {
		return p
	}
	return Palette{Primary: DefaultColor, Light: DefaultColor, Hover: DefaultColor}
}

// ScoreColor is the colour for a score label, DefaultColor if unknown.
func ScoreColor(label string, k Kind) string {
	p, ok := scoreColors[label]
	if !ok {
		return DefaultColor
	}
	return p.get(k)
}

//
// QuestionBackground is the light tint of the selected
// score, or the neutral background when unanswered.
//
func QuestionBackground(label string) string {
	p, ok := scoreColors[label]
	if !ok {
		return DefaultBackground
	}
	return p.Light
}

//
// SectionForTab maps a form tab to its section. Tab 0 is the
// home tab and has no section, as does any tab past the end.
//
func SectionForTab(doc *assessment.Document, tab int) (assessment.Section, bool) {
	if doc == nil || tab <= 0 || tab > len(doc.Sections) {
		return assessment.Section{}, false
	}
	return doc.Sections[tab-1], true
}
