package theme

import (
	"testing"

	"github.com/nsip/otf-eyda/internal/assessment"
)

func TestSectionColor(t *testing.T) {
	if got := SectionColor("Sensory and physical", Primary); got != "#2e7d32" {
		t.Errorf("primary = %s", got)
	}
	if got := SectionColor("Sensory and physical", Light); got != "#e8f5e8" {
		t.Errorf("light = %s", got)
	}
	if got := SectionColor("Unknown", Hover); got != DefaultColor {
		t.Errorf("fallback = %s", got)
	}
}

func TestScoreColors(t *testing.T) {
	if got := ScoreColor("Emerging", Primary); got != "#f44336" {
		t.Errorf("Emerging = %s", got)
	}
	if got := QuestionBackground("Independent"); got != "#e8f5e8" {
		t.Errorf("Independent background = %s", got)
	}
	if got := QuestionBackground(""); got != DefaultBackground {
		t.Errorf("unanswered background = %s", got)
	}
	if got := ScoreColor("Mastered", Primary); got != DefaultColor {
		t.Errorf("unknown score colour = %s", got)
	}
}

func TestSectionForTab(t *testing.T) {
	doc := &assessment.Document{Sections: []assessment.Section{{Title: "Test Section"}}}

	if _, ok := SectionForTab(doc, 0); ok {
		t.Error("home tab should have no section")
	}
	s, ok := SectionForTab(doc, 1)
	if !ok || s.Title != "Test Section" {
		t.Errorf("tab 1 = %q,%v", s.Title, ok)
	}
	if _, ok := SectionForTab(doc, 2); ok {
		t.Error("tab past the end should have no section")
	}
	if _, ok := SectionForTab(nil, 1); ok {
		t.Error("nil document should have no section")
	}
}
