package assessment

import "testing"

func testDocument() *Document {
	return &Document{
		Sections: []Section{
			{
				Title: "Test Section",
				Subsections: []Subsection{
					{Title: "Test Subsection", Questions: []Question{{ID: 1, Text: "Test question 1"}, {ID: 2, Text: "Test question 2"}}},
					{Title: "Other", Questions: []Question{{ID: 3, Text: "Test question 3"}}},
				},
			},
		},
		Scoring: map[string]ScoreLevel{
			"independent": {Label: "Independent", Value: 3},
			"emerging":    {Label: "Emerging", Value: 1},
			"supported":   {Label: "Supported", Value: 2},
		},
	}
}

func TestLegendOrder(t *testing.T) {
	legend := testDocument().Legend()
	want := []string{"emerging", "supported", "independent"}
	if len(legend) != len(want) {
		t.Fatalf("legend len = %d, want %d", len(legend), len(want))
	}
	for i, k := range want {
		if legend[i].Key != k {
			t.Errorf("legend[%d].Key = %q, want %q", i, legend[i].Key, k)
		}
	}
}

func TestLegendValue(t *testing.T) {
	legend := testDocument().Legend()
	if v := legend.Value("Supported"); v != 2 {
		t.Errorf("Value(Supported) = %d, want 2", v)
	}
	if v := legend.Value("Mastered"); v != 0 {
		t.Errorf("Value(Mastered) = %d, want 0", v)
	}
	if legend.Has("") {
		t.Error("empty label should not be in legend")
	}
}

func TestNilDocument(t *testing.T) {
	var d *Document
	if d.TotalQuestions() != 0 {
		t.Error("nil document should have no questions")
	}
	if _, ok := d.Section("Test Section"); ok {
		t.Error("nil document should have no sections")
	}
	if d.Legend() != nil {
		t.Error("nil document should have nil legend")
	}
	if d.HasQuestion(1) {
		t.Error("nil document should have no question 1")
	}
}

func TestSectionLookup(t *testing.T) {
	d := testDocument()
	s, ok := d.Section("Test Section")
	if !ok {
		t.Fatal("section not found")
	}
	if s.QuestionCount() != 3 {
		t.Errorf("QuestionCount = %d, want 3", s.QuestionCount())
	}
	if _, ok := s.Subsection("Other"); !ok {
		t.Error("subsection Other not found")
	}
	if _, ok := s.Subsection("Missing"); ok {
		t.Error("unexpected subsection Missing")
	}
	if got := d.QuestionIDs(); len(got) != 3 || got[2] != 3 {
		t.Errorf("QuestionIDs = %v", got)
	}
}
