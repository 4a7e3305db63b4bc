package aggregate

import (
	"testing"

	"github.com/nsip/otf-eyda/internal/assessment"
)

func smallDocument() *assessment.Document {
	return &assessment.Document{
		Sections: []assessment.Section{
			{
				Title: "Test Section",
				Subsections: []assessment.Subsection{
					{Title: "Test Subsection", Questions: []assessment.Question{{ID: 1, Text: "Test question 1"}, {ID: 2, Text: "Test question 2"}}},
				},
			},
		},
		Scoring: map[string]assessment.ScoreLevel{
			"emerging":    {Label: "Emerging", Value: 1, Description: "Test"},
			"supported":   {Label: "Supported", Value: 2, Description: "Test"},
			"independent": {Label: "Independent", Value: 3, Description: "Test"},
		},
	}
}

func twoSectionDocument() *assessment.Document {
	doc := smallDocument()
	doc.Sections = append(doc.Sections, assessment.Section{
		Title: "Second",
		Subsections: []assessment.Subsection{
			{Title: "A", Questions: []assessment.Question{{ID: 3}, {ID: 4}, {ID: 5}}},
			{Title: "B", Questions: []assessment.Question{{ID: 6}}},
		},
	})
	return doc
}

func TestSectionScoreExample(t *testing.T) {
	doc := smallDocument()
	got := SectionScore(doc, map[int]string{1: "Emerging", 2: "Independent"}, "Test Section")
	want := Result{Current: 4, Total: 6, Percentage: 67}
	if got != want {
		t.Errorf("SectionScore = %+v, want %+v", got, want)
	}

	got = SectionScore(doc, map[int]string{}, "Test Section")
	want = Result{Current: 0, Total: 6, Percentage: 0}
	if got != want {
		t.Errorf("SectionScore(empty) = %+v, want %+v", got, want)
	}
}

func TestCompletion(t *testing.T) {
	doc := smallDocument()
	got := Completion(doc, map[int]string{1: "Emerging", 2: "Supported"})
	want := Result{Current: 2, Total: 2, Percentage: 100}
	if got != want {
		t.Errorf("Completion = %+v, want %+v", got, want)
	}
	if got := Completion(nil, map[int]string{1: "Emerging"}); got.Percentage != 0 || got.Total != 0 {
		t.Errorf("Completion with no document = %+v", got)
	}

	doc = twoSectionDocument()
	got = Completion(doc, map[int]string{1: "Emerging"})
	want = Result{Current: 1, Total: 6, Percentage: 17}
	if got != want {
		t.Errorf("Completion = %+v, want %+v", got, want)
	}
}

func TestYearTotalIgnoresForeignIDs(t *testing.T) {
	doc := smallDocument()
	got := YearTotal(doc, map[int]string{1: "Emerging", 99: "Supported"})
	want := Result{Current: 1, Total: 2, Percentage: 50}
	if got != want {
		t.Errorf("YearTotal = %+v, want %+v", got, want)
	}
	if got := YearTotal(nil, nil); got != (Result{}) {
		t.Errorf("YearTotal(nil) = %+v", got)
	}
}

func TestMissingLookupsAreZero(t *testing.T) {
	doc := twoSectionDocument()
	scores := map[int]string{1: "Independent", 3: "Independent"}

	tests := []struct {
		name string
		got  Result
	}{
		{"missing section", SectionScore(doc, scores, "Nope")},
		{"missing subsection section", SubsectionScore(doc, scores, "Nope", "A")},
		{"missing subsection", SubsectionScore(doc, scores, "Second", "Nope")},
		{"nil document", SectionScore(nil, scores, "Second")},
	}
	for _, tt := range tests {
		if tt.got != (Result{}) {
			t.Errorf("%s: got %+v, want zero", tt.name, tt.got)
		}
	}
}

func TestUnknownLabelWeighsZero(t *testing.T) {
	doc := smallDocument()
	got := SectionScore(doc, map[int]string{1: "Mastered", 2: "Supported"}, "Test Section")
	want := Result{Current: 2, Total: 6, Percentage: 33}
	if got != want {
		t.Errorf("SectionScore = %+v, want %+v", got, want)
	}
}

func TestSubsectionScore(t *testing.T) {
	doc := twoSectionDocument()
	scores := map[int]string{3: "Independent", 4: "Supported", 6: "Emerging"}

	got := SubsectionScore(doc, scores, "Second", "A")
	want := Result{Current: 5, Total: 9, Percentage: 56}
	if got != want {
		t.Errorf("SubsectionScore(A) = %+v, want %+v", got, want)
	}
	got = SubsectionScore(doc, scores, "Second", "B")
	want = Result{Current: 1, Total: 3, Percentage: 33}
	if got != want {
		t.Errorf("SubsectionScore(B) = %+v, want %+v", got, want)
	}
	got = SectionScore(doc, scores, "Second")
	want = Result{Current: 6, Total: 12, Percentage: 50}
	if got != want {
		t.Errorf("SectionScore(Second) = %+v, want %+v", got, want)
	}
}

func TestSectionScoreMonotonic(t *testing.T) {
	doc := twoSectionDocument()
	scores := map[int]string{}
	prev := SectionScore(doc, scores, "Second").Percentage
	for _, id := range []int{3, 4, 5, 6} {
		for _, label := range []string{"Emerging", "Supported", "Independent"} {
			next := map[int]string{}
			for k, v := range scores {
				next[k] = v
			}
			next[id] = label
			p := SectionScore(doc, next, "Second").Percentage
			if p < prev {
				t.Fatalf("percentage fell from %d to %d answering %d=%s", prev, p, id, label)
			}
			if p < 0 || p > 100 {
				t.Fatalf("percentage %d out of range", p)
			}
		}
		scores[id] = "Emerging"
		prev = SectionScore(doc, scores, "Second").Percentage
	}
	for id := range scores {
		scores[id] = "Independent"
	}
	if p := SectionScore(doc, scores, "Second").Percentage; p != 100 {
		t.Errorf("all Independent percentage = %d, want 100", p)
	}
}

func TestDistribution(t *testing.T) {
	doc := smallDocument()
	got := Distribution(doc, map[int]string{1: "Emerging", 2: "Emerging", 3: "Other"})
	if got["Emerging"] != 2 || got["Supported"] != 0 || got["Independent"] != 0 {
		t.Errorf("Distribution = %v", got)
	}
	if _, ok := got["Other"]; ok {
		t.Error("labels outside the legend should not be counted")
	}

	got = Distribution(nil, map[int]string{1: "Supported"})
	if got["Supported"] != 1 || len(got) != 3 {
		t.Errorf("Distribution without document = %v", got)
	}
}

func TestSummarise(t *testing.T) {
	doc := twoSectionDocument()
	sum := Summarise(doc, map[int]string{1: "Emerging", 2: "Independent", 6: "Supported"})

	if sum.Completion != (Result{Current: 3, Total: 6, Percentage: 50}) {
		t.Errorf("Completion = %+v", sum.Completion)
	}
	if len(sum.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(sum.Sections))
	}
	if sum.Sections[0].Score != (Result{Current: 4, Total: 6, Percentage: 67}) {
		t.Errorf("first section = %+v", sum.Sections[0].Score)
	}
	second := sum.Sections[1]
	if second.Questions != 4 || len(second.Subsections) != 2 {
		t.Fatalf("second section = %+v", second)
	}
	if second.Subsections[1].Score != (Result{Current: 2, Total: 3, Percentage: 67}) {
		t.Errorf("subsection B = %+v", second.Subsections[1].Score)
	}

	empty := Summarise(nil, nil)
	if len(empty.Sections) != 0 || empty.Completion != (Result{}) {
		t.Errorf("Summarise(nil) = %+v", empty)
	}
}
