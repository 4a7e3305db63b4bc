//
// Package assessment holds the read-only questionnaire
// document: sections, subsections, questions and the
// scoring legend used to weight answers.
//
package assessment

import "sort"

// MaxValue is the highest legend value a single question can earn.
const MaxValue = 3

type Document struct {
	Sections []Section `json:"sections"`
	//
	// scoring legend keyed by a short name,
	// e.g. "emerging" -> {Emerging, 1, ...}
	//
	Scoring map[string]ScoreLevel `json:"scoring"`
}

type Section struct {
	Title       string       `json:"title"`
	Subsections []Subsection `json:"subsections"`
}

type Subsection struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

type Question struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type ScoreLevel struct {
	Key         string `json:"key,omitempty"`
	Label       string `json:"label"`
	Value       int    `json:"value"`
	Description string `json:"description"`
}

// QuestionCount returns the number of questions in the section.
func (s Section) QuestionCount() int {
	n := 0
	for _, sub := range s.Subsections {
		n += len(sub.Questions)
	}
	return n
}

// Section finds a section by title, linear scan.
func (d *Document) Section(title string) (Section, bool) {
	if d == nil {
		return Section{}, false
	}
	for _, s := range d.Sections {
		if s.Title == title {
			return s, true
		}
	}
	return Section{}, false
}

// Subsection finds a subsection by title within this section.
func (s Section) Subsection(title string) (Subsection, bool) {
	for _, sub := range s.Subsections {
		if sub.Title == title {
			return sub, true
		}
	}
	return Subsection{}, false
}

// TotalQuestions sums the questions of every subsection.
func (d *Document) TotalQuestions() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, s := range d.Sections {
		n += s.QuestionCount()
	}
	return n
}

// HasQuestion reports whether id belongs to the document.
func (d *Document) HasQuestion(id int) bool {
	if d == nil {
		return false
	}
	for _, s := range d.Sections {
		for _, sub := range s.Subsections {
			for _, q := range sub.Questions {
				if q.ID == id {
					return true
				}
			}
		}
	}
	return false
}

// QuestionIDs lists every question id in document order.
func (d *Document) QuestionIDs() []int {
	if d == nil {
		return nil
	}
	ids := make([]int, 0, d.TotalQuestions())
	for _, s := range d.Sections {
		for _, sub := range s.Subsections {
			for _, q := range sub.Questions {
				ids = append(ids, q.ID)
			}
		}
	}
	return ids
}

//
// Legend returns the scoring levels ordered by value
// (then key), with each level's key filled in.
// A nil document yields an empty legend.
//
func (d *Document) Legend() Legend {
	if d == nil {
		return nil
	}
	levels := make(Legend, 0, len(d.Scoring))
	for k, lvl := range d.Scoring {
		lvl.Key = k
		levels = append(levels, lvl)
	}
	sort.Slice(levels, func(i, j int) bool {
		if levels[i].Value == levels[j].Value {
			return levels[i].Key < levels[j].Key
		}
		return levels[i].Value < levels[j].Value
	})
	return levels
}

// Legend is an ordered set of score levels.
type Legend []ScoreLevel

// Value returns the weight for label, 0 when the label is not in the legend.
func (l Legend) Value(label string) int {
	for _, lvl := range l {
		if lvl.Label == label {
			return lvl.Value
		}
	}
	return 0
}

func (l Legend) Has(label string) bool {
	for _, lvl := range l {
		if lvl.Label == label {
			return true
		}
	}
	return false
}

func (l Legend) Labels() []string {
	labels := make([]string, 0, len(l))
	for _, lvl := range l {
		labels = append(labels, lvl.Label)
	}
	return labels
}

//
// DefaultLegend is the three-level scale used when
// no document has been loaded.
//
func DefaultLegend() Legend {
	return Legend{
		{Key: "emerging", Label: "Emerging", Value: 1, Description: "Beginning to show the skill with significant support"},
		{Key: "supported", Label: "Supported", Value: 2, Description: "Shows the skill with some adult support"},
		{Key: "independent", Label: "Independent", Value: 3, Description: "Shows the skill consistently without support"},
	}
}
