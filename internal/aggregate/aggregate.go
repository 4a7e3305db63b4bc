//
// Package aggregate computes completion and weighted
// progress figures for one year's scores against the
// assessment document.
// All functions are pure; a missing document, section
// or subsection gives a zero Result, never an error.
//
package aggregate

import (
	"math"

	"github.com/nsip/otf-eyda/internal/assessment"
)

//
// Result is the {current, total, percentage} tuple
// reported at every level of the document.
//
type Result struct {
	Current    int `json:"current"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

func newResult(current, total int) Result {
	return Result{Current: current, Total: total, Percentage: percent(current, total)}
}

// round(100 * n / d), 0 when d is 0
func percent(n, d int) int {
	if d <= 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(d) * 100))
}

// TotalQuestions is the number of questions in the whole document.
func TotalQuestions(doc *assessment.Document) int {
	return doc.TotalQuestions()
}

// CompletionCount is the number of answered questions for the year.
func CompletionCount(scores map[int]string) int {
	return len(scores)
}

//
// Completion reports answered / total questions for the year,
// counting every entry in the score map.
//
func Completion(doc *assessment.Document, scores map[int]string) Result {
	return newResult(CompletionCount(scores), TotalQuestions(doc))
}

//
// YearTotal walks the document and counts the questions
// that have a score, ignoring map entries for ids the
// document does not contain.
//
func YearTotal(doc *assessment.Document, scores map[int]string) Result {
	if doc == nil {
		return Result{}
	}
	answered, total := 0, 0
	for _, s := range doc.Sections {
		for _, sub := range s.Subsections {
			for _, q := range sub.Questions {
				total++
				if scores[q.ID] != "" {
					answered++
				}
			}
		}
	}
	return newResult(answered, total)
}

//
// SectionScore sums the legend value of every answered question
// in the section against a maximum of questions * MaxValue.
//
func SectionScore(doc *assessment.Document, scores map[int]string, sectionTitle string) Result {
	section, ok := doc.Section(sectionTitle)
	if !ok {
		return Result{}
	}
	return sectionResult(section, doc.Legend(), scores)
}

// SubsectionScore is SectionScore scoped to one subsection.
func SubsectionScore(doc *assessment.Document, scores map[int]string, sectionTitle, subsectionTitle string) Result {
	section, ok := doc.Section(sectionTitle)
	if !ok {
		return Result{}
	}
	sub, ok := section.Subsection(subsectionTitle)
	if !ok {
		return Result{}
	}
	return subsectionResult(sub, doc.Legend(), scores)
}

func sectionResult(section assessment.Section, legend assessment.Legend, scores map[int]string) Result {
	current, questions := 0, 0
	for _, sub := range section.Subsections {
		current += weigh(sub, legend, scores)
		questions += len(sub.Questions)
	}
	return newResult(current, questions*assessment.MaxValue)
}

func subsectionResult(sub assessment.Subsection, legend assessment.Legend, scores map[int]string) Result {
	return newResult(weigh(sub, legend, scores), len(sub.Questions)*assessment.MaxValue)
}

// unknown labels weigh 0
func weigh(sub assessment.Subsection, legend assessment.Legend, scores map[int]string) int {
	sum := 0
	for _, q := range sub.Questions {
		if label, ok := scores[q.ID]; ok {
			sum += legend.Value(label)
		}
	}
	return sum
}

//
// Distribution counts answers per legend label. Every legend
// label is present in the result; labels outside the legend
// are not counted.
//
func Distribution(doc *assessment.Document, scores map[int]string) map[string]int {
	legend := doc.Legend()
	if legend == nil {
		legend = assessment.DefaultLegend()
	}
	dist := make(map[string]int, len(legend))
	for _, label := range legend.Labels() {
		dist[label] = 0
	}
	for _, label := range scores {
		if _, ok := dist[label]; ok {
			dist[label]++
		}
	}
	return dist
}
