package aggregate

import "github.com/nsip/otf-eyda/internal/assessment"

type Summary struct {
	Completion   Result           `json:"completion"`
	Total        Result           `json:"total"`
	Sections     []SectionSummary `json:"sections"`
	Distribution map[string]int   `json:"distribution"`
}

type SectionSummary struct {
	Title       string              `json:"title"`
	Questions   int                 `json:"questions"`
	Score       Result              `json:"score"`
	Subsections []SubsectionSummary `json:"subsections"`
}

type SubsectionSummary struct {
	Title     string `json:"title"`
	Questions int    `json:"questions"`
	Score     Result `json:"score"`
}

//
// Summarise builds every figure for one year in a single
// pass over the document, in document order.
//
func Summarise(doc *assessment.Document, scores map[int]string) Summary {
	sum := Summary{
		Completion:   Completion(doc, scores),
		Total:        YearTotal(doc, scores),
		Sections:     []SectionSummary{},
		Distribution: Distribution(doc, scores),
	}
	if doc == nil {
		return sum
	}

	legend := doc.Legend()
	for _, s := range doc.Sections {
		ss := SectionSummary{
			Title:       s.Title,
			Questions:   s.QuestionCount(),
			Score:       sectionResult(s, legend, scores),
			Subsections: make([]SubsectionSummary, 0, len(s.Subsections)),
		}
		for _, sub := range s.Subsections {
			ss.Subsections = append(ss.Subsections, SubsectionSummary{
				Title:     sub.Title,
				Questions: len(sub.Questions),
				Score:     subsectionResult(sub, legend, scores),
			})
		}
		sum.Sections = append(sum.Sections, ss)
	}

	return sum
}
