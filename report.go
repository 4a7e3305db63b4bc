package otfeyda

import (
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nsip/otf-eyda/internal/aggregate"
	"github.com/nsip/otf-eyda/internal/theme"
)

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Early Years Development Assessment {{.Year}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
h2 { padding: 4px 8px; color: #fff; }
table { border-collapse: collapse; width: 100%; margin-bottom: 1em; }
td, th { border: 1px solid #ddd; padding: 4px 8px; text-align: left; }
@media print { h2 { -webkit-print-color-adjust: exact; print-color-adjust: exact; } }
</style>
</head>
<body>
<h1>Early Years Development Assessment {{.Year}}</h1>
<p>Completed {{.Summary.Completion.Current}} of {{.Summary.Completion.Total}} questions ({{.Summary.Completion.Percentage}}%)</p>
<p>{{range .Legend}}{{.Label}}: {{index $.Summary.Distribution .Label}} &nbsp; {{end}}</p>
{{range .Sections}}
<h2 style="background: {{.Color}}">{{.Title}} &ndash; {{.Score.Current}}/{{.Score.Total}} ({{.Score.Percentage}}%)</h2>
{{range .Subsections}}
<table>
<tr><th colspan="2">{{.Title}} &ndash; {{.Score.Percentage}}%</th></tr>
{{range .Questions}}<tr style="background: {{.Background}}"><td>{{.Text}}</td><td>{{if .Label}}{{.Label}}{{else}}&mdash;{{end}}</td></tr>
{{end}}</table>
{{end}}
{{end}}
</body>
</html>
`

type reportRenderer struct {
	templates *template.Template
}

func newReportRenderer() *reportRenderer {
	return &reportRenderer{
		templates: template.Must(template.New("report").Parse(reportTemplate)),
	}
}

func (r *reportRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

type reportQuestion struct {
	Text       string
	Label      string
	Background template.CSS
}

type reportSubsection struct {
	Title     string
	Score     aggregate.Result
	Questions []reportQuestion
}

type reportSection struct {
	Title       string
	Color       template.CSS
	Score       aggregate.Result
	Subsections []reportSubsection
}

//
// printable view of one year; the host's print dialog
// turns it into paper or pdf
//
func (s *EydaService) handleReport(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	if s.doc == nil {
		return echo.NewHTTPError(http.StatusNotFound, "assessment document not loaded")
	}

	yearScores := s.store.Scores(year)
	sum := s.summary(year)

	sections := make([]reportSection, 0, len(sum.Sections))
	for i, ss := range sum.Sections {
		rs := reportSection{
			Title: ss.Title,
			Color: template.CSS(theme.SectionColor(ss.Title, theme.Primary)),
			Score: ss.Score,
		}
		docSection := s.doc.Sections[i]
		for j, sub := range ss.Subsections {
			rsub := reportSubsection{Title: sub.Title, Score: sub.Score}
			for _, q := range docSection.Subsections[j].Questions {
				label := yearScores[q.ID]
				rsub.Questions = append(rsub.Questions, reportQuestion{
					Text:       q.Text,
					Label:      label,
					Background: template.CSS(theme.QuestionBackground(label)),
				})
			}
			rs.Subsections = append(rs.Subsections, rsub)
		}
		sections = append(sections, rs)
	}

	return c.Render(http.StatusOK, "report", map[string]interface{}{
		"Year":     year,
		"Summary":  sum,
		"Legend":   s.store.Legend(),
		"Sections": sections,
	})
}
