package otfeyda

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/nsip/otf-eyda/internal/aggregate"
	"github.com/nsip/otf-eyda/internal/assessment"
	"github.com/nsip/otf-eyda/internal/scores"
	"github.com/nsip/otf-eyda/internal/theme"
	"github.com/pkg/errors"
)

//
// Score selection sent to the service.
// Params can be provided as json payload, via form components
// or as query params.
//
type ScoreRequest struct {
	//
	// year the score belongs to, 0 means the selected year
	//
	Year int `json:"year" form:"year" query:"year"`
	//
	// id of the question being scored
	//
	QuestionID int `json:"questionId" form:"questionId" query:"questionId"`
	//
	// score label, one of the legend labels e.g. Emerging
	//
	Label string `json:"label" form:"label" query:"label"`
}

type YearRequest struct {
	Year int `json:"year" form:"year" query:"year"`
}

type legendLevel struct {
	assessment.ScoreLevel
	Color theme.Palette `json:"color"`
}

type sectionView struct {
	aggregate.SectionSummary
	Color theme.Palette `json:"color"`
}

type summaryView struct {
	Year         int              `json:"year"`
	Completion   aggregate.Result `json:"completion"`
	Total        aggregate.Result `json:"total"`
	Sections     []sectionView    `json:"sections"`
	Distribution map[string]int   `json:"distribution"`
}

func (s *EydaService) handleAssessment(c echo.Context) error {
	if s.doc == nil {
		return echo.NewHTTPError(http.StatusNotFound, "assessment document not loaded")
	}
	return c.JSON(http.StatusOK, s.doc)
}

func (s *EydaService) handleLegend(c echo.Context) error {
	legend := s.store.Legend()
	levels := make([]legendLevel, 0, len(legend))
	for _, lvl := range legend {
		levels = append(levels, legendLevel{
			ScoreLevel: lvl,
			Color: theme.Palette{
				Primary: theme.ScoreColor(lvl.Label, theme.Primary),
				Light:   theme.ScoreColor(lvl.Label, theme.Light),
				Hover:   theme.ScoreColor(lvl.Label, theme.Hover),
			},
		})
	}
	return c.JSON(http.StatusOK, levels)
}

//
// tab 0 is the home tab, tab n is section n-1
//
func (s *EydaService) handleTab(c echo.Context) error {
	tab, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "tab index must be a number")
	}
	section, ok := theme.SectionForTab(s.doc, tab)
	if !ok {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"tab":         tab,
			"title":       "",
			"subsections": []assessment.Subsection{},
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"tab":         tab,
		"title":       section.Title,
		"subsections": section.Subsections,
		"color":       theme.SectionPalette(section.Title),
	})
}

func (s *EydaService) handleYears(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"years":    s.store.Years(),
		"current":  s.store.CurrentYear(),
		"selected": s.store.Selected(),
	})
}

func (s *EydaService) handleSwitchYear(c echo.Context) error {
	yr := &YearRequest{}
	if err := c.Bind(yr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}
	if err := s.store.SwitchYear(yr.Year); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"selected": s.store.Selected(),
	})
}

func (s *EydaService) handleSelectScore(c echo.Context) error {
	sr := &ScoreRequest{}
	if err := c.Bind(sr); err != nil {
		log.Errorf("bind error: %s", err)
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}
	if sr.Label == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "must supply a value for label")
	}
	if sr.Year == 0 {
		sr.Year = s.store.Selected()
	}

	if err := s.store.Select(sr.Year, sr.QuestionID, sr.Label); err != nil {
		return storeError(err)
	}
	log.Debugf("question %d scored as %s for %d", sr.QuestionID, sr.Label, sr.Year)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"year":       sr.Year,
		"questionId": sr.QuestionID,
		"label":      sr.Label,
		"completion": aggregate.Completion(s.doc, s.store.Scores(sr.Year)),
	})
}

func (s *EydaService) handleGenerateSample(c echo.Context) error {
	n := s.store.GenerateSampleData(s.rng)
	log.Infof("generated %d sample scores", n)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"generated": n,
	})
}

func (s *EydaService) handleClearAll(c echo.Context) error {
	s.store.ClearAll()
	return c.NoContent(http.StatusNoContent)
}

func (s *EydaService) handleClearYear(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	if err := s.store.Clear(year); err != nil {
		return storeError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *EydaService) handleYearScores(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	if !s.store.Tracks(year) {
		return storeError(errors.Wrapf(scores.ErrUnknownYear, "scores for %d", year))
	}
	return c.JSON(http.StatusOK, s.store.Scores(year))
}

func (s *EydaService) handleQuestionScore(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("questionId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "questionId must be a number")
	}
	label, ok := s.store.Score(year, id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "question not answered")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"year":       year,
		"questionId": id,
		"label":      label,
	})
}

func (s *EydaService) handleCompletion(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, aggregate.Completion(s.doc, s.store.Scores(year)))
}

func (s *EydaService) handleSectionScore(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	title := c.QueryParam("title")
	return c.JSON(http.StatusOK, aggregate.SectionScore(s.doc, s.store.Scores(year), title))
}

func (s *EydaService) handleSubsectionScore(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	section, title := c.QueryParam("section"), c.QueryParam("title")
	return c.JSON(http.StatusOK, aggregate.SubsectionScore(s.doc, s.store.Scores(year), section, title))
}

func (s *EydaService) handleSummary(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.summary(year))
}

//
// progress for every tracked year, most recent first
//
func (s *EydaService) handleAllSummaries(c echo.Context) error {
	years := s.store.Years()
	views := make([]summaryView, 0, len(years))
	for _, y := range years {
		views = append(views, s.summary(y))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"current":        s.store.CurrentYear(),
		"selected":       s.store.Selected(),
		"totalQuestions": aggregate.TotalQuestions(s.doc),
		"years":          views,
	})
}

func (s *EydaService) summary(year int) summaryView {
	sum := aggregate.Summarise(s.doc, s.store.Scores(year))
	view := summaryView{
		Year:         year,
		Completion:   sum.Completion,
		Total:        sum.Total,
		Sections:     make([]sectionView, 0, len(sum.Sections)),
		Distribution: sum.Distribution,
	}
	for _, ss := range sum.Sections {
		view.Sections = append(view.Sections, sectionView{
			SectionSummary: ss,
			Color:          theme.SectionPalette(ss.Title),
		})
	}
	return view
}

func yearParam(c echo.Context) (int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "year must be a number")
	}
	return year, nil
}

// map store errors onto http errors
func storeError(err error) error {
	switch errors.Cause(err) {
	case scores.ErrUnknownYear:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case scores.ErrUnknownLabel, scores.ErrUnknownQuestion:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
