//
// Package scores keeps the in-memory score maps, one per
// tracked year, and the currently selected year.
// Nothing is persisted; a restart starts every year empty.
//
package scores

import (
	"sort"
	"sync"

	"github.com/nsip/otf-eyda/internal/assessment"
	"github.com/pkg/errors"
)

var (
	ErrUnknownYear     = errors.New("year is not tracked")
	ErrUnknownLabel    = errors.New("score label is not in the legend")
	ErrUnknownQuestion = errors.New("question is not in the assessment")
)

//
// Store maps year -> question id -> score label.
// A question with no entry is unanswered; empty labels
// are never stored.
//
type Store struct {
	mu       sync.RWMutex
	doc      *assessment.Document
	legend   assessment.Legend
	current  int
	selected int
	years    []int
	scores   map[int]map[int]string
}

//
// NewStore creates empty score maps for the current year and
// the (history) years before it.
// doc may be nil when the assessment failed to load, in which
// case labels are checked against the default legend and
// question ids are not checked.
//
func NewStore(doc *assessment.Document, currentYear, history int) *Store {
	if history < 0 {
		history = 0
	}
	s := &Store{
		doc:      doc,
		legend:   assessment.DefaultLegend(),
		current:  currentYear,
		selected: currentYear,
		scores:   make(map[int]map[int]string, history+1),
	}
	if doc != nil {
		// the aggregator weighs with the document legend, so
		// labels must come from it too
		s.legend = doc.Legend()
	}
	for y := currentYear; y >= currentYear-history; y-- {
		s.years = append(s.years, y)
		s.scores[y] = make(map[int]string)
	}
	return s
}

// Years returns the tracked years, most recent first.
func (s *Store) Years() []int {
	out := make([]int, len(s.years))
	copy(out, s.years)
	return out
}

func (s *Store) CurrentYear() int {
	return s.current
}

// Selected is the year reads default to.
func (s *Store) Selected() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

func (s *Store) Legend() assessment.Legend {
	return s.legend
}

func (s *Store) Tracks(year int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.scores[year]
	return ok
}

//
// SwitchYear changes the selected year. Stored scores
// are not touched.
//
func (s *Store) SwitchYear(year int) error {
	if !s.Tracks(year) {
		return errors.Wrapf(ErrUnknownYear, "switch to %d", year)
	}
	s.mu.Lock()
	s.selected = year
	s.mu.Unlock()
	return nil
}

// Select records label as the score for question in year, replacing any earlier score.
func (s *Store) Select(year, questionID int, label string) error {
	if !s.Tracks(year) {
		return errors.Wrapf(ErrUnknownYear, "select score for %d", year)
	}
	if !s.legend.Has(label) {
		return errors.Wrapf(ErrUnknownLabel, "label %q", label)
	}
	if s.doc != nil && !s.doc.HasQuestion(questionID) {
		return errors.Wrapf(ErrUnknownQuestion, "question %d", questionID)
	}

	s.mu.Lock()
	s.scores[year][questionID] = label
	s.mu.Unlock()
	return nil
}

// Score returns the label stored for question in year.
func (s *Store) Score(year, questionID int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	label, ok := s.scores[year][questionID]
	return label, ok
}

//
// Scores returns a copy of the year's score map; an
// untracked year gives an empty map.
//
func (s *Store) Scores(year int) map[int]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]string, len(s.scores[year]))
	for id, label := range s.scores[year] {
		out[id] = label
	}
	return out
}

// Answered lists the answered question ids for year in ascending order.
func (s *Store) Answered(year int) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int, 0, len(s.scores[year]))
	for id := range s.scores[year] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Clear empties one year.
func (s *Store) Clear(year int) error {
	if !s.Tracks(year) {
		return errors.Wrapf(ErrUnknownYear, "clear %d", year)
	}
	s.mu.Lock()
	s.scores[year] = make(map[int]string)
	s.mu.Unlock()
	return nil
}

// ClearAll empties every tracked year.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, y := range s.years {
		s.scores[y] = make(map[int]string)
	}
}
