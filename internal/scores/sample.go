package scores

import (
	"math/rand"
)

//
// GenerateSampleData replaces every year's scores with random
// demo data: the current year is about half answered and leans
// toward the lowest legend level, earlier years are fully answered
// and lean further toward the highest level the older they are.
// The distribution is for demonstration only.
// Returns the number of scores written.
//
func (s *Store) GenerateSampleData(rng *rand.Rand) int {
	if s.doc == nil || len(s.legend) == 0 {
		return 0
	}
	ids := s.doc.QuestionIDs()

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, y := range s.years {
		year := make(map[int]string, len(ids))
		age := s.current - y
		for _, id := range ids {
			if age == 0 && rng.Float64() >= 0.5 {
				continue
			}
			year[id] = s.legend[pickLevel(rng, len(s.legend), age)].Label
			n++
		}
		s.scores[y] = year
	}
	return n
}

//
// pickLevel chooses an index into the legend (lowest first).
// age 0 favours the bottom level; each year of age shifts
// weight toward the top level.
//
func pickLevel(rng *rand.Rand, levels, age int) int {
	if levels == 1 {
		return 0
	}
	top := 0.15 + 0.25*float64(age)
	if top > 0.85 {
		top = 0.85
	}
	bottom := 0.5 - 0.2*float64(age)
	if bottom < 0.05 {
		bottom = 0.05
	}

	r := rng.Float64()
	switch {
	case r < bottom:
		return 0
	case r >= 1-top:
		return levels - 1
	default:
		if levels == 2 {
			return 0
		}
		// spread the middle band over the inner levels
		return 1 + rng.Intn(levels-2)
	}
}
