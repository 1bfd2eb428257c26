package grade

import (
	"strconv"
	"strings"
)

// DefaultOutOf is the maximum used when none, or an invalid one, is given.
const DefaultOutOf = 100

// Store holds the scores of a roster for one assignment, all out of the same maximum.
// Invalid mutations are silent no-ops: a score always satisfies 0 <= score <= outOf.
// A Store is owned by a single view and is not safe for concurrent use.
type Store struct {
	scores map[string]int
	outOf  int
}

func NewStore(outOf int) *Store {
	if outOf <= 0 {
		outOf = DefaultOutOf
	}
	return &Store{scores: make(map[string]int), outOf: outOf}
}

// SetScore parses raw as a base-10 integer and records it for studentID.
// Malformed input or a score outside [0, outOf] leaves the previous value untouched.
// It reports whether the score was recorded.
func (s *Store) SetScore(studentID, raw string) bool {
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || score < 0 || score > s.outOf {
		return false
	}
	s.scores[studentID] = score
	return true
}

// SetOutOf replaces the maximum and lowers every recorded score above it.
// Non-positive maximums are ignored.
func (s *Store) SetOutOf(newMax int) bool {
	if newMax <= 0 {
		return false
	}
	s.outOf = newMax
	for id, score := range s.scores {
		if score > newMax {
			s.scores[id] = newMax
		}
	}
	return true
}

// ClearAll drops every score; the maximum is kept.
func (s *Store) ClearAll() {
	s.scores = make(map[string]int)
}

func (s *Store) Score(studentID string) (int, bool) {
	score, ok := s.scores[studentID]
	return score, ok
}

func (s *Store) OutOf() int { return s.outOf }

// Len is the number of recorded scores.
func (s *Store) Len() int { return len(s.scores) }

// Scores returns a copy of the recorded scores keyed by student ID.
func (s *Store) Scores() map[string]int {
	scores := make(map[string]int, len(s.scores))
	for id, score := range s.scores {
		scores[id] = score
	}
	return scores
}
