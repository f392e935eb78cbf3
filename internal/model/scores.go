package model

// CategoryScore records the accumulated signal weight for one category.
type CategoryScore struct {
	Category Category
	Score    int
}

// CategoryScores holds one score per category, kept in category declaration
// order. Keeping the order fixed makes the tie-break deterministic: equal
// scores always resolve to the first declared category.
type CategoryScores []CategoryScore

// Best returns the index of the highest-scoring entry, comparing strictly so
// earlier entries win ties. Returns -1 for an empty slice.
func (s CategoryScores) Best() int {
	best := -1
	for i := range s {
		if best == -1 || s[i].Score > s[best].Score {
			best = i
		}
	}
	return best
}

// RunnerUp returns the highest score among all entries except the one at
// index best, or 0 when no other entry exists.
func (s CategoryScores) RunnerUp(best int) int {
	second := 0
	for i := range s {
		if i == best {
			continue
		}
		if s[i].Score > second {
			second = s[i].Score
		}
	}
	return second
}

// AllZero reports whether no category accumulated any signal.
func (s CategoryScores) AllZero() bool {
	for i := range s {
		if s[i].Score != 0 {
			return false
		}
	}
	return true
}
