package testutil

import (
	"leitner/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestPair creates a test word pair
func NewTestPair(term, translation string) domain.WordPair {
	return domain.WordPair{Term: term, Translation: translation}
}

// NewTestBoxes creates a box set with the given pairs per box index
func NewTestBoxes(contents map[int][]domain.WordPair) *domain.BoxSet {
	boxes := domain.NewBoxSet()
	for b := 0; b < domain.BoxCount; b++ {
		for _, pair := range contents[b] {
			boxes.AddWord(pair, b)
		}
	}
	return boxes
}

// SequenceSource returns predefined draws in order, wrapping around.
// Each draw is reduced modulo n.
type SequenceSource struct {
	Draws []int
	next  int
}

// IntN returns the next predefined draw
func (s *SequenceSource) IntN(n int) int {
	if len(s.Draws) == 0 {
		return 0
	}
	v := s.Draws[s.next%len(s.Draws)] % n
	s.next++
	return v
}
