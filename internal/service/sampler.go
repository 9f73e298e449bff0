package service

import (
	"math/rand/v2"

	"leitner/internal/domain"
)

// RandomSource draws uniform integers in [0, n)
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Sampler picks the next pair to quiz.
// Each box weighs floor(1.5^i) per pair it holds, so fuller and higher
// boxes are drawn from more often.
type Sampler struct {
	rnd RandomSource
}

// NewSampler creates a sampler; a nil source uses the global generator
func NewSampler(rnd RandomSource) *Sampler {
	if rnd == nil {
		rnd = globalSource{}
	}
	return &Sampler{rnd: rnd}
}

// TotalWeight returns the sum of all box weights
func TotalWeight(boxes *domain.BoxSet) int {
	total := 0
	for b := 0; b < domain.BoxCount; b++ {
		total += domain.BoxWeight(b) * boxes.Size(b)
	}
	return total
}

// NextPair returns the front pair of a weighted-random box without removing it.
// It returns false when every box is empty.
func (s *Sampler) NextPair(boxes *domain.BoxSet) (domain.WordPair, bool) {
	total := TotalWeight(boxes)
	if total == 0 {
		return domain.WordPair{}, false
	}

	draw := s.rnd.IntN(total)
	cumulative := 0
	for b := 0; b < domain.BoxCount; b++ {
		cumulative += domain.BoxWeight(b) * boxes.Size(b)
		if draw < cumulative {
			// Empty boxes add no weight and can never be selected here
			return boxes.Front(b)
		}
	}

	return domain.WordPair{}, false
}
