package domain

import (
	"fmt"
	"math"
)

const (
	// BoxCount is the number of proficiency boxes
	BoxCount = 10
	// TopBox is the most proficient box; correct answers there stay there
	TopBox = BoxCount - 1
)

// BoxWeight returns the per-pair sampling weight of a box: floor(1.5^box)
func BoxWeight(box int) int {
	mustValidBox(box)
	return int(math.Floor(math.Pow(1.5, float64(box))))
}

// BoxSet holds the ten FIFO boxes of a training session.
// Box 0 holds the least known pairs. The zero value is an empty set.
type BoxSet struct {
	boxes [BoxCount][]WordPair
}

// NewBoxSet creates an empty box set
func NewBoxSet() *BoxSet {
	return &BoxSet{}
}

// AddWord appends a pair to the back of a box.
// It panics if box is outside [0, TopBox].
func (s *BoxSet) AddWord(pair WordPair, box int) {
	mustValidBox(box)
	s.boxes[box] = append(s.boxes[box], pair)
}

// BoxContents returns a copy of the pairs queued in a box, oldest first
func (s *BoxSet) BoxContents(box int) []WordPair {
	mustValidBox(box)
	out := make([]WordPair, len(s.boxes[box]))
	copy(out, s.boxes[box])
	return out
}

// Size returns the number of pairs in a box
func (s *BoxSet) Size(box int) int {
	mustValidBox(box)
	return len(s.boxes[box])
}

// Front returns the oldest pair of a box without removing it
func (s *BoxSet) Front(box int) (WordPair, bool) {
	mustValidBox(box)
	if len(s.boxes[box]) == 0 {
		return WordPair{}, false
	}
	return s.boxes[box][0], true
}

// Len returns the number of pairs across all boxes
func (s *BoxSet) Len() int {
	n := 0
	for i := range s.boxes {
		n += len(s.boxes[i])
	}
	return n
}

// Find locates the first occurrence of pair, scanning boxes from 0 upward
// and each box from front to back.
func (s *BoxSet) Find(pair WordPair) (box, pos int, ok bool) {
	for b := range s.boxes {
		for i, p := range s.boxes[b] {
			if p == pair {
				return b, i, true
			}
		}
	}
	return 0, 0, false
}

// Remove deletes the first occurrence of pair (see Find) and reports
// which box it was taken from.
func (s *BoxSet) Remove(pair WordPair) (int, bool) {
	box, pos, ok := s.Find(pair)
	if !ok {
		return 0, false
	}
	q := s.boxes[box]
	s.boxes[box] = append(q[:pos:pos], q[pos+1:]...)
	return box, true
}

// Equal reports whether both sets hold the same pairs in the same order per box
func (s *BoxSet) Equal(other *BoxSet) bool {
	for b := range s.boxes {
		if len(s.boxes[b]) != len(other.boxes[b]) {
			return false
		}
		for i := range s.boxes[b] {
			if s.boxes[b][i] != other.boxes[b][i] {
				return false
			}
		}
	}
	return true
}

func mustValidBox(box int) {
	if box < 0 || box > TopBox {
		panic(fmt.Sprintf("domain: box index %d out of range [0,%d]", box, TopBox))
	}
}

// ValidBox reports whether box is a valid box index
func ValidBox(box int) bool {
	return box >= 0 && box <= TopBox
}
