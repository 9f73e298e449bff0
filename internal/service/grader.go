package service

import (
	"leitner/internal/domain"

	"go.uber.org/zap"
)

// Move describes a pair changing boxes
type Move struct {
	From int
	To   int
}

// Grader applies answer results to a box set.
// A graded pair is always the first occurrence found from box 0 upward.
type Grader struct {
	logger *zap.Logger
}

// NewGrader creates a new grader
func NewGrader(logger *zap.Logger) *Grader {
	return &Grader{logger: logger}
}

// MarkCorrect moves the pair one box up; pairs in the top box stay there
func (g *Grader) MarkCorrect(boxes *domain.BoxSet, pair domain.WordPair) (Move, bool) {
	return g.move(boxes, pair, func(from int) int {
		if from < domain.TopBox {
			return from + 1
		}
		return domain.TopBox
	})
}

// MarkWrong sends the pair back to box 0
func (g *Grader) MarkWrong(boxes *domain.BoxSet, pair domain.WordPair) (Move, bool) {
	return g.move(boxes, pair, func(int) int { return 0 })
}

func (g *Grader) move(boxes *domain.BoxSet, pair domain.WordPair, next func(from int) int) (Move, bool) {
	from, ok := boxes.Remove(pair)
	if !ok {
		g.logger.Warn("Graded pair not found in any box", zap.String("term", pair.Term))
		return Move{}, false
	}

	to := next(from)
	boxes.AddWord(pair, to)

	g.logger.Debug("Pair moved",
		zap.String("term", pair.Term),
		zap.Int("from_box", from),
		zap.Int("to_box", to),
	)
	return Move{From: from, To: to}, true
}
