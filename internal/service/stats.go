package service

import (
	"leitner/internal/domain"

	"go.uber.org/zap"
)

// Summary describes how pairs are spread across boxes
type Summary struct {
	Counts      [domain.BoxCount]int
	Total       int
	TotalWeight int
}

// StatsService reports box statistics
type StatsService struct {
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(logger *zap.Logger) *StatsService {
	return &StatsService{logger: logger}
}

// Summarize counts the pairs of every box
func (s *StatsService) Summarize(boxes *domain.BoxSet) Summary {
	var sum Summary
	for b := 0; b < domain.BoxCount; b++ {
		sum.Counts[b] = boxes.Size(b)
		sum.Total += sum.Counts[b]
	}
	sum.TotalWeight = TotalWeight(boxes)
	return sum
}

// LogSummary writes the box statistics to the log
func (s *StatsService) LogSummary(event string, boxes *domain.BoxSet) Summary {
	sum := s.Summarize(boxes)

	s.logger.Info("Box statistics",
		zap.String("event", event),
		zap.Ints("counts", sum.Counts[:]),
		zap.Int("total", sum.Total),
		zap.Int("total_weight", sum.TotalWeight),
	)
	return sum
}
