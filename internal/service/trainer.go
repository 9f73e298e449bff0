package service

import (
	"context"
	"fmt"

	"leitner/internal/domain"
	"leitner/internal/repository"

	"go.uber.org/zap"
)

// TrainerService owns the box set of one training session
type TrainerService struct {
	words   repository.WordSource
	state   repository.StateRepository
	sampler *Sampler
	grader  *Grader
	logger  *zap.Logger

	boxes *domain.BoxSet
}

// NewTrainerService creates a trainer with an empty box set
func NewTrainerService(
	words repository.WordSource,
	state repository.StateRepository,
	sampler *Sampler,
	grader *Grader,
	logger *zap.Logger,
) *TrainerService {
	return &TrainerService{
		words:   words,
		state:   state,
		sampler: sampler,
		grader:  grader,
		logger:  logger,
		boxes:   domain.NewBoxSet(),
	}
}

// Boxes returns the session's box set
func (s *TrainerService) Boxes() *domain.BoxSet {
	return s.boxes
}

// HasSavedState reports whether a previous session can be resumed
func (s *TrainerService) HasSavedState(ctx context.Context) (bool, error) {
	return s.state.Exists(ctx)
}

// LoadWords replaces the box set with the word source, every pair in box 0
func (s *TrainerService) LoadWords(ctx context.Context) (int, error) {
	pairs, err := s.words.LoadPairs(ctx)
	if err != nil {
		return 0, fmt.Errorf("load words: %w", err)
	}

	boxes := domain.NewBoxSet()
	for _, pair := range pairs {
		boxes.AddWord(pair, 0)
	}
	s.boxes = boxes

	s.logger.Info("Words loaded into box 0", zap.Int("pairs", len(pairs)))
	return len(pairs), nil
}

// Resume replaces the box set with the saved state
func (s *TrainerService) Resume(ctx context.Context) error {
	boxes, err := s.state.Load(ctx)
	if err != nil {
		return fmt.Errorf("resume session: %w", err)
	}
	s.boxes = boxes

	s.logger.Info("Session resumed", zap.Int("pairs", boxes.Len()))
	return nil
}

// Next returns the pair to quiz next, or false when there is nothing to quiz
func (s *TrainerService) Next() (domain.WordPair, bool) {
	return s.sampler.NextPair(s.boxes)
}

// Answer grades an answer for pair and reports whether it was correct
func (s *TrainerService) Answer(pair domain.WordPair, answer string) bool {
	if pair.Matches(answer) {
		s.grader.MarkCorrect(s.boxes, pair)
		return true
	}
	s.grader.MarkWrong(s.boxes, pair)
	return false
}

// Save persists the box set
func (s *TrainerService) Save(ctx context.Context) error {
	if err := s.state.Save(ctx, s.boxes); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("Session saved", zap.Int("pairs", s.boxes.Len()))
	return nil
}
