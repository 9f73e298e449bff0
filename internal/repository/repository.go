package repository

import (
	"context"
	"errors"

	"leitner/internal/domain"
)

var (
	// ErrCorruptState is returned when persisted box state cannot be decoded
	// or describes an invalid box set.
	ErrCorruptState = errors.New("corrupt box state")
	// ErrStateNotFound is returned when no state has been saved yet
	ErrStateNotFound = errors.New("box state not found")
)

// StateRepository persists the full box set of a deck
type StateRepository interface {
	Exists(ctx context.Context) (bool, error)
	Load(ctx context.Context) (*domain.BoxSet, error)
	Save(ctx context.Context, boxes *domain.BoxSet) error
}

// WordSource provides the initial word pairs of a deck
type WordSource interface {
	LoadPairs(ctx context.Context) ([]domain.WordPair, error)
}
