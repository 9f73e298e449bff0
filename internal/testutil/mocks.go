package testutil

import (
	"context"

	"leitner/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockStateRepository is a mock for StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) Exists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockStateRepository) Load(ctx context.Context) (*domain.BoxSet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BoxSet), args.Error(1)
}

func (m *MockStateRepository) Save(ctx context.Context, boxes *domain.BoxSet) error {
	args := m.Called(ctx, boxes)
	return args.Error(0)
}

// MockWordSource is a mock for WordSource
type MockWordSource struct {
	mock.Mock
}

func (m *MockWordSource) LoadPairs(ctx context.Context) ([]domain.WordPair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordPair), args.Error(1)
}
