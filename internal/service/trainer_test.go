package service

import (
	"context"
	"fmt"
	"testing"

	"leitner/internal/domain"
	"leitner/internal/repository"
	"leitner/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTrainer(words *testutil.MockWordSource, state *testutil.MockStateRepository, draws ...int) *TrainerService {
	logger := testutil.NewTestLogger()
	return NewTrainerService(
		words,
		state,
		NewSampler(&testutil.SequenceSource{Draws: draws}),
		NewGrader(logger),
		logger,
	)
}

func TestTrainerService_LoadWords(t *testing.T) {
	cat := testutil.NewTestPair("cat", "gato")
	dog := testutil.NewTestPair("dog", "perro")

	tests := []struct {
		name          string
		mockPairs     []domain.WordPair
		mockError     error
		expectedCount int
		expectedError bool
	}{
		{
			name:          "pairs go to box 0",
			mockPairs:     []domain.WordPair{cat, dog},
			expectedCount: 2,
		},
		{
			name:          "no pairs",
			mockPairs:     []domain.WordPair{},
			expectedCount: 0,
		},
		{
			name:          "word source error",
			mockError:     fmt.Errorf("file error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := new(testutil.MockWordSource)
			words.On("LoadPairs", mock.Anything).Return(tt.mockPairs, tt.mockError)

			trainer := newTestTrainer(words, new(testutil.MockStateRepository))

			count, err := trainer.LoadWords(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCount, count)
				assert.Equal(t, tt.expectedCount, trainer.Boxes().Size(0))
				assert.Equal(t, tt.expectedCount, trainer.Boxes().Len())
			}

			words.AssertExpectations(t)
		})
	}
}

func TestTrainerService_CatDogScenario(t *testing.T) {
	cat := testutil.NewTestPair("cat", "gato")
	dog := testutil.NewTestPair("dog", "perro")

	words := new(testutil.MockWordSource)
	words.On("LoadPairs", mock.Anything).Return([]domain.WordPair{cat, dog}, nil)

	trainer := newTestTrainer(words, new(testutil.MockStateRepository), 0)

	_, err := trainer.LoadWords(context.Background())
	require.NoError(t, err)

	pair, ok := trainer.Next()
	require.True(t, ok)
	assert.Contains(t, []domain.WordPair{cat, dog}, pair)

	assert.True(t, trainer.Answer(cat, "gato"))

	assert.Equal(t, []domain.WordPair{dog}, trainer.Boxes().BoxContents(0))
	assert.Equal(t, []domain.WordPair{cat}, trainer.Boxes().BoxContents(1))
}

func TestTrainerService_Answer(t *testing.T) {
	cat := testutil.NewTestPair("cat", "gato")

	tests := []struct {
		name        string
		startBox    int
		answer      string
		expected    bool
		expectedBox int
	}{
		{name: "correct promotes", startBox: 3, answer: "gato", expected: true, expectedBox: 4},
		{name: "correct with spaces", startBox: 0, answer: " gato ", expected: true, expectedBox: 1},
		{name: "wrong demotes", startBox: 6, answer: "perro", expected: false, expectedBox: 0},
		{name: "case matters", startBox: 2, answer: "Gato", expected: false, expectedBox: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := new(testutil.MockStateRepository)
			state.On("Load", mock.Anything).
				Return(testutil.NewTestBoxes(map[int][]domain.WordPair{tt.startBox: {cat}}), nil)

			trainer := newTestTrainer(new(testutil.MockWordSource), state)
			require.NoError(t, trainer.Resume(context.Background()))

			correct := trainer.Answer(cat, tt.answer)

			assert.Equal(t, tt.expected, correct)
			assert.Equal(t, []domain.WordPair{cat}, trainer.Boxes().BoxContents(tt.expectedBox))
			assert.Equal(t, 1, trainer.Boxes().Len())
		})
	}
}

func TestTrainerService_Next_Empty(t *testing.T) {
	trainer := newTestTrainer(new(testutil.MockWordSource), new(testutil.MockStateRepository))

	_, ok := trainer.Next()

	assert.False(t, ok)
}

func TestTrainerService_Resume(t *testing.T) {
	saved := testutil.NewTestBoxes(map[int][]domain.WordPair{
		4: {testutil.NewTestPair("cat", "gato")},
	})

	tests := []struct {
		name          string
		mockBoxes     *domain.BoxSet
		mockError     error
		expectedError error
	}{
		{
			name:      "state restored",
			mockBoxes: saved,
		},
		{
			name:          "corrupt state",
			mockError:     fmt.Errorf("decode: %w", repository.ErrCorruptState),
			expectedError: repository.ErrCorruptState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := new(testutil.MockStateRepository)
			if tt.mockBoxes != nil {
				state.On("Load", mock.Anything).Return(tt.mockBoxes, nil)
			} else {
				state.On("Load", mock.Anything).Return(nil, tt.mockError)
			}

			trainer := newTestTrainer(new(testutil.MockWordSource), state)
			err := trainer.Resume(context.Background())

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Equal(t, 0, trainer.Boxes().Len())
			} else {
				assert.NoError(t, err)
				assert.Same(t, tt.mockBoxes, trainer.Boxes())
			}

			state.AssertExpectations(t)
		})
	}
}

func TestTrainerService_HasSavedState(t *testing.T) {
	state := new(testutil.MockStateRepository)
	state.On("Exists", mock.Anything).Return(true, nil)

	trainer := newTestTrainer(new(testutil.MockWordSource), state)
	exists, err := trainer.HasSavedState(context.Background())

	assert.NoError(t, err)
	assert.True(t, exists)
	state.AssertExpectations(t)
}

func TestTrainerService_Save(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{name: "saved", mockError: nil, expectedError: false},
		{name: "storage error", mockError: fmt.Errorf("disk full"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := new(testutil.MockStateRepository)
			trainer := newTestTrainer(new(testutil.MockWordSource), state)
			state.On("Save", mock.Anything, trainer.Boxes()).Return(tt.mockError)

			err := trainer.Save(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			state.AssertExpectations(t)
		})
	}
}
