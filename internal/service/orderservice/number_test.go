package orderservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNumberGeneratorNext(t *testing.T) {
	now := time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)
	yearStart := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func(repo *MockOrderRepo)
		expected  string
	}{
		{
			name: "First order of the year",
			mockSetup: func(repo *MockOrderRepo) {
				repo.EXPECT().CountSince(gomock.Any(), yearStart).Return(0, nil)
			},
			expected: "CMD-26-00001",
		},
		{
			name: "Rank follows the yearly count",
			mockSetup: func(repo *MockOrderRepo) {
				repo.EXPECT().CountSince(gomock.Any(), yearStart).Return(1233, nil)
			},
			expected: "CMD-26-01234",
		},
		{
			name: "Counter failure falls back to timestamp",
			mockSetup: func(repo *MockOrderRepo) {
				repo.EXPECT().CountSince(gomock.Any(), yearStart).Return(0, errors.New("db down"))
			},
			expected: fmt.Sprintf("CMD-26-%d", now.UnixMilli()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockOrderRepo(gomock.NewController(t))
			tt.mockSetup(repo)

			gen := NewNumberGenerator(repo, func() time.Time { return now })
			assert.Equal(t, tt.expected, gen.Next(context.Background()))
		})
	}
}

func TestNumberGeneratorMonotonic(t *testing.T) {
	repo := NewMockOrderRepo(gomock.NewController(t))
	count := 0
	repo.EXPECT().CountSince(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, time.Time) (int, error) {
		return count, nil
	}).AnyTimes()

	gen := NewNumberGenerator(repo, func() time.Time { return fixedNow })
	prev := gen.Next(context.Background())
	for i := 0; i < 50; i++ {
		count++
		next := gen.Next(context.Background())
		assert.Greater(t, next, prev)
		prev = next
	}
}
