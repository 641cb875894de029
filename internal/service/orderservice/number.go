package orderservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type orderCounter interface {
	CountSince(ctx context.Context, since time.Time) (int, error)
}

// NumberGenerator builds human readable order numbers of the form CMD-YY-NNNNN,
// where NNNNN is the rank of the order within the current calendar year.
type NumberGenerator struct {
	counter orderCounter
	now     func() time.Time
}

func NewNumberGenerator(counter orderCounter, now func() time.Time) *NumberGenerator {
	return &NumberGenerator{counter: counter, now: now}
}

// Next never fails. When the yearly count is unavailable it falls back to a
// millisecond timestamp suffix.
func (g *NumberGenerator) Next(ctx context.Context) string {
	now := g.now()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	prefix := fmt.Sprintf("CMD-%02d", now.Year()%100)

	count, err := g.counter.CountSince(ctx, yearStart)
	if err != nil {
		zap.L().Warn("order counter unavailable, using timestamp suffix", zap.Error(err))
		return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
	}
	return fmt.Sprintf("%s-%05d", prefix, count+1)
}
