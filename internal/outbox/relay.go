package outbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/boutique/internal/config"
	"github.com/GlebRadaev/boutique/internal/domain"
	"github.com/GlebRadaev/boutique/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=relay.go -destination=mock_relay.go -package=outbox

const (
	maxRetries    = 3
	retryInterval = time.Millisecond * 200
)

type Repo interface {
	FetchPending(ctx context.Context, limit uint32) ([]domain.OutboxEvent, error)
	MarkSent(ctx context.Context, id int64) error
}

type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload []byte) error
	Close() error
}

// Relay forwards committed outbox rows to the broker. Delivery is at least
// once: a row is marked sent only after the broker acknowledged it. Rows that
// share a key are published one after another in id order.
type Relay struct {
	repo           Repo
	publisher      Publisher
	limit          uint32
	workerPool     Pool
	updateInterval time.Duration
	inflight       sync.Map // event key -> struct{}
}

func NewRelay(cfg *config.Config, repo Repo, publisher Publisher) *Relay {
	return &Relay{
		repo:           repo,
		publisher:      publisher,
		limit:          cfg.OutboxBatch,
		workerPool:     NewWorkerPool(10),
		updateInterval: cfg.OutboxInterval,
	}
}

func (r *Relay) Start(ctx context.Context) {
	zap.L().Info("outbox relay started", zap.Duration("interval", r.updateInterval))
	go r.run(ctx)
}

func (r *Relay) run(ctx context.Context) {
	ticker := time.NewTicker(r.updateInterval)
	defer ticker.Stop()
	defer r.shutdown()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping outbox relay")
			return
		case <-ticker.C:
			r.processBatch(ctx)
		}
	}
}

func (r *Relay) shutdown() {
	r.workerPool.Shutdown()
	if err := r.publisher.Close(); err != nil {
		zap.L().Error("failed to close publisher", zap.Error(err))
	}
}

func (r *Relay) processBatch(ctx context.Context) {
	events, err := r.repo.FetchPending(ctx, r.limit)
	if err != nil {
		zap.L().Error("failed to fetch pending outbox events", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, chain := range groupByKey(events) {
		chain := chain
		key := chain[0].Key

		if _, loaded := r.inflight.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := r.workerPool.Submit(ctx, func() error {
				defer r.inflight.Delete(key)
				return r.publishChain(ctx, chain)
			})
			if err != nil {
				r.inflight.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error relaying outbox events", zap.Error(err))
	}
}

// groupByKey splits events into per-key chains, keeping the fetch order inside
// each chain.
func groupByKey(events []domain.OutboxEvent) [][]domain.OutboxEvent {
	index := make(map[string]int, len(events))
	var chains [][]domain.OutboxEvent
	for _, event := range events {
		i, ok := index[event.Key]
		if !ok {
			i = len(chains)
			index[event.Key] = i
			chains = append(chains, nil)
		}
		chains[i] = append(chains[i], event)
	}
	return chains
}

// publishChain stops at the first event that cannot be relayed; the rest of the
// chain stays pending until the next tick.
func (r *Relay) publishChain(ctx context.Context, chain []domain.OutboxEvent) error {
	for _, event := range chain {
		if err := r.handleEvent(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (r *Relay) handleEvent(ctx context.Context, event domain.OutboxEvent) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = r.publisher.Publish(ctx, event.Topic, event.Key, event.Payload); err == nil {
			break
		}
		zap.L().Warn("publish failed, retrying",
			zap.Int64("event_id", event.ID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval * time.Duration(attempt)):
		}
	}
	if err != nil {
		metrics.OutboxPublished.WithLabelValues(event.Topic, "error").Inc()
		return fmt.Errorf("publish event %d after %d attempts: %w", event.ID, maxRetries, err)
	}

	metrics.OutboxPublished.WithLabelValues(event.Topic, "ok").Inc()
	if err := r.repo.MarkSent(ctx, event.ID); err != nil {
		return fmt.Errorf("mark event %d sent: %w", event.ID, err)
	}
	return nil
}
