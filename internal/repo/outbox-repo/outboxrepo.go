package outboxrepo

import (
	"context"

	"github.com/GlebRadaev/boutique/internal/domain"
	"github.com/GlebRadaev/boutique/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Enqueue stores an event; called inside the transaction that produced it.
func (r *Repository) Enqueue(ctx context.Context, topic, key string, payload []byte) error {
	query := `
		INSERT INTO outbox (topic, event_key, payload)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.Exec(ctx, query, topic, key, payload); err != nil {
		zap.L().Error("can't enqueue outbox event", zap.String("topic", topic), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FetchPending(ctx context.Context, limit uint32) ([]domain.OutboxEvent, error) {
	query := `
		SELECT id, topic, event_key, payload, created_at
		FROM outbox
		WHERE sent_at IS NULL
		ORDER BY id ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't fetch pending outbox events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.OutboxEvent
	for rows.Next() {
		var e domain.OutboxEvent
		if err := rows.Scan(&e.ID, &e.Topic, &e.Key, &e.Payload, &e.CreatedAt); err != nil {
			zap.L().Error("can't scan outbox row", zap.Error(err))
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *Repository) MarkSent(ctx context.Context, id int64) error {
	query := `
		UPDATE outbox
		SET sent_at = now()
		WHERE id = $1
	`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't mark outbox event sent", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
