package outbox

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	TopicOrderCreated       = "commande.created"
	TopicOrderStatusChanged = "commande.status_changed"
)

type Envelope struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// NewEnvelope wraps payload for topic and encodes the result for the outbox table.
func NewEnvelope(topic string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", topic, err)
	}
	return json.Marshal(Envelope{
		EventID:    uuid.NewString(),
		EventType:  topic,
		OccurredAt: time.Now().UTC(),
		Payload:    raw,
	})
}

type OrderCreatedPayload struct {
	OrderID        string `json:"order_id"`
	Numero         string `json:"numero"`
	ClientID       string `json:"client_id"`
	PrixTotal      int64  `json:"prix_total"`
	FraisLivraison int64  `json:"frais_livraison"`
	Lines          int    `json:"lines"`
}

type OrderStatusChangedPayload struct {
	OrderID string `json:"order_id"`
	Numero  string `json:"numero"`
	Status  string `json:"status"`
}
