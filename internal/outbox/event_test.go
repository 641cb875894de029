package outbox

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	data, err := NewEnvelope(TopicOrderStatusChanged, OrderStatusChangedPayload{OrderID: "o1", Numero: "CMD-26-00001", Status: "livree"})
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	_, err = uuid.Parse(env.EventID)
	assert.NoError(t, err)
	assert.Equal(t, TopicOrderStatusChanged, env.EventType)
	assert.False(t, env.OccurredAt.IsZero())
	assert.JSONEq(t, `{"order_id":"o1","numero":"CMD-26-00001","status":"livree"}`, string(env.Payload))
}

func TestNewEnvelopeRejectsUnencodable(t *testing.T) {
	_, err := NewEnvelope(TopicOrderCreated, make(chan int))
	assert.Error(t, err)
}
