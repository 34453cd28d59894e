package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventType_String(t *testing.T) {
	tests := []struct {
		name     string
		et       EventType
		expected string
	}{
		{"created", EventTypeCreated, "created"},
		{"updated", EventTypeUpdated, "updated"},
		{"deleted", EventTypeDeleted, "deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.et))
		})
	}
}

func TestEntityType_String(t *testing.T) {
	tests := []struct {
		name     string
		et       EntityType
		expected string
	}{
		{"transaction", EntityTypeTransaction, "transaction"},
		{"budget", EntityTypeBudget, "budget"},
		{"settings", EntityTypeSettings, "settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.et))
		})
	}
}

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{
		"id":          "tx-1",
		"description": "Groceries",
		"amount":      "100.00",
	}

	before := time.Now()
	evt := NewEvent(EventTypeCreated, EntityTypeTransaction, payload)
	after := time.Now()

	assert.Equal(t, "transaction.created", evt.Type)
	assert.Equal(t, EntityTypeTransaction, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
	assert.True(t, !evt.Timestamp.Before(before) && !evt.Timestamp.After(after))
}

func TestEvent_JSON_Serialization(t *testing.T) {
	fixedTime := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	payload := map[string]interface{}{
		"id":          "tx-1",
		"description": "Groceries",
		"amount":      "100.00",
	}

	evt := Event{
		Type:      "transaction.created",
		Entity:    EntityTypeTransaction,
		Payload:   payload,
		Timestamp: fixedTime,
	}

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded Event
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, evt.Type, decoded.Type)
	assert.Equal(t, evt.Entity, decoded.Entity)
	assert.Equal(t, fixedTime.UTC(), decoded.Timestamp.UTC())

	// Payload should be preserved
	decodedPayload, ok := decoded.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "tx-1", decodedPayload["id"])
	assert.Equal(t, "Groceries", decodedPayload["description"])
	assert.Equal(t, "100.00", decodedPayload["amount"])
}

func TestEvent_ToJSON(t *testing.T) {
	payload := map[string]interface{}{
		"id": "b-42",
	}

	evt := NewEvent(EventTypeUpdated, EntityTypeBudget, payload)

	data, err := evt.ToJSON()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// Verify it's valid JSON
	var decoded map[string]interface{}
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, "budget.updated", decoded["type"])
	assert.Equal(t, "budget", decoded["entity"])
	assert.NotNil(t, decoded["payload"])
	assert.NotNil(t, decoded["timestamp"])
}

func TestTransactionEvent_Helpers(t *testing.T) {
	txPayload := map[string]interface{}{
		"id":          "tx-1",
		"description": "Grocery shopping",
		"amount":      "50.00",
	}

	t.Run("TransactionCreated", func(t *testing.T) {
		evt := TransactionCreated(txPayload)
		assert.Equal(t, "transaction.created", evt.Type)
		assert.Equal(t, EntityTypeTransaction, evt.Entity)
		assert.Equal(t, txPayload, evt.Payload)
	})

	t.Run("TransactionDeleted", func(t *testing.T) {
		evt := TransactionDeleted(txPayload)
		assert.Equal(t, "transaction.deleted", evt.Type)
		assert.Equal(t, EntityTypeTransaction, evt.Entity)
		assert.Equal(t, txPayload, evt.Payload)
	})
}

func TestBudgetEvent_Helpers(t *testing.T) {
	payload := map[string]interface{}{
		"id":         "b-1",
		"categoryId": "groceries",
		"amount":     "100.00",
	}

	t.Run("BudgetCreated", func(t *testing.T) {
		evt := BudgetCreated(payload)
		assert.Equal(t, "budget.created", evt.Type)
		assert.Equal(t, EntityTypeBudget, evt.Entity)
		assert.Equal(t, payload, evt.Payload)
	})

	t.Run("BudgetUpdated", func(t *testing.T) {
		evt := BudgetUpdated(payload)
		assert.Equal(t, "budget.updated", evt.Type)
		assert.Equal(t, EntityTypeBudget, evt.Entity)
		assert.Equal(t, payload, evt.Payload)
	})

	t.Run("BudgetDeleted", func(t *testing.T) {
		evt := BudgetDeleted(payload)
		assert.Equal(t, "budget.deleted", evt.Type)
		assert.Equal(t, EntityTypeBudget, evt.Entity)
		assert.Equal(t, payload, evt.Payload)
	})
}

func TestSettingsEvent_Helper(t *testing.T) {
	payload := map[string]interface{}{
		"theme":    "dark",
		"currency": "EUR",
	}

	evt := SettingsUpdated(payload)
	assert.Equal(t, "settings.updated", evt.Type)
	assert.Equal(t, EntityTypeSettings, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
}
