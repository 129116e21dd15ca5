package amqp

import (
	"encoding/json"
	"time"

	"hablapp/internal/core"
)

// CommandEventMessage announces a command the assistant applied, so
// downstream consumers (sync jobs, notification senders) can react without
// coupling to the dispatch path. Transaction is set for created
// transactions only.
type CommandEventMessage struct {
	Intent      string            `json:"intent"`
	Transaction *core.Transaction `json:"transaction,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}

func NewTransactionCreatedMessage(tx core.Transaction) *CommandEventMessage {
	return &CommandEventMessage{
		Intent:      "CrearTransaccion",
		Transaction: &tx,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *CommandEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// CommandEventMessageFromJSON creates a message from JSON bytes
func CommandEventMessageFromJSON(data []byte) (*CommandEventMessage, error) {
	var msg CommandEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
