package events

import (
	"encoding/json"
	"time"
)

// SpendingRecordedMessage announces a persisted spending record. It carries
// only the ID; consumers fetch the full record from storage so the ledger
// always reflects what was actually committed.
type SpendingRecordedMessage struct {
	SpendingID int64     `json:"spending_id"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewSpendingRecordedMessage(id int64) *SpendingRecordedMessage {
	return &SpendingRecordedMessage{
		SpendingID: id,
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *SpendingRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// SpendingRecordedMessageFromJSON creates a message from JSON bytes.
func SpendingRecordedMessageFromJSON(data []byte) (*SpendingRecordedMessage, error) {
	var msg SpendingRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
