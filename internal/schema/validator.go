// Package schema validates result events before publication.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Validator checks the envelope fields downstream consumers key on.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// Validate inspects a marshaled result event. Every event must carry
// eventType, requestId and a timestamp; the flow-specific fields are
// left to the producing service.
func (v *Validator) Validate(payload []byte) error {
	var envelope struct {
		EventType string `json:"eventType"`
		RequestID string `json:"requestId"`
		Timestamp int64  `json:"timestamp"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return fmt.Errorf("invalid event payload: %w", err)
	}
	if envelope.EventType == "" {
		return errors.New("event missing eventType")
	}
	if envelope.RequestID == "" {
		return errors.New("event missing requestId")
	}
	if envelope.Timestamp == 0 {
		return errors.New("event missing timestamp")
	}
	return nil
}
