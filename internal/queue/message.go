package queue

import "encoding/json"

// TypeProfileChanged marks a candidate profile change that invalidates the
// cached score.
const TypeProfileChanged = "candidate.profile_changed"

// Message is the payload sent to the recompute worker.
type Message struct {
	Type        string `json:"type"`
	TenantID    string `json:"tenantId"`
	CandidateID string `json:"candidateId"`
	RequestID   string `json:"requestId"`
	EnqueuedAt  string `json:"enqueuedAt"`
	Version     int    `json:"version"`
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeMessage parses a JSON payload into a Message.
func DecodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}
