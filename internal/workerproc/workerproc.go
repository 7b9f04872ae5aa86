package workerproc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"ats-backend/internal/candidates"
	"ats-backend/internal/queue"
	"ats-backend/internal/scoring"
)

// MessageMeta captures details useful for logging and diagnostics.
type MessageMeta struct {
	BodyLen int
	BodySHA string
}

// ComputeMeta returns the body length and SHA-256 hash.
func ComputeMeta(body string) MessageMeta {
	if body == "" {
		return MessageMeta{BodyLen: 0, BodySHA: ""}
	}
	sum := sha256.Sum256([]byte(body))
	return MessageMeta{BodyLen: len(body), BodySHA: hex.EncodeToString(sum[:])}
}

// ErrEmptyBody indicates an empty queue payload.
type ErrEmptyBody struct {
	Meta MessageMeta
}

func (e ErrEmptyBody) Error() string { return "empty message body" }

// ErrDecode indicates a JSON decode failure.
type ErrDecode struct {
	Meta MessageMeta
	Err  error
}

func (e ErrDecode) Error() string {
	if e.Err == nil {
		return "decode message"
	}
	return "decode message: " + e.Err.Error()
}

// ErrMissingIDs indicates a message without tenant or candidate identity.
type ErrMissingIDs struct {
	Meta      MessageMeta
	RequestID string
}

func (e ErrMissingIDs) Error() string { return "missing tenant or candidate id" }

// ErrUnknownType indicates a message type this worker does not handle.
type ErrUnknownType struct {
	Type      string
	RequestID string
}

func (e ErrUnknownType) Error() string { return "unknown message type: " + e.Type }

// ErrCandidateGone indicates the candidate was deleted or deactivated before
// the recompute ran. The message is unrecoverable but harmless.
type ErrCandidateGone struct {
	TenantID    string
	CandidateID string
}

func (e ErrCandidateGone) Error() string { return "candidate gone" }

// ErrProcess indicates recomputation failed after successful parsing.
type ErrProcess struct {
	TenantID    string
	CandidateID string
	RequestID   string
	Err         error
}

func (e ErrProcess) Error() string {
	if e.Err == nil {
		return "process recompute"
	}
	return "process recompute: " + e.Err.Error()
}

// ParseMessage validates and decodes the queue payload.
func ParseMessage(body string) (queue.Message, MessageMeta, error) {
	meta := ComputeMeta(body)
	if strings.TrimSpace(body) == "" {
		return queue.Message{}, meta, ErrEmptyBody{Meta: meta}
	}

	msg, err := queue.DecodeMessage([]byte(body))
	if err != nil {
		return queue.Message{}, meta, ErrDecode{Meta: meta, Err: err}
	}
	if msg.Type != "" && msg.Type != queue.TypeProfileChanged {
		return msg, meta, ErrUnknownType{Type: msg.Type, RequestID: msg.RequestID}
	}
	if strings.TrimSpace(msg.TenantID) == "" || strings.TrimSpace(msg.CandidateID) == "" {
		return msg, meta, ErrMissingIDs{Meta: meta, RequestID: msg.RequestID}
	}
	return msg, meta, nil
}

// HandleMessage parses a payload and recomputes the candidate's score.
func HandleMessage(ctx context.Context, svc *scoring.Service, body string) error {
	if svc == nil {
		return errors.New("scoring service not configured")
	}

	msg, _, err := ParseMessage(body)
	if err != nil {
		return err
	}

	if _, err := svc.RecomputeCandidate(ctx, msg.TenantID, msg.CandidateID); err != nil {
		if errors.Is(err, candidates.ErrNotFound) {
			return ErrCandidateGone{TenantID: msg.TenantID, CandidateID: msg.CandidateID}
		}
		return ErrProcess{
			TenantID:    msg.TenantID,
			CandidateID: msg.CandidateID,
			RequestID:   msg.RequestID,
			Err:         err,
		}
	}
	return nil
}
