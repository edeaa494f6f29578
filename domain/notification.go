package domain

import "github.com/google/uuid"

type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is an ephemeral message for the presentation layer. The core only
// says how long it should stay visible; it never owns the timer.
type Notice struct {
	ID        string     `json:"id"`
	Kind      NoticeKind `json:"kind"`
	Message   string     `json:"message"`
	DisplayMs int        `json:"displayMs"`
}

func NewNotice(kind NoticeKind, message string, displayMs int) Notice {
	return Notice{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		DisplayMs: displayMs,
	}
}
