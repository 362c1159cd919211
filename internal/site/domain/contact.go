package domain

import (
	"time"

	"github.com/growthverse/site/pkg/idx"
)

// MessageStatus tracks whether a contact message has been seen. Status is the
// only mutable field on a ContactMessage.
type MessageStatus string

const (
	MessageStatusNew  MessageStatus = "new"
	MessageStatusRead MessageStatus = "read"
)

// ContactMessage is a contact form submission. UserID is nil when the sender
// had no session.
type ContactMessage struct {
	ID        idx.ID        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Body      string        `json:"message"`
	CreatedAt time.Time     `json:"timestamp"`
	UserID    *idx.ID       `json:"userId"`
	Status    MessageStatus `json:"status"`
}

func (m ContactMessage) WellFormed() bool {
	if m.ID.IsZero() || m.Name == "" || m.Email == "" || m.Body == "" {
		return false
	}
	return m.Status == MessageStatusNew || m.Status == MessageStatusRead
}
