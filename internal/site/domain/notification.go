package domain

import (
	"fmt"
	"time"

	"github.com/growthverse/site/pkg/idx"
)

// NotificationTypeContactForm tags notifications derived from contact
// submissions, currently the only notification source.
const NotificationTypeContactForm = "contact_form"

// Notification is the admin-facing record derived 1:1 from a ContactMessage.
// Its ID mirrors the originating message so the pair can be correlated.
type Notification struct {
	ID        idx.ID         `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Summary   string         `json:"message"`
	CreatedAt time.Time      `json:"timestamp"`
	Read      bool           `json:"read"`
	Message   ContactMessage `json:"data"`
}

// NotificationFor derives the notification for a contact message.
func NotificationFor(m ContactMessage) Notification {
	return Notification{
		ID:        m.ID,
		Type:      NotificationTypeContactForm,
		Title:     "New Contact Form Submission",
		Summary:   fmt.Sprintf("New message from %s (%s)", m.Name, m.Email),
		CreatedAt: m.CreatedAt,
		Read:      false,
		Message:   m,
	}
}

func (n Notification) WellFormed() bool {
	return !n.ID.IsZero() && n.Type != "" && n.Message.WellFormed()
}
