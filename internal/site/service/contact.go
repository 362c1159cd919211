package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/growthverse/site/internal/site/domain"
	"github.com/growthverse/site/internal/site/store"
	"github.com/growthverse/site/pkg/idx"
)

// Contact is the contact-message ledger. Every accepted submission appends a
// message and exactly one derived notification.
type Contact struct {
	Sessions *SessionManager
	Store    *store.Collections
	Logger   *slog.Logger
}

// Submit records a contact message. All three fields must be non-blank after
// trimming and the email must pass a basic syntactic check. The active
// session's user id is captured when present; guests submit with a nil user.
func (c *Contact) Submit(ctx context.Context, name, email, body string) (domain.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	body = strings.TrimSpace(body)
	if name == "" || email == "" || body == "" || !validEmail(email) {
		return domain.ContactMessage{}, ErrValidation
	}

	message := domain.ContactMessage{
		ID:        idx.New(),
		Name:      name,
		Email:     email,
		Body:      body,
		CreatedAt: time.Now().UTC(),
		Status:    domain.MessageStatusNew,
	}
	if session, ok := c.Sessions.Current(); ok {
		userID := session.UserID
		message.UserID = &userID
	}

	messages, err := c.Store.Messages(ctx)
	if err != nil {
		return domain.ContactMessage{}, err
	}
	if err := c.Store.SaveMessages(ctx, append(messages, message)); err != nil {
		return domain.ContactMessage{}, err
	}

	notifications, err := c.Store.Notifications(ctx)
	if err != nil {
		return domain.ContactMessage{}, err
	}
	notification := domain.NotificationFor(message)
	if err := c.Store.SaveNotifications(ctx, append(notifications, notification)); err != nil {
		return domain.ContactMessage{}, err
	}

	c.Logger.Info("contact message received", "message_id", message.ID, "from", message.Email)
	return message, nil
}

// Messages returns every contact message, oldest first.
func (c *Contact) Messages(ctx context.Context) ([]domain.ContactMessage, error) {
	return c.Store.Messages(ctx)
}

// MessagesForUser returns the contact messages submitted by the given user.
func (c *Contact) MessagesForUser(ctx context.Context, userID idx.ID) ([]domain.ContactMessage, error) {
	all, err := c.Store.Messages(ctx)
	if err != nil {
		return nil, err
	}
	messages := make([]domain.ContactMessage, 0, len(all))
	for _, m := range all {
		if m.UserID != nil && *m.UserID == userID {
			messages = append(messages, m)
		}
	}
	return messages, nil
}

// MarkRead flips a message's status to read. Marking an already-read or
// unknown message is a no-op, not a failure.
func (c *Contact) MarkRead(ctx context.Context, messageID idx.ID) error {
	messages, err := c.Store.Messages(ctx)
	if err != nil {
		return err
	}

	for i := range messages {
		if messages[i].ID != messageID {
			continue
		}
		if messages[i].Status == domain.MessageStatusRead {
			return nil
		}
		messages[i].Status = domain.MessageStatusRead
		return c.Store.SaveMessages(ctx, messages)
	}
	return nil
}

// Notifications returns every notification, oldest first.
func (c *Contact) Notifications(ctx context.Context) ([]domain.Notification, error) {
	return c.Store.Notifications(ctx)
}

// UnreadNotifications returns the notifications not yet marked read.
func (c *Contact) UnreadNotifications(ctx context.Context) ([]domain.Notification, error) {
	all, err := c.Store.Notifications(ctx)
	if err != nil {
		return nil, err
	}
	unread := make([]domain.Notification, 0, len(all))
	for _, n := range all {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

// MarkNotificationRead flips a notification's read flag. Idempotent, like
// MarkRead.
func (c *Contact) MarkNotificationRead(ctx context.Context, notificationID idx.ID) error {
	notifications, err := c.Store.Notifications(ctx)
	if err != nil {
		return err
	}

	for i := range notifications {
		if notifications[i].ID != notificationID {
			continue
		}
		if notifications[i].Read {
			return nil
		}
		notifications[i].Read = true
		return c.Store.SaveNotifications(ctx, notifications)
	}
	return nil
}

// validEmail applies the original's basic shape check: no whitespace, exactly
// one @ with text on both sides, and at least one dot after the @ with text
// around it.
func validEmail(email string) bool {
	if strings.ContainsAny(email, " \t\n\r") {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domainPart := email[at+1:]
	dot := strings.LastIndex(domainPart, ".")
	return dot > 0 && dot < len(domainPart)-1
}
