package store

import (
	"context"
	"fmt"

	"github.com/growthverse/site/internal/site/domain"
)

// Collection names under the namespace prefix. The session slot holds a single
// opaque token rather than a record sequence.
const (
	collectionUsers         = "users"
	collectionComments      = "comments"
	collectionMessages      = "messages"
	collectionNotifications = "notifications"
	sessionSlot             = "session"
)

// Collections binds a KV backend to a storage namespace and exposes the typed
// record collections. Every key is "<prefix>_<collection>", so two namespaces
// sharing one backend never see each other's records.
type Collections struct {
	kv     KV
	prefix string
}

func NewCollections(kv KV, prefix string) *Collections {
	return &Collections{kv: kv, prefix: prefix}
}

func (c *Collections) key(name string) string {
	return c.prefix + "_" + name
}

func (c *Collections) Users(ctx context.Context) ([]domain.User, error) {
	return readCollection[domain.User](ctx, c.kv, c.key(collectionUsers))
}

func (c *Collections) SaveUsers(ctx context.Context, users []domain.User) error {
	return writeCollection(ctx, c.kv, c.key(collectionUsers), users)
}

func (c *Collections) Comments(ctx context.Context) ([]domain.Comment, error) {
	return readCollection[domain.Comment](ctx, c.kv, c.key(collectionComments))
}

func (c *Collections) SaveComments(ctx context.Context, comments []domain.Comment) error {
	return writeCollection(ctx, c.kv, c.key(collectionComments), comments)
}

func (c *Collections) Messages(ctx context.Context) ([]domain.ContactMessage, error) {
	return readCollection[domain.ContactMessage](ctx, c.kv, c.key(collectionMessages))
}

func (c *Collections) SaveMessages(ctx context.Context, messages []domain.ContactMessage) error {
	return writeCollection(ctx, c.kv, c.key(collectionMessages), messages)
}

func (c *Collections) Notifications(ctx context.Context) ([]domain.Notification, error) {
	return readCollection[domain.Notification](ctx, c.kv, c.key(collectionNotifications))
}

func (c *Collections) SaveNotifications(ctx context.Context, notifications []domain.Notification) error {
	return writeCollection(ctx, c.kv, c.key(collectionNotifications), notifications)
}

// SessionToken returns the persisted session token, if any.
func (c *Collections) SessionToken(ctx context.Context) (string, bool, error) {
	token, ok, err := c.kv.Get(ctx, c.key(sessionSlot))
	if err != nil {
		return "", false, fmt.Errorf("read session slot: %w", err)
	}
	return token, ok, nil
}

// SaveSessionToken replaces the single session slot.
func (c *Collections) SaveSessionToken(ctx context.Context, token string) error {
	if err := c.kv.Set(ctx, c.key(sessionSlot), token); err != nil {
		return fmt.Errorf("write session slot: %w", err)
	}
	return nil
}

// ClearSessionToken empties the session slot. Clearing an empty slot is fine.
func (c *Collections) ClearSessionToken(ctx context.Context) error {
	if err := c.kv.Delete(ctx, c.key(sessionSlot)); err != nil {
		return fmt.Errorf("clear session slot: %w", err)
	}
	return nil
}
