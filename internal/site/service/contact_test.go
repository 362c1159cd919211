package service_test

import (
	"context"
	"testing"

	"github.com/growthverse/site/internal/site/domain"
	"github.com/growthverse/site/internal/site/service"
	"github.com/growthverse/site/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestContactSubmitValidation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	for _, tc := range []struct{ name, email, body string }{
		{"", "g@x.com", "hello"},
		{"Grace", "", "hello"},
		{"Grace", "g@x.com", "   "},
		{"Grace", "not-an-email", "hello"},
		{"Grace", "two@@x.com", "hello"},
		{"Grace", "@x.com", "hello"},
		{"Grace", "g@x", "hello"},
		{"Grace", "g@.com", "hello"},
		{"Grace", "g @x.com", "hello"},
		{"Grace", "g@x.com.", "hello"},
	} {
		_, err := env.contact.Submit(ctx, tc.name, tc.email, tc.body)
		require.ErrorIs(t, err, service.ErrValidation, "name=%q email=%q body=%q", tc.name, tc.email, tc.body)
	}

	messages, err := env.store.Messages(ctx)
	require.NoError(t, err)
	require.Empty(t, messages)
}

func TestContactSubmitPairsMessageWithNotification(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	message, err := env.contact.Submit(ctx, "Grace", "grace@x.com", "hello there")
	require.NoError(t, err)
	require.Equal(t, domain.MessageStatusNew, message.Status)
	require.Nil(t, message.UserID)

	messages, err := env.contact.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	notifications, err := env.contact.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, message.ID, notifications[0].ID)
	require.Equal(t, message.ID, notifications[0].Message.ID)
	require.Equal(t, domain.NotificationTypeContactForm, notifications[0].Type)

	// A second submission grows both collections by exactly one.
	_, err = env.contact.Submit(ctx, "Grace", "grace@x.com", "me again")
	require.NoError(t, err)

	messages, err = env.contact.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	notifications, err = env.contact.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
}

func TestContactSubmitCapturesSessionUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	login(t, env, "Ada", "ada@x.com", "pw1")
	session, ok := env.sessions.Current()
	require.True(t, ok)

	message, err := env.contact.Submit(ctx, "Ada", "ada@x.com", "question about pricing")
	require.NoError(t, err)
	require.NotNil(t, message.UserID)
	require.Equal(t, session.UserID, *message.UserID)
}

func TestMessagesForUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	// Guest submission first.
	_, err := env.contact.Submit(ctx, "Guest", "guest@x.com", "anonymous note")
	require.NoError(t, err)

	login(t, env, "Ada", "ada@x.com", "pw1")
	session, _ := env.sessions.Current()

	_, err = env.contact.Submit(ctx, "Ada", "ada@x.com", "mine")
	require.NoError(t, err)

	mine, err := env.contact.MessagesForUser(ctx, session.UserID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "mine", mine[0].Body)

	other, err := env.contact.MessagesForUser(ctx, idx.New())
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestMarkRead(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	message, err := env.contact.Submit(ctx, "Grace", "grace@x.com", "hello")
	require.NoError(t, err)

	require.NoError(t, env.contact.MarkRead(ctx, message.ID))

	messages, err := env.contact.Messages(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.MessageStatusRead, messages[0].Status)

	// Idempotent on already-read and unknown ids.
	require.NoError(t, env.contact.MarkRead(ctx, message.ID))
	require.NoError(t, env.contact.MarkRead(ctx, idx.New()))
}

func TestNotificationRead(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.contact.Submit(ctx, "Grace", "grace@x.com", "one")
	require.NoError(t, err)
	_, err = env.contact.Submit(ctx, "Grace", "grace@x.com", "two")
	require.NoError(t, err)

	unread, err := env.contact.UnreadNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, unread, 2)

	require.NoError(t, env.contact.MarkNotificationRead(ctx, first.ID))

	unread, err = env.contact.UnreadNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, unread, 1)

	// Idempotent.
	require.NoError(t, env.contact.MarkNotificationRead(ctx, first.ID))
	require.NoError(t, env.contact.MarkNotificationRead(ctx, idx.New()))
}
