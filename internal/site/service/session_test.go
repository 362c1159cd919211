package service_test

import (
	"context"
	"testing"

	"github.com/growthverse/site/internal/site/domain"
	"github.com/growthverse/site/internal/site/service"
	"github.com/stretchr/testify/require"
)

func TestLoginLogout(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.directory.Register(ctx, "Ada", "ada@x.com", "pw1")
	require.NoError(t, err)

	session, err := env.sessions.Login(ctx, "ada@x.com", "pw1")
	require.NoError(t, err)
	require.Equal(t, "Ada", session.Name)
	require.True(t, env.sessions.IsAuthenticated())

	current, ok := env.sessions.Current()
	require.True(t, ok)
	require.Equal(t, session, current)

	require.NoError(t, env.sessions.Logout(ctx))
	require.False(t, env.sessions.IsAuthenticated())
	_, ok = env.sessions.Current()
	require.False(t, ok)
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.directory.Register(ctx, "Ada", "ada@x.com", "pw1")
	require.NoError(t, err)

	_, err = env.sessions.Login(ctx, "ada@x.com", "wrong")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	require.False(t, env.sessions.IsAuthenticated())

	_, err = env.sessions.Login(ctx, "nobody@x.com", "pw1")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	require.False(t, env.sessions.IsAuthenticated())
}

func TestSessionSurvivesRestart(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.directory.Register(ctx, "Ada", "ada@x.com", "pw1")
	require.NoError(t, err)
	_, err = env.sessions.Login(ctx, "ada@x.com", "pw1")
	require.NoError(t, err)

	fresh := env.restart(t)
	require.False(t, fresh.IsAuthenticated())
	fresh.Restore(ctx)
	require.True(t, fresh.IsAuthenticated())

	session, ok := fresh.Current()
	require.True(t, ok)
	require.Equal(t, "Ada", session.Name)
	require.Equal(t, "ada@x.com", session.Email)
}

func TestLogoutSurvivesRestart(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.directory.Register(ctx, "Ada", "ada@x.com", "pw1")
	require.NoError(t, err)
	_, err = env.sessions.Login(ctx, "ada@x.com", "pw1")
	require.NoError(t, err)
	require.NoError(t, env.sessions.Logout(ctx))

	fresh := env.restart(t)
	fresh.Restore(ctx)
	require.False(t, fresh.IsAuthenticated())
}

func TestRestoreRejectsTamperedSlot(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	for _, slot := range []string{
		"garbage",
		`{"id":"01ARZ3NDEKTSV4RRFFQ69G5FAV","name":"Mallory","email":"m@x.com"}`,
		"eyJhbGciOiJub25lIn0.eyJzdWIiOiJ4In0.",
	} {
		require.NoError(t, env.store.SaveSessionToken(ctx, slot))

		fresh := env.restart(t)
		fresh.Restore(ctx)
		require.False(t, fresh.IsAuthenticated())
	}
}

func TestObserversNotifiedSynchronously(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.directory.Register(ctx, "Ada", "ada@x.com", "pw1")
	require.NoError(t, err)

	type transition struct {
		session domain.Session
		active  bool
	}
	var nav, form []transition
	env.sessions.Subscribe(func(s domain.Session, active bool) {
		nav = append(nav, transition{s, active})
	})
	env.sessions.Subscribe(func(s domain.Session, active bool) {
		form = append(form, transition{s, active})
	})

	_, err = env.sessions.Login(ctx, "ada@x.com", "pw1")
	require.NoError(t, err)

	// Both observers saw the transition before Login returned.
	require.Len(t, nav, 1)
	require.Len(t, form, 1)
	require.True(t, nav[0].active)
	require.Equal(t, "Ada", nav[0].session.Name)

	require.NoError(t, env.sessions.Logout(ctx))
	require.Len(t, nav, 2)
	require.False(t, nav[1].active)
	require.Equal(t, domain.Session{}, nav[1].session)
}

func TestLoginThrottle(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.directory.Register(ctx, "Ada", "ada@x.com", "pw1")
	require.NoError(t, err)

	// The burst allows five attempts; each one fails credential checks.
	for range 5 {
		_, err := env.sessions.Login(ctx, "ada@x.com", "wrong")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	}

	_, err = env.sessions.Login(ctx, "ada@x.com", "pw1")
	require.ErrorIs(t, err, service.ErrTooManyAttempts)
}
