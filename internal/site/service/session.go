package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/growthverse/site/internal/site/domain"
	"github.com/growthverse/site/internal/site/store"
	"github.com/growthverse/site/pkg/idx"
	"github.com/growthverse/site/pkg/jwtx"
	"golang.org/x/time/rate"
)

// SessionObserver is invoked synchronously on every session state transition,
// before the triggering operation returns. active is false when the new state
// is anonymous.
type SessionObserver func(session domain.Session, active bool)

// SessionManager owns the single session slot. It is either anonymous or
// authenticated with exactly one session.
type SessionManager struct {
	directory *Directory
	store     *store.Collections
	signer    *jwtx.Signer
	logger    *slog.Logger
	limiter   *rate.Limiter

	mu        sync.Mutex
	current   *domain.Session
	observers []SessionObserver
}

func NewSessionManager(directory *Directory, st *store.Collections, signer *jwtx.Signer, logger *slog.Logger) *SessionManager {
	return &SessionManager{
		directory: directory,
		store:     st,
		signer:    signer,
		logger:    logger,
		// Brute-force guard on the login path: 5 attempts per minute, all
		// available as a burst.
		limiter: rate.NewLimiter(rate.Limit(5.0/60.0), 5),
	}
}

// Subscribe registers an observer for session transitions. The navigation bar
// and the comment form visibility each register independently.
func (m *SessionManager) Subscribe(fn SessionObserver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

// Restore loads the persisted session on startup. Anything short of a
// well-formed, correctly signed token leaves the manager anonymous.
func (m *SessionManager) Restore(ctx context.Context) {
	token, ok, err := m.store.SessionToken(ctx)
	if err != nil {
		m.logger.Warn("session restore skipped, storage unavailable", "error", err)
		return
	}
	if !ok {
		return
	}

	claims, err := m.signer.Parse(token)
	if err != nil {
		m.logger.Warn("discarding invalid persisted session", "error", err)
		return
	}

	userID, err := idx.Parse(claims.Subject)
	if err != nil {
		m.logger.Warn("discarding persisted session with invalid subject")
		return
	}

	session := domain.Session{
		UserID:    userID,
		Name:      claims.Name,
		Email:     claims.Email,
		CreatedAt: claims.IssuedAt.Time,
	}
	if !session.WellFormed() {
		m.logger.Warn("discarding malformed persisted session")
		return
	}

	m.setCurrent(&session)
	m.logger.Info("session restored", "user_id", session.UserID)
}

// Login verifies credentials through the directory, persists the session and
// transitions to authenticated. On any failure the current state is kept.
func (m *SessionManager) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if !m.limiter.Allow() {
		return domain.Session{}, ErrTooManyAttempts
	}

	user, err := m.directory.VerifyCredentials(ctx, email, password)
	if err != nil {
		return domain.Session{}, err
	}

	session := user.Session()

	token, err := m.signer.Sign(user.ID.String(), user.Name, user.Email, user.CreatedAt)
	if err != nil {
		return domain.Session{}, err
	}
	if err := m.store.SaveSessionToken(ctx, token); err != nil {
		// The login still takes effect for this run; it just won't survive a
		// restart.
		m.logger.Warn("session not persisted, storage unavailable", "error", err)
	}

	m.setCurrent(&session)
	m.logger.Info("user logged in", "user_id", session.UserID)
	return session, nil
}

// Logout clears the persisted session and transitions to anonymous.
func (m *SessionManager) Logout(ctx context.Context) error {
	if err := m.store.ClearSessionToken(ctx); err != nil {
		m.logger.Warn("session slot not cleared, storage unavailable", "error", err)
	}

	m.setCurrent(nil)
	m.logger.Info("user logged out")
	return nil
}

// Current returns the active session, if any.
func (m *SessionManager) Current() (domain.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return domain.Session{}, false
	}
	return *m.current, true
}

func (m *SessionManager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}

// setCurrent swaps the state and notifies every observer synchronously.
// Observers run outside the lock so they may query the manager.
func (m *SessionManager) setCurrent(session *domain.Session) {
	m.mu.Lock()
	m.current = session
	observers := make([]SessionObserver, len(m.observers))
	copy(observers, m.observers)
	m.mu.Unlock()

	var s domain.Session
	if session != nil {
		s = *session
	}
	for _, fn := range observers {
		fn(s, session != nil)
	}
}
