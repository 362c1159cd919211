// Package hooks is the boundary between the site core and presentation glue.
// UI code drives the core exclusively through these event and query hooks and
// re-renders off the session-change subscription; it never touches the
// services or storage directly.
package hooks

import (
	"context"
	"sync"

	"github.com/growthverse/site/internal/site/domain"
	"github.com/growthverse/site/internal/site/service"
	"github.com/growthverse/site/pkg/idx"
)

type Hooks struct {
	Directory *service.Directory
	Sessions  *service.SessionManager
	Comments  *service.Comments
	Contact   *service.Contact

	mu   sync.Mutex
	page string
}

// SetPage records the title of the page currently shown, which scopes the
// comment hooks to that page's thread.
func (h *Hooks) SetPage(title string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.page = title
}

// Page returns the current page title.
func (h *Hooks) Page() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.page
}

// OnRegisterSubmit handles the signup form.
func (h *Hooks) OnRegisterSubmit(ctx context.Context, name, email, password string) error {
	_, err := h.Directory.Register(ctx, name, email, password)
	return err
}

// OnLoginSubmit handles the login form.
func (h *Hooks) OnLoginSubmit(ctx context.Context, email, password string) error {
	_, err := h.Sessions.Login(ctx, email, password)
	return err
}

// OnLogoutClick handles the logout button.
func (h *Hooks) OnLogoutClick(ctx context.Context) error {
	return h.Sessions.Logout(ctx)
}

// OnCommentSubmit handles the comment form on the current page.
func (h *Hooks) OnCommentSubmit(ctx context.Context, body string) (domain.Comment, error) {
	return h.Comments.Submit(ctx, h.Page(), body)
}

// OnContactSubmit handles the contact form.
func (h *Hooks) OnContactSubmit(ctx context.Context, name, email, body string) (domain.ContactMessage, error) {
	return h.Contact.Submit(ctx, name, email, body)
}

// CurrentSession exposes the active session for rendering.
func (h *Hooks) CurrentSession() (domain.Session, bool) {
	return h.Sessions.Current()
}

func (h *Hooks) IsAuthenticated() bool {
	return h.Sessions.IsAuthenticated()
}

// ListCommentsForCurrentPost returns the current page's comments, newest
// first, ready for rendering.
func (h *Hooks) ListCommentsForCurrentPost(ctx context.Context) ([]domain.Comment, error) {
	return h.Comments.ListForPost(ctx, h.Page())
}

// ListContactMessages exposes the contact inbox.
func (h *Hooks) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return h.Contact.Messages(ctx)
}

// MarkContactMessageRead marks an inbox entry read.
func (h *Hooks) MarkContactMessageRead(ctx context.Context, id idx.ID) error {
	return h.Contact.MarkRead(ctx, id)
}

// OnSessionChanged registers a callback invoked synchronously on every session
// transition, so navigation and comment-form visibility re-render in the same
// turn.
func (h *Hooks) OnSessionChanged(fn service.SessionObserver) {
	h.Sessions.Subscribe(fn)
}
