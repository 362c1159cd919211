package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/growthverse/site/internal/site/domain"
	"github.com/growthverse/site/internal/site/store"
	"github.com/growthverse/site/pkg/idx"
)

// Comments is the append-only comment ledger. Comments group under a post id
// derived from the page title.
type Comments struct {
	Sessions *SessionManager
	Store    *store.Collections
	Logger   *slog.Logger
}

// DerivePostID normalizes a page title into the id that groups its comments:
// everything outside [A-Za-z0-9] is stripped and the rest lowercased. Distinct
// titles that collapse to the same string share a thread; that collision is
// documented behavior, not a defect.
func DerivePostID(pageTitle string) string {
	var b strings.Builder
	for _, r := range pageTitle {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// ListForPost returns the comments for the page's derived post id, newest
// first. Timestamp ties resolve by descending id, which for monotonic ids is
// reverse insertion order.
func (c *Comments) ListForPost(ctx context.Context, pageTitle string) ([]domain.Comment, error) {
	all, err := c.Store.Comments(ctx)
	if err != nil {
		return nil, err
	}

	postID := DerivePostID(pageTitle)
	comments := make([]domain.Comment, 0, len(all))
	for _, comment := range all {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}

	sort.SliceStable(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}
		return comments[i].ID > comments[j].ID
	})
	return comments, nil
}

// Submit appends a comment for the current page, snapshotting the active
// session's identity. Requires an active session and a non-blank body.
func (c *Comments) Submit(ctx context.Context, pageTitle, body string) (domain.Comment, error) {
	session, ok := c.Sessions.Current()
	if !ok {
		return domain.Comment{}, ErrUnauthenticated
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return domain.Comment{}, ErrEmptyBody
	}

	comment := domain.Comment{
		ID:        idx.New(),
		PostID:    DerivePostID(pageTitle),
		PostTitle: pageTitle,
		UserID:    session.UserID,
		UserName:  session.Name,
		UserEmail: session.Email,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	all, err := c.Store.Comments(ctx)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := c.Store.SaveComments(ctx, append(all, comment)); err != nil {
		return domain.Comment{}, err
	}

	c.Logger.Info("comment posted", "comment_id", comment.ID, "post_id", comment.PostID)
	return comment, nil
}
