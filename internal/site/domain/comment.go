package domain

import (
	"html"
	"time"

	"github.com/growthverse/site/pkg/idx"
)

// Comment is an append-only record tied to a post by its derived post id. The
// author fields are a snapshot of the session at creation time.
type Comment struct {
	ID        idx.ID    `json:"id"`
	PostID    string    `json:"postId"`
	PostTitle string    `json:"postTitle"`
	UserID    idx.ID    `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	Body      string    `json:"comment"`
	CreatedAt time.Time `json:"timestamp"`
}

func (c Comment) WellFormed() bool {
	return !c.ID.IsZero() && c.PostID != "" && !c.UserID.IsZero() &&
		c.UserName != "" && c.Body != ""
}

// EscapedBody returns the body as escaped plain text. Renderers must use this
// instead of Body wherever markup is interpreted, so stored content cannot
// inject markup.
func (c Comment) EscapedBody() string { return html.EscapeString(c.Body) }

// Initials returns the avatar initials for the comment author.
func (c Comment) Initials() string { return initials(c.UserName) }

// DisplayDate formats the creation time for display.
func (c Comment) DisplayDate() string {
	return c.CreatedAt.Format("January 2, 2006 15:04")
}
