// Package domain defines the records persisted by the site core: users,
// sessions, comments, contact messages and notifications. Each persisted type
// carries a WellFormed check; records read back from storage that fail it are
// treated as absent rather than propagated into business logic.
package domain

import (
	"time"

	"github.com/growthverse/site/pkg/idx"
)

type User struct {
	ID           idx.ID    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"` // argon2id PHC encoded
	CreatedAt    time.Time `json:"createdAt"`
}

// Session projects the user into its session shape, dropping the credential
// digest.
func (u User) Session() Session {
	return Session{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func (u User) WellFormed() bool {
	return !u.ID.IsZero() && u.Name != "" && u.Email != "" && u.PasswordHash != ""
}
