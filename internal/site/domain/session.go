package domain

import (
	"strings"
	"time"

	"github.com/growthverse/site/pkg/idx"
)

// Session is the reduced projection of a User representing the currently
// authenticated actor. At most one exists per storage instance.
type Session struct {
	UserID    idx.ID    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s Session) WellFormed() bool {
	return !s.UserID.IsZero() && s.Name != "" && s.Email != ""
}

// Initials returns the avatar initials for the session's display name.
func (s Session) Initials() string { return initials(s.Name) }

func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		first := []rune(word)[0]
		b.WriteString(strings.ToUpper(string(first)))
	}
	return b.String()
}
