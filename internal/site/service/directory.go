package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/growthverse/site/internal/site/domain"
	"github.com/growthverse/site/internal/site/store"
	"github.com/growthverse/site/pkg/cryptox"
	"github.com/growthverse/site/pkg/idx"
)

// Directory owns the users collection. No other component writes to it.
//
// Uniqueness is enforced by a read-check-append sequence, which is atomic
// against other operations from this process but not against a second process
// sharing the same database file. Two concurrent registrations from separate
// processes can both pass the check; that limitation is accepted, matching the
// original's multi-tab behavior.
type Directory struct {
	Store  *store.Collections
	Logger *slog.Logger
}

// Register creates a new user. Email matching is exact, byte for byte.
// The new user is not logged in.
func (d *Directory) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return domain.User{}, ErrValidation
	}

	users, err := d.Store.Users(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return domain.User{}, ErrDuplicateEmail
		}
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return domain.User{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := d.Store.SaveUsers(ctx, append(users, user)); err != nil {
		return domain.User{}, err
	}

	d.Logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// VerifyCredentials returns the user for email only when the password matches
// its stored digest. Unknown email and wrong password are indistinguishable:
// both return ErrInvalidCredentials.
func (d *Directory) VerifyCredentials(ctx context.Context, email, password string) (domain.User, error) {
	users, err := d.Store.Users(ctx)
	if err != nil {
		return domain.User{}, err
	}

	for _, u := range users {
		if u.Email != email {
			continue
		}
		if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
			return domain.User{}, ErrInvalidCredentials
		}
		return u, nil
	}
	return domain.User{}, ErrInvalidCredentials
}
