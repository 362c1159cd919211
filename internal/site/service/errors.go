// Package service implements the site core's business logic: the user
// directory, the session manager and the comment and contact ledgers. All
// operations run to completion on the calling goroutine; every error below is
// recoverable and surfaced to the caller for user-facing messaging.
package service

import "errors"

var (
	// ErrValidation reports blank or malformed input. No state changed.
	ErrValidation = errors.New("service: invalid input")

	// ErrDuplicateEmail reports a registration against an already registered
	// email address.
	ErrDuplicateEmail = errors.New("service: email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers deliberately cannot tell which.
	ErrInvalidCredentials = errors.New("service: invalid email or password")

	// ErrUnauthenticated reports an operation that requires an active session.
	ErrUnauthenticated = errors.New("service: login required")

	// ErrEmptyBody reports a comment whose body is blank after trimming.
	ErrEmptyBody = errors.New("service: comment body is empty")

	// ErrTooManyAttempts reports login attempts arriving faster than the
	// throttle allows.
	ErrTooManyAttempts = errors.New("service: too many login attempts")
)
