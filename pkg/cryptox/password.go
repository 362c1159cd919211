// Package cryptox provides password hashing for the site core. The original
// demo encoded passwords with a reversible base64-plus-fixed-salt scheme; this
// implementation replaces it with Argon2id as a hard requirement, not an
// optional nicety.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Moderate settings suited to an interactive login flow.
const (
	memory      = 64 * 1024
	iterations  = 3
	parallelism = 2
	saltLength  = 16
	keyLength   = 32
)

// MaxPasswordBytes caps password input length. Passwords are hashed as their
// raw UTF-8 bytes with no normalization; the cap only guards against absurd
// inputs, Argon2 itself has no practical limit.
const MaxPasswordBytes = 1024

var (
	// ErrPasswordTooLong reports an input above MaxPasswordBytes.
	ErrPasswordTooLong = errors.New("cryptox: password exceeds maximum length")

	// ErrMismatch reports a password that does not match its stored hash.
	ErrMismatch = errors.New("cryptox: password does not match")
)

// HashPassword derives a PHC-format Argon2id hash with a fresh random salt.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword checks a plaintext password against a PHC-format Argon2id
// hash. Returns ErrMismatch when the password is wrong; any other error means
// the stored hash itself is malformed.
func VerifyPassword(password, encodedHash string) error {
	if len(password) > MaxPasswordBytes {
		return ErrMismatch
	}

	// PHC layout: $argon2id$v=19$m=X,t=Y,p=Z$salt$hash
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return errors.New("cryptox: invalid hash format")
	}
	if parts[1] != "argon2id" {
		return errors.New("cryptox: unsupported hash algorithm")
	}
	if parts[2] != "v=19" {
		return errors.New("cryptox: unsupported argon2 version")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("cryptox: invalid hash parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("cryptox: invalid salt encoding: %w", err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("cryptox: invalid hash encoding: %w", err)
	}

	got := argon2.IDKey([]byte(password), salt, iters, mem, par, uint32(len(want)))
	if subtle.ConstantTimeCompare(got, want) == 1 {
		return nil
	}
	return ErrMismatch
}
