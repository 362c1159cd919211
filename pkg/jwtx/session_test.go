package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	t.Parallel()

	signer := NewSigner("test-secret", "growthverse")
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := signer.Sign("01USER", "Ada", "ada@x.com", issued)
	require.NoError(t, err)

	claims, err := signer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "01USER", claims.Subject)
	require.Equal(t, "Ada", claims.Name)
	require.Equal(t, "ada@x.com", claims.Email)
	require.Equal(t, issued, claims.IssuedAt.Time)
}

func TestParseRejectsForgedTokens(t *testing.T) {
	t.Parallel()

	signer := NewSigner("test-secret", "growthverse")

	t.Run("wrong secret", func(t *testing.T) {
		other := NewSigner("other-secret", "growthverse")
		token, err := other.Sign("01USER", "Ada", "ada@x.com", time.Now())
		require.NoError(t, err)

		_, err = signer.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewSigner("test-secret", "someone-else")
		token, err := other.Sign("01USER", "Ada", "ada@x.com", time.Now())
		require.NoError(t, err)

		_, err = signer.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		for _, token := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
			_, err := signer.Parse(token)
			require.ErrorIs(t, err, ErrInvalidToken)
		}
	})
}
