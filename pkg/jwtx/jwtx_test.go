package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	signer := NewSigner([]byte("test-secret"), "quill-blog")

	claims := NewAccessClaims("user-123", "Alice", "quill-blog", time.Minute, time.Now())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := signer.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "Alice", got.Name)
	require.Equal(t, "quill-blog", got.Issuer)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer := NewSigner([]byte("test-secret"), "quill-blog")

	claims := NewAccessClaims("user-123", "Alice", "quill-blog", time.Minute, time.Now().Add(-time.Hour))
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = signer.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewSigner([]byte("test-secret"), "quill-blog")
	other := NewSigner([]byte("other-secret"), "quill-blog")

	raw, err := signer.Sign(NewAccessClaims("user-123", "", "quill-blog", time.Minute, time.Now()))
	require.NoError(t, err)

	_, err = other.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	signer := NewSigner([]byte("test-secret"), "quill-blog")

	raw, err := signer.Sign(NewAccessClaims("user-123", "", "someone-else", time.Minute, time.Now()))
	require.NoError(t, err)

	_, err = signer.Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)
}
