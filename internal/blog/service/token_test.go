package service

import (
	"context"
	"testing"
	"time"

	"github.com/quillworks/quill/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	reg := &RegisterService{Store: st}
	user, err := reg.Register(ctx, RegisterInput{
		Name:      "Alice",
		Email:     "alice@example.com",
		Password:  "hunter2hunter2",
		Password2: "hunter2hunter2",
	})
	require.NoError(t, err)

	svc := &TokenService{
		Store:     st,
		Signer:    jwtx.NewSigner([]byte("test-secret"), "quill-blog"),
		Issuer:    "quill-blog",
		AccessTTL: time.Minute,
	}

	t.Run("valid credentials mint a verifiable token", func(t *testing.T) {
		token, ttl, err := svc.Login(ctx, "alice@example.com", "hunter2hunter2")
		require.NoError(t, err)
		require.Equal(t, time.Minute, ttl)

		claims, err := svc.Signer.Verify(token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
		require.Equal(t, "Alice", claims.Name)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "ALICE@Example.COM", "hunter2hunter2")
		require.NoError(t, err)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "alice@example.com", "wrong-password1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "hunter2hunter2")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
