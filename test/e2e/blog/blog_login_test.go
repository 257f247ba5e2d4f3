package blog_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/quillworks/quill/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

func TestLoginEndpoint(t *testing.T) {
	srv := setupServer(t)
	client := blogsdk.NewClient(srv.URL)
	ctx := context.Background()

	_, err := client.Register(ctx, blogsdk.RegisterRequest{
		Name:      "Alice",
		Email:     "alice@example.com",
		Password:  testPassword,
		Password2: testPassword,
	})
	require.NoError(t, err)

	t.Run("registered users can log in", func(t *testing.T) {
		token, err := client.Login(ctx, "alice@example.com", testPassword)
		require.NoError(t, err)
		require.NotEmpty(t, token.AccessToken)
		require.Equal(t, "Bearer", token.TokenType)
		require.Equal(t, 60, token.ExpiresIn)
	})

	t.Run("login ignores email case", func(t *testing.T) {
		_, err := client.Login(ctx, "ALICE@Example.COM", testPassword)
		require.NoError(t, err)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		_, err := client.Login(ctx, "alice@example.com", "wrong-horse-1")
		requireAPIError(t, err, http.StatusUnauthorized, "invalid_credentials")
	})

	t.Run("unknown email looks like a wrong password", func(t *testing.T) {
		_, err := client.Login(ctx, "nobody@example.com", testPassword)
		requireAPIError(t, err, http.StatusUnauthorized, "invalid_credentials")
	})
}
