package blog_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/quillworks/quill/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	srv := setupServer(t)
	client := blogsdk.NewClient(srv.URL)
	ctx := context.Background()

	t.Run("valid registration echoes the account", func(t *testing.T) {
		resp, err := client.Register(ctx, blogsdk.RegisterRequest{
			Name:      "Alice",
			Email:     "alice@Example.COM",
			Password:  testPassword,
			Password2: testPassword,
		})
		require.NoError(t, err)
		require.Equal(t, "Alice", resp.Name)
		require.Equal(t, "alice@example.com", resp.Email)
	})

	t.Run("duplicate email is a field error", func(t *testing.T) {
		_, err := client.Register(ctx, blogsdk.RegisterRequest{
			Name:      "Impostor",
			Email:     "ALICE@example.com",
			Password:  testPassword,
			Password2: testPassword,
		})
		requireAPIError(t, err, http.StatusBadRequest, "validation_error")

		var apiErr *blogsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "already registered", apiErr.Fields["email"])
	})

	t.Run("all field errors come back in one response", func(t *testing.T) {
		_, err := client.Register(ctx, blogsdk.RegisterRequest{
			Email:     "not-an-email",
			Password:  "12345678",
			Password2: "12345678",
		})
		requireAPIError(t, err, http.StatusBadRequest, "validation_error")

		var apiErr *blogsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "required", apiErr.Fields["name"])
		require.Equal(t, "enter a valid email address", apiErr.Fields["email"])
		require.Equal(t, "must contain at least 1 digit and 1 letter", apiErr.Fields["password"])
	})

	t.Run("password mismatch reported before policy", func(t *testing.T) {
		_, err := client.Register(ctx, blogsdk.RegisterRequest{
			Name:      "Bob",
			Email:     "bob@example.com",
			Password:  "abc",
			Password2: "xyz",
		})
		requireAPIError(t, err, http.StatusBadRequest, "validation_error")

		var apiErr *blogsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "password fields didn't match", apiErr.Fields["password"])
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := client.Register(ctx, blogsdk.RegisterRequest{
			Name:      "Bob",
			Email:     "bob@example.com",
			Password:  "abc1",
			Password2: "abc1",
		})
		requireAPIError(t, err, http.StatusBadRequest, "validation_error")

		var apiErr *blogsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "must be at least 8 characters long", apiErr.Fields["password"])
	})
}
