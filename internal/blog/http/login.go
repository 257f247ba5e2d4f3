package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quillworks/quill/internal/blog/service"
	"github.com/quillworks/quill/pkg/blogsdk"
	"github.com/quillworks/quill/pkg/httpx"
	"github.com/quillworks/quill/pkg/slogx"
)

type LoginHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP exchanges email/password credentials for a bearer access token.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req blogsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, blogsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	token, ttl, err := h.TokenService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteJSON(w, http.StatusUnauthorized, blogsdk.ErrorResponse{
				Error:            "invalid_credentials",
				ErrorDescription: "Email or password is incorrect",
			})
			return
		}

		log.Error("failed to issue token", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, blogsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to issue token",
		})
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, blogsdk.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
	})
}
