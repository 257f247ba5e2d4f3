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

type RegisterHandler struct {
	RegisterService *service.RegisterService
}

// ServeHTTP creates a new account from a JSON body. Validation failures come
// back as one field-keyed map so the client can render every problem at once.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req blogsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, blogsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	user, err := h.RegisterService.Register(ctx, service.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			httpx.WriteJSON(w, http.StatusBadRequest, blogsdk.ValidationErrorResponse{
				Code:    "validation_error",
				Message: "validation failed for some fields",
				Details: verr.Fields,
			})
			return
		}

		log.Error("failed to register user", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, blogsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to register user",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, blogsdk.RegisterResponse{
		Name:  user.Name,
		Email: user.Email,
	})
}
