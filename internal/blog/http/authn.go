package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/quillworks/quill/internal/blog/domain"
	"github.com/quillworks/quill/internal/blog/service"
	"github.com/quillworks/quill/pkg/jwtx"
	"github.com/quillworks/quill/pkg/slogx"
)

type ctxKey string

const ctxKeyCaller ctxKey = "caller"

func withCaller(ctx context.Context, caller *domain.Caller) context.Context {
	return context.WithValue(ctx, ctxKeyCaller, caller)
}

// callerFrom returns the authenticated caller, or nil for anonymous requests.
func callerFrom(ctx context.Context) *domain.Caller {
	if c, ok := ctx.Value(ctxKeyCaller).(*domain.Caller); ok {
		return c
	}
	return nil
}

// optionalAuthn resolves the Authorization header into a caller. Requests
// without the header pass through as anonymous; a header that is present but
// does not verify is a hard 401. Role flags are loaded from the store on
// every request so a role change takes effect before the token expires.
func optionalAuthn(signer *jwtx.Signer, users *service.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "malformed authorization header")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := signer.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			user, err := users.GetUserByID(ctx, claims.Subject)
			if err != nil {
				log.Warn("token subject unknown", "user_id", claims.Subject)
				writeBearerError(w, "token subject unknown")
				return
			}

			ctx = withCaller(ctx, user.AsCaller())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
