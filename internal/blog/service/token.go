package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/quillworks/quill/internal/blog/store"
	"github.com/quillworks/quill/pkg/cryptox"
	"github.com/quillworks/quill/pkg/jwtx"
	"github.com/quillworks/quill/pkg/slogx"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenService exchanges email/password credentials for a signed access
// token.
type TokenService struct {
	Store     store.Store
	Signer    *jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// Login verifies the credentials and mints an access token for the user.
// Unknown emails and wrong passwords both collapse into
// ErrInvalidCredentials so the response does not leak which one failed.
func (s *TokenService) Login(ctx context.Context, email, password string) (string, time.Duration, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login with unknown email")
			return "", 0, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return "", 0, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login with wrong password", slog.String("user_id", user.ID))
			return "", 0, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return "", 0, err
	}

	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(user.ID, user.Name, s.Issuer, ttl, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return "", 0, err
	}

	log.Info("access token issued", slog.String("user_id", user.ID))

	return token, ttl, nil
}
