package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/quillworks/quill/internal/blog/domain"
	"github.com/quillworks/quill/internal/blog/store"
	"github.com/quillworks/quill/pkg/cryptox"
	"github.com/quillworks/quill/pkg/idx"
	"github.com/quillworks/quill/pkg/slogx"
)

const requiredReason = "required"

// emailPattern rejects addresses without an @ or without a dot in the domain
// ("test@testcom" is not a deliverable address).
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationError carries field-keyed validation failures so callers can
// return every problem in one response instead of just the first.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// RegisterInput is everything a registration attempt supplies.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Password2 string
}

// validate collects all field errors for the input. The password field uses
// first-failure-wins ordering: confirmation mismatch, then policy.
func (in RegisterInput) validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = requiredReason
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs["email"] = requiredReason
	case !emailPattern.MatchString(email):
		errs["email"] = "enter a valid email address"
	}

	switch {
	case in.Password == "":
		errs["password"] = requiredReason
	case in.Password != in.Password2:
		errs["password"] = "password fields didn't match"
	default:
		if _, err := ValidatePassword(in.Password); err != nil {
			errs["password"] = err.Error()
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// NormalizeEmail lowercases the domain part of an address. The local part is
// preserved; the store's NOCASE index makes the uniqueness comparison fully
// case-insensitive on top of this.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

type RegisterService struct {
	Store store.Store
}

// Register validates the input, creates the account, and returns the stored
// user. New accounts are neither authors nor subscribers; those flags are
// flipped by administrative flows outside this service.
//
// The duplicate-email check is the store's unique index, not a pre-read, so
// concurrent registrations of the same address produce exactly one success.
func (s *RegisterService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Collect every field error in one pass.
	if errs := in.validate(); errs != nil {
		return domain.User{}, &ValidationError{Fields: errs}
	}

	// 2. Hash the password using Argon2id.
	passwordHash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 3. Persist. The unique index on email is the duplicate gate.
	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        NormalizeEmail(in.Email),
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration attempted with already-registered email")
			return domain.User{}, &ValidationError{
				Fields: map[string]string{"email": "already registered"},
			}
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
	)

	return user, nil
}
