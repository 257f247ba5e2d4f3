package service

import (
	"context"
	"errors"

	"github.com/quillworks/quill/internal/blog/domain"
	"github.com/quillworks/quill/internal/blog/store"
)

var ErrUserNotFound = errors.New("user not found")

// UserService exposes user lookups for the authentication middleware.
type UserService struct {
	Store store.Store
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
