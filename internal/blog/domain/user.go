package domain

import "time"

type User struct {
	ID           string
	Email        string // normalized: domain part lowercased
	Name         string
	PasswordHash string // argon2 encoded
	IsAuthor     bool
	IsSubscriber bool
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Caller is the identity attached to a request. A nil *Caller means the
// request is anonymous. Core operations take the caller explicitly rather
// than reading it from ambient request state.
type Caller struct {
	ID           string
	IsAuthor     bool
	IsSubscriber bool
}

// AsCaller projects the subset of user state the policy layer needs.
func (u User) AsCaller() *Caller {
	return &Caller{
		ID:           u.ID,
		IsAuthor:     u.IsAuthor,
		IsSubscriber: u.IsSubscriber,
	}
}
