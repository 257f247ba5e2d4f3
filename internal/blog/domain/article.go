package domain

import "time"

type Article struct {
	ID        string
	Title     string // globally unique
	AuthorID  string // Foreign key to users table
	Content   string
	IsPublic  bool
	CreatedAt time.Time // set once at creation
	UpdatedAt time.Time // refreshed on every mutation
}
