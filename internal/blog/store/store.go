package store

import (
	"context"
	"errors"

	"github.com/quillworks/quill/internal/blog/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Articles() Articles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by their normalized email. The match is
	// case-insensitive (NOCASE index on the email column).
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists if the email is already registered; the unique
	// index is the only duplicate check, so concurrent inserts of the same
	// email cannot both succeed.
	CreateUser(ctx context.Context, u domain.User) error
}

type Articles interface {
	// GetArticleByID returns an article by id.
	GetArticleByID(ctx context.Context, id string) (domain.Article, error)

	// CreateArticle inserts a new article (id is ULID).
	// Returns ErrAlreadyExists if the title is already taken.
	CreateArticle(ctx context.Context, a domain.Article) error

	// UpdateArticle rewrites the mutable fields (title, content, is_public)
	// and updated_at. Returns ErrNotFound if the id is unknown and
	// ErrAlreadyExists if the new title collides with another article.
	UpdateArticle(ctx context.Context, a domain.Article) error

	// ListArticles returns every article ordered by creation date (newest first).
	ListArticles(ctx context.Context) ([]domain.Article, error)

	// ListPublicArticles returns only is_public articles, same ordering.
	ListPublicArticles(ctx context.Context) ([]domain.Article, error)
}
