package sqlite

import (
	"context"
	"time"

	"github.com/quillworks/quill/internal/blog/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, name, password_hash, is_author, is_subscriber, is_staff, is_superuser, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now()
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := u.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Email,
		u.Name,
		u.PasswordHash,
		boolToInt(u.IsAuthor),
		boolToInt(u.IsSubscriber),
		boolToInt(u.IsStaff),
		boolToInt(u.IsSuperuser),
		timeToNanos(createdAt),
		timeToNanos(updatedAt),
	)
	return mapUniqueViolation(err)
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u                    domain.User
		isAuthor             int64
		isSubscriber         int64
		isStaff              int64
		isSuperuser          int64
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&isAuthor,
		&isSubscriber,
		&isStaff,
		&isSuperuser,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.IsAuthor = isAuthor != 0
	u.IsSubscriber = isSubscriber != 0
	u.IsStaff = isStaff != 0
	u.IsSuperuser = isSuperuser != 0
	u.CreatedAt = nanosToTime(createdAt)
	u.UpdatedAt = nanosToTime(updatedAt)
	return u, nil
}
