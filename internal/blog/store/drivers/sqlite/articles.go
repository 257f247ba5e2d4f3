package sqlite

import (
	"context"
	"database/sql"

	"github.com/quillworks/quill/internal/blog/domain"
	"github.com/quillworks/quill/internal/blog/store"
)

type articlesRepo struct {
	db dbtx
}

const articleColumns = `id, title, author_id, content, is_public, created_at, updated_at`

func (r *articlesRepo) GetArticleByID(ctx context.Context, id string) (domain.Article, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)
	return scanArticle(row)
}

func (r *articlesRepo) CreateArticle(ctx context.Context, a domain.Article) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO articles (`+articleColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		a.Title,
		a.AuthorID,
		a.Content,
		boolToInt(a.IsPublic),
		timeToNanos(a.CreatedAt),
		timeToNanos(a.UpdatedAt),
	)
	return mapUniqueViolation(err)
}

func (r *articlesRepo) UpdateArticle(ctx context.Context, a domain.Article) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE articles SET title = ?, content = ?, is_public = ?, updated_at = ? WHERE id = ?`,
		a.Title,
		a.Content,
		boolToInt(a.IsPublic),
		timeToNanos(a.UpdatedAt),
		a.ID,
	)
	if err != nil {
		return mapUniqueViolation(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ULID ids embed creation time, so the id tie-break keeps newest-first stable
// for articles written within the same instant.
const articleOrdering = ` ORDER BY created_at DESC, id DESC`

func (r *articlesRepo) ListArticles(ctx context.Context) ([]domain.Article, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+articleColumns+` FROM articles`+articleOrdering)
	if err != nil {
		return nil, err
	}
	return collectArticles(rows)
}

func (r *articlesRepo) ListPublicArticles(ctx context.Context) ([]domain.Article, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE is_public = 1`+articleOrdering)
	if err != nil {
		return nil, err
	}
	return collectArticles(rows)
}

func scanArticle(row rowScanner) (domain.Article, error) {
	var (
		a                    domain.Article
		isPublic             int64
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.AuthorID,
		&a.Content,
		&isPublic,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.Article{}, mapNotFound(err)
	}

	a.IsPublic = isPublic != 0
	a.CreatedAt = nanosToTime(createdAt)
	a.UpdatedAt = nanosToTime(updatedAt)
	return a, nil
}

func collectArticles(rows *sql.Rows) ([]domain.Article, error) {
	defer rows.Close()

	out := make([]domain.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
