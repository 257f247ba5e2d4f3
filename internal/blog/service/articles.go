package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/quillworks/quill/internal/blog/domain"
	"github.com/quillworks/quill/internal/blog/store"
	"github.com/quillworks/quill/pkg/idx"
	"github.com/quillworks/quill/pkg/slogx"
)

var (
	ErrForbidden       = errors.New("forbidden")
	ErrArticleNotFound = errors.New("article not found")
	ErrTitleTaken      = errors.New("article title already taken")
)

// ArticlePatch describes a partial update. Nil fields are left unchanged.
type ArticlePatch struct {
	Title    *string
	Content  *string
	IsPublic *bool
}

// ArticleService wraps the article store with the authorization policy and
// the visibility rule.
type ArticleService struct {
	Store store.Store
}

// Create persists a new article owned by the caller. The author is always
// the caller's identity; clients cannot set it. New articles default to
// non-public drafts unless isPublic is set.
func (s *ArticleService) Create(
	ctx context.Context,
	caller *domain.Caller,
	title, content string,
	isPublic bool,
) (domain.Article, error) {
	log := slogx.FromContext(ctx)

	if !CanPerform(caller, ActionCreate, nil) {
		log.Warn("article create denied", slog.String("action", ActionCreate.String()))
		return domain.Article{}, ErrForbidden
	}

	if errs := validateArticleFields(title, content); errs != nil {
		return domain.Article{}, &ValidationError{Fields: errs}
	}

	now := time.Now().UTC()
	article := domain.Article{
		ID:        idx.New().String(),
		Title:     strings.TrimSpace(title),
		AuthorID:  caller.ID,
		Content:   content,
		IsPublic:  isPublic,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Articles().CreateArticle(ctx, article); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("article create with duplicate title")
			return domain.Article{}, ErrTitleTaken
		}
		log.Error("failed to create article", slog.Any("error", err))
		return domain.Article{}, err
	}

	log.Info("article created",
		slog.String("article_id", article.ID),
		slog.Bool("is_public", article.IsPublic),
	)

	return article, nil
}

// Update applies a patch to an existing article. Existence is checked before
// the permission gate, so a missing id is a 404 even for callers who could
// not have touched it. Only the owning author passes the gate. The
// read-modify-write runs in one transaction; the unique title index still
// backstops concurrent renames.
func (s *ArticleService) Update(
	ctx context.Context,
	caller *domain.Caller,
	articleID string,
	patch ArticlePatch,
) (domain.Article, error) {
	log := slogx.FromContext(ctx)

	var updated domain.Article
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		article, err := tx.Articles().GetArticleByID(ctx, articleID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrArticleNotFound
			}
			log.Error("failed to fetch article", slog.Any("error", err))
			return err
		}

		if !CanPerform(caller, ActionUpdate, &article) {
			log.Warn("article update denied", slog.String("article_id", articleID))
			return ErrForbidden
		}

		if patch.Title != nil {
			article.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Content != nil {
			article.Content = *patch.Content
		}
		if patch.IsPublic != nil {
			article.IsPublic = *patch.IsPublic
		}
		article.UpdatedAt = time.Now().UTC()

		if err := tx.Articles().UpdateArticle(ctx, article); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				log.Warn("article update with duplicate title")
				return ErrTitleTaken
			}
			log.Error("failed to update article", slog.Any("error", err))
			return err
		}

		updated = article
		return nil
	})
	if err != nil {
		return domain.Article{}, err
	}

	log.Info("article updated", slog.String("article_id", updated.ID))

	return updated, nil
}

// Retrieve returns one article. Non-public articles are only readable by
// subscribers and authors; that is visibility, not ownership, so any author
// can read any draft.
func (s *ArticleService) Retrieve(
	ctx context.Context,
	caller *domain.Caller,
	articleID string,
) (domain.Article, error) {
	article, err := s.Store.Articles().GetArticleByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Article{}, ErrArticleNotFound
		}
		return domain.Article{}, err
	}

	if !article.IsPublic && !canReadNonPublic(caller) {
		return domain.Article{}, ErrForbidden
	}

	return article, nil
}

// List returns the articles visible to the caller, newest first. Subscribers
// and authors see everything; everyone else (including anonymous callers)
// sees only public articles. The filter runs against current store state on
// every call.
func (s *ArticleService) List(ctx context.Context, caller *domain.Caller) ([]domain.Article, error) {
	if canReadNonPublic(caller) {
		return s.Store.Articles().ListArticles(ctx)
	}
	return s.Store.Articles().ListPublicArticles(ctx)
}

func canReadNonPublic(caller *domain.Caller) bool {
	return caller != nil && (caller.IsSubscriber || caller.IsAuthor)
}

func validateArticleFields(title, content string) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(title) == "" {
		errs["title"] = requiredReason
	}
	if strings.TrimSpace(content) == "" {
		errs["content"] = requiredReason
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
