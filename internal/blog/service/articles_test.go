package service

import (
	"context"
	"testing"
	"time"

	"github.com/quillworks/quill/internal/blog/domain"
	"github.com/quillworks/quill/internal/blog/store"
	"github.com/quillworks/quill/pkg/idx"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, st store.Store, name string, author, subscriber bool) domain.User {
	t.Helper()

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        name + "@example.com",
		Name:         name,
		PasswordHash: "unused",
		IsAuthor:     author,
		IsSubscriber: subscriber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func TestArticleCreate(t *testing.T) {
	st := newTestStore(t)
	svc := &ArticleService{Store: st}
	ctx := context.Background()

	author := seedUser(t, st, "author", true, false)
	reader := seedUser(t, st, "reader", false, true)

	t.Run("anonymous callers are rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, nil, "Title", "Body", false)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("subscribers are rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, reader.AsCaller(), "Title", "Body", false)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing fields are reported together", func(t *testing.T) {
		_, err := svc.Create(ctx, author.AsCaller(), "", "  ", false)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "required", verr.Fields["title"])
		require.Equal(t, "required", verr.Fields["content"])
	})

	t.Run("authors create articles they own", func(t *testing.T) {
		article, err := svc.Create(ctx, author.AsCaller(), "First Post", "Hello.", false)
		require.NoError(t, err)
		require.NotEmpty(t, article.ID)
		require.Equal(t, author.ID, article.AuthorID)
		require.False(t, article.IsPublic)
	})

	t.Run("duplicate titles are rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, author.AsCaller(), "First Post", "Different body.", true)
		require.ErrorIs(t, err, ErrTitleTaken)
	})
}

func TestArticleRetrieve(t *testing.T) {
	st := newTestStore(t)
	svc := &ArticleService{Store: st}
	ctx := context.Background()

	author := seedUser(t, st, "author", true, false)
	other := seedUser(t, st, "other", true, false)
	subscriber := seedUser(t, st, "subscriber", false, true)
	plain := seedUser(t, st, "plain", false, false)

	draft, err := svc.Create(ctx, author.AsCaller(), "Draft", "Not yet.", false)
	require.NoError(t, err)
	published, err := svc.Create(ctx, author.AsCaller(), "Published", "Out there.", true)
	require.NoError(t, err)

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.Retrieve(ctx, author.AsCaller(), idx.New().String())
		require.ErrorIs(t, err, ErrArticleNotFound)
	})

	t.Run("anyone reads public articles", func(t *testing.T) {
		got, err := svc.Retrieve(ctx, nil, published.ID)
		require.NoError(t, err)
		require.Equal(t, published.ID, got.ID)
	})

	t.Run("anonymous callers cannot read drafts", func(t *testing.T) {
		_, err := svc.Retrieve(ctx, nil, draft.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("plain users cannot read drafts", func(t *testing.T) {
		_, err := svc.Retrieve(ctx, plain.AsCaller(), draft.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("subscribers read drafts", func(t *testing.T) {
		got, err := svc.Retrieve(ctx, subscriber.AsCaller(), draft.ID)
		require.NoError(t, err)
		require.Equal(t, draft.ID, got.ID)
	})

	t.Run("any author reads any draft", func(t *testing.T) {
		got, err := svc.Retrieve(ctx, other.AsCaller(), draft.ID)
		require.NoError(t, err)
		require.Equal(t, draft.ID, got.ID)
	})
}

func TestArticleList(t *testing.T) {
	st := newTestStore(t)
	svc := &ArticleService{Store: st}
	ctx := context.Background()

	author := seedUser(t, st, "author", true, false)
	subscriber := seedUser(t, st, "subscriber", false, true)

	for _, a := range []struct {
		title  string
		public bool
	}{
		{"Oldest Public", true},
		{"Middle Draft", false},
		{"Newest Public", true},
	} {
		_, err := svc.Create(ctx, author.AsCaller(), a.title, "body", a.public)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	titles := func(articles []domain.Article) []string {
		out := make([]string, 0, len(articles))
		for _, a := range articles {
			out = append(out, a.Title)
		}
		return out
	}

	t.Run("anonymous callers see public only, newest first", func(t *testing.T) {
		articles, err := svc.List(ctx, nil)
		require.NoError(t, err)
		require.Equal(t, []string{"Newest Public", "Oldest Public"}, titles(articles))
	})

	t.Run("subscribers see everything, newest first", func(t *testing.T) {
		articles, err := svc.List(ctx, subscriber.AsCaller())
		require.NoError(t, err)
		require.Equal(t, []string{"Newest Public", "Middle Draft", "Oldest Public"}, titles(articles))
	})

	t.Run("authors see everything", func(t *testing.T) {
		articles, err := svc.List(ctx, author.AsCaller())
		require.NoError(t, err)
		require.Len(t, articles, 3)
	})

	t.Run("publishing a draft changes what anonymous callers see", func(t *testing.T) {
		draft, err := svc.Retrieve(ctx, author.AsCaller(), mustFindByTitle(t, st, "Middle Draft").ID)
		require.NoError(t, err)

		public := true
		_, err = svc.Update(ctx, author.AsCaller(), draft.ID, ArticlePatch{IsPublic: &public})
		require.NoError(t, err)

		articles, err := svc.List(ctx, nil)
		require.NoError(t, err)
		require.Equal(t, []string{"Newest Public", "Middle Draft", "Oldest Public"}, titles(articles))
	})
}

func mustFindByTitle(t *testing.T, st store.Store, title string) domain.Article {
	t.Helper()

	articles, err := st.Articles().ListArticles(context.Background())
	require.NoError(t, err)
	for _, a := range articles {
		if a.Title == title {
			return a
		}
	}
	t.Fatalf("no article titled %q", title)
	return domain.Article{}
}

func TestArticleUpdate(t *testing.T) {
	st := newTestStore(t)
	svc := &ArticleService{Store: st}
	ctx := context.Background()

	owner := seedUser(t, st, "owner", true, false)
	rival := seedUser(t, st, "rival", true, false)

	article, err := svc.Create(ctx, owner.AsCaller(), "Mine", "Original.", false)
	require.NoError(t, err)
	_, err = svc.Create(ctx, rival.AsCaller(), "Theirs", "Other.", true)
	require.NoError(t, err)

	newContent := "Revised."

	t.Run("unknown id reports not found before permissions", func(t *testing.T) {
		_, err := svc.Update(ctx, nil, idx.New().String(), ArticlePatch{Content: &newContent})
		require.ErrorIs(t, err, ErrArticleNotFound)
	})

	t.Run("non-owner authors are rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, rival.AsCaller(), article.ID, ArticlePatch{Content: &newContent})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("anonymous callers are rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, nil, article.ID, ArticlePatch{Content: &newContent})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("owner updates stick", func(t *testing.T) {
		public := true
		updated, err := svc.Update(ctx, owner.AsCaller(), article.ID, ArticlePatch{
			Content:  &newContent,
			IsPublic: &public,
		})
		require.NoError(t, err)
		require.Equal(t, "Mine", updated.Title)
		require.Equal(t, "Revised.", updated.Content)
		require.True(t, updated.IsPublic)

		got, err := st.Articles().GetArticleByID(ctx, article.ID)
		require.NoError(t, err)
		require.Equal(t, "Revised.", got.Content)
		require.True(t, got.IsPublic)
	})

	t.Run("renaming onto a taken title is rejected", func(t *testing.T) {
		taken := "Theirs"
		_, err := svc.Update(ctx, owner.AsCaller(), article.ID, ArticlePatch{Title: &taken})
		require.ErrorIs(t, err, ErrTitleTaken)
	})
}
