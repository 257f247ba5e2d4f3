package service

import (
	"testing"

	"github.com/quillworks/quill/internal/blog/domain"
	"github.com/stretchr/testify/require"
)

func TestCanPerform(t *testing.T) {
	t.Parallel()

	author := &domain.Caller{ID: "author-1", IsAuthor: true}
	otherAuthor := &domain.Caller{ID: "author-2", IsAuthor: true}
	subscriber := &domain.Caller{ID: "reader-1", IsSubscriber: true}
	owned := &domain.Article{ID: "a1", AuthorID: "author-1"}

	tests := []struct {
		name    string
		caller  *domain.Caller
		action  Action
		article *domain.Article
		want    bool
	}{
		{"anonymous can list", nil, ActionList, nil, true},
		{"anonymous can retrieve", nil, ActionRetrieve, owned, true},
		{"anonymous cannot create", nil, ActionCreate, nil, false},
		{"subscriber cannot create", subscriber, ActionCreate, nil, false},
		{"author can create", author, ActionCreate, nil, true},
		{"owner can update", author, ActionUpdate, owned, true},
		{"other author cannot update", otherAuthor, ActionUpdate, owned, false},
		{"subscriber cannot update", subscriber, ActionUpdate, owned, false},
		{"update requires an article", author, ActionUpdate, nil, false},
		{"owner can delete", author, ActionDelete, owned, true},
		{"other author cannot delete", otherAuthor, ActionDelete, owned, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CanPerform(tc.caller, tc.action, tc.article))
		})
	}
}
