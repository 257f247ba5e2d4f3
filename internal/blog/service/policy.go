package service

import "github.com/quillworks/quill/internal/blog/domain"

// Action classifies what a caller is trying to do with articles.
type Action int

const (
	ActionList Action = iota
	ActionRetrieve
	ActionCreate
	ActionUpdate
	ActionDelete // modeled but no endpoint is routed for it
)

func (a Action) String() string {
	switch a {
	case ActionList:
		return "list"
	case ActionRetrieve:
		return "retrieve"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// CanPerform is the authorization policy: a stateless decision over the
// caller, the action, and (for update/delete) the targeted article. Reads
// pass the gate unconditionally; visibility of non-public articles is a
// filtering concern handled by ArticleService, not an authorization one.
//
// Both denial kinds map to 403 at the HTTP layer; the action/object split is
// kept as separate predicates so that stays obvious.
func CanPerform(caller *domain.Caller, action Action, article *domain.Article) bool {
	if !allowsAction(caller, action) {
		return false
	}

	switch action {
	case ActionUpdate, ActionDelete:
		// Object-level check: only the owning author may mutate.
		return article != nil && ownsArticle(caller, article)
	default:
		return true
	}
}

func allowsAction(caller *domain.Caller, action Action) bool {
	switch action {
	case ActionList, ActionRetrieve:
		return true
	case ActionCreate, ActionUpdate, ActionDelete:
		return caller != nil && caller.IsAuthor
	default:
		return false
	}
}

func ownsArticle(caller *domain.Caller, article *domain.Article) bool {
	return caller != nil && article.AuthorID == caller.ID
}
