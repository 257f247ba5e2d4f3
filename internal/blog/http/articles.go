package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quillworks/quill/internal/blog/domain"
	"github.com/quillworks/quill/internal/blog/service"
	"github.com/quillworks/quill/pkg/blogsdk"
	"github.com/quillworks/quill/pkg/httpx"
	"github.com/quillworks/quill/pkg/slogx"
)

type ArticlesHandler struct {
	ArticleService *service.ArticleService
}

// HandleList returns the articles visible to the caller, newest first.
func (h *ArticlesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	articles, err := h.ArticleService.List(ctx, callerFrom(ctx))
	if err != nil {
		log.Error("failed to list articles", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, blogsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list articles",
		})
		return
	}

	response := make([]blogsdk.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		response = append(response, toArticleResponse(a))
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleRetrieve returns a single article by id.
func (h *ArticlesHandler) HandleRetrieve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	article, err := h.ArticleService.Retrieve(ctx, callerFrom(ctx), r.PathValue("id"))
	if err != nil {
		writeArticleError(w, ctx, err, "Failed to fetch article")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toArticleResponse(article))
}

// HandleCreate creates an article owned by the authenticated author.
func (h *ArticlesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req blogsdk.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, blogsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	article, err := h.ArticleService.Create(ctx, callerFrom(ctx), req.Title, req.Content, req.IsPublic)
	if err != nil {
		writeArticleError(w, ctx, err, "Failed to create article")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toArticleResponse(article))
}

// HandleUpdate applies a partial update to an article the caller owns.
func (h *ArticlesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req blogsdk.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, blogsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	article, err := h.ArticleService.Update(ctx, callerFrom(ctx), r.PathValue("id"), service.ArticlePatch{
		Title:    req.Title,
		Content:  req.Content,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		writeArticleError(w, ctx, err, "Failed to update article")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toArticleResponse(article))
}

func toArticleResponse(a domain.Article) blogsdk.ArticleResponse {
	return blogsdk.ArticleResponse{
		Title:    a.Title,
		Content:  a.Content,
		IsPublic: a.IsPublic,
	}
}

// writeArticleError maps article service errors onto the wire taxonomy.
func writeArticleError(w http.ResponseWriter, ctx context.Context, err error, fallback string) {
	log := slogx.FromContext(ctx)

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, blogsdk.ValidationErrorResponse{
			Code:    "validation_error",
			Message: "validation failed for some fields",
			Details: verr.Fields,
		})
	case errors.Is(err, service.ErrTitleTaken):
		httpx.WriteJSON(w, http.StatusBadRequest, blogsdk.ValidationErrorResponse{
			Code:    "validation_error",
			Message: "validation failed for some fields",
			Details: map[string]string{"title": "an article with this title already exists"},
		})
	case errors.Is(err, service.ErrArticleNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, blogsdk.ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "Article not found",
		})
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteJSON(w, http.StatusForbidden, blogsdk.ErrorResponse{
			Error:            "forbidden",
			ErrorDescription: "You do not have permission to perform this action",
		})
	default:
		log.Error(fallback, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, blogsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: fallback,
		})
	}
}
