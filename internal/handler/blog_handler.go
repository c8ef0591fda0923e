package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"blog-be/internal/container"
	"blog-be/internal/domain"
	"blog-be/internal/middleware"
	"blog-be/pkg/apperr"
)

// BlogHandler handles blog CRUD, publishing and draft autosave
type BlogHandler struct {
	container *container.Container
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(container *container.Container) *BlogHandler {
	return &BlogHandler{container: container}
}

// List handles GET /api/blogs and returns the caller's blogs, newest first
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apperr.NewUnauthorized("Unauthorized: Missing token"), logger)
		return
	}

	blogs, err := h.container.GetBlogService().ListByAuthor(r.Context(), principal.ID)
	if err != nil {
		writeError(w, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, blogs, logger)
}

// Get handles GET /api/blogs/{id}
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	id, err := blogIDParam(r)
	if err != nil {
		writeError(w, apperr.NewValidation("Invalid blog id"), logger)
		return
	}

	blog, err := h.container.GetBlogService().Get(r.Context(), id)
	if err != nil {
		writeError(w, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, blog, logger)
}

// Delete handles DELETE /api/blogs/{id}
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apperr.NewUnauthorized("Unauthorized: Missing token"), logger)
		return
	}

	id, err := blogIDParam(r)
	if err != nil {
		writeError(w, apperr.NewValidation("Invalid blog id"), logger)
		return
	}

	if err := h.container.GetBlogService().Delete(r.Context(), id, principal.ID); err != nil {
		writeError(w, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Blog deleted successfully"}, logger)
}

// Publish handles POST /api/blogs/publish. Responds 201 when a new blog was
// created and 200 when an existing one was republished.
func (h *BlogHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, h.container.GetBlogService().Publish)
}

// SaveDraft handles POST /api/blogs/save-draft with the same create/update
// status split as Publish.
func (h *BlogHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, h.container.GetBlogService().SaveDraft)
}

// save is the shared handler path behind Publish and SaveDraft
func (h *BlogHandler) save(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, authorID string, req *domain.SaveBlogRequest) (*domain.Blog, bool, error),
) {
	logger := h.container.GetLogger()

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apperr.NewUnauthorized("Unauthorized: Missing token"), logger)
		return
	}

	var req domain.SaveBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.NewValidation("Invalid request body"), logger)
		return
	}

	blog, created, err := fn(r.Context(), principal.ID, &req)
	if err != nil {
		writeError(w, err, logger)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	writeJSON(w, status, blog, logger)
}

// blogIDParam parses the {id} route parameter
func blogIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
