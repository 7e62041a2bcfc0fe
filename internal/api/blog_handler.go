package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/portfolioz/server/internal/api/shared"
	"github.com/portfolioz/server/internal/domain"
	"github.com/portfolioz/server/internal/store"
)

// BlogHandler handles CRUD requests for blog posts.
type BlogHandler struct {
	blogStore store.BlogStore
	validator *validator.Validate
	timeFunc  func() time.Time // injectable for testing
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogStore store.BlogStore) *BlogHandler {
	return &BlogHandler{
		blogStore: blogStore,
		validator: validator.New(),
		timeFunc:  time.Now,
	}
}

// BlogRequest is the payload for blog create and update. All fields,
// including the owner email, are mandatory at creation.
type BlogRequest struct {
	Title      string `json:"BlogTitle"   validate:"required"`
	Author     string `json:"BlogAuthor"  validate:"required"`
	Image      string `json:"BlogImage"   validate:"required"`
	Content    string `json:"BlogContent" validate:"required"`
	OwnerEmail string `json:"userEmail"   validate:"required"`
}

// BlogListResponse wraps the blog listing; blogs are served inside an
// envelope, unlike the other resources.
type BlogListResponse struct {
	Blogs []domain.BlogPost `json:"blogs"`
}

// BlogResponse wraps a single blog post.
type BlogResponse struct {
	Blog *domain.BlogPost `json:"blog"`
}

// CreateBlogResponse reports a created blog post.
type CreateBlogResponse struct {
	Message string `json:"message"`
	BlogID  string `json:"BlogID"`
}

// UpdateBlogResponse reports an updated blog post.
type UpdateBlogResponse struct {
	Message       string `json:"message"`
	UpdatedBlogID string `json:"updatedBlogId"`
}

// List handles GET /blogs. Blogs are listed without an owner filter.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogStore.List(r.Context())
	if err != nil {
		slog.Error("failed to list blogs", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error. Please try again later.")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, BlogListResponse{Blogs: blogs})
}

// Get handles GET /blogs/{id}.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid Blog ID")
		return
	}

	blog, err := h.blogStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Blog not found")
			return
		}
		slog.Error("failed to get blog", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error. Please try again later.")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, BlogResponse{Blog: blog})
}

// Create handles POST /blogs. The creation timestamp is stamped here and
// never modified by updates.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "All fields are required")
		return
	}

	id, err := h.blogStore.Create(r.Context(), &domain.BlogPost{
		Title:      req.Title,
		Author:     req.Author,
		Image:      req.Image,
		Content:    req.Content,
		OwnerEmail: req.OwnerEmail,
		CreatedAt:  h.timeFunc(),
	})
	if err != nil {
		slog.Error("failed to create blog", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error. Please try again later.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateBlogResponse{
		Message: "Blog added successfully",
		BlogID:  id.Hex(),
	})
}

// Update handles PATCH /blogs/{id}. Blogs re-validate required fields on
// update, per the resource policy table.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid Blog ID")
		return
	}

	var req BlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.OwnerEmail == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "User email is required for authorization")
		return
	}

	existing, err := h.blogStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Blog not found")
			return
		}
		slog.Error("failed to get blog for update", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if existing.OwnerEmail != req.OwnerEmail {
		shared.RespondWithError(w, r, http.StatusForbidden, "Unauthorized access")
		return
	}

	if revalidateOnUpdate["blogs"] {
		if err := h.validator.Struct(req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "All fields are required")
			return
		}
	}

	matched, err := h.blogStore.Replace(r.Context(), id, &domain.BlogPost{
		Title:   req.Title,
		Author:  req.Author,
		Image:   req.Image,
		Content: req.Content,
	})
	if err != nil {
		slog.Error("failed to update blog", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if matched == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Blog not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateBlogResponse{
		Message:       "Blog updated successfully",
		UpdatedBlogID: id.Hex(),
	})
}

// Delete handles DELETE /blogs/{id}.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid Blog ID")
		return
	}

	deleted, err := h.blogStore.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete blog", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error. Please try again later.")
		return
	}
	if deleted == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Blog not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Blog deleted successfully"})
}
