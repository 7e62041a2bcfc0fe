package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/portfolioz/server/internal/api/shared"
	"github.com/portfolioz/server/internal/domain"
	"github.com/portfolioz/server/internal/store"
)

// ProjectHandler handles CRUD requests for portfolio projects.
type ProjectHandler struct {
	projectStore store.ProjectStore
	validator    *validator.Validate
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectStore store.ProjectStore) *ProjectHandler {
	return &ProjectHandler{
		projectStore: projectStore,
		validator:    validator.New(),
	}
}

// ProjectRequest is the payload for project create and update. All content
// fields are mandatory at creation; OwnerEmail is recorded at creation and
// checked (never changed) on update.
type ProjectRequest struct {
	Name        string `json:"ProjectName"        validate:"required"`
	Description string `json:"ProjectDescription" validate:"required"`
	Image       string `json:"ProjectImage"       validate:"required"`
	Link        string `json:"ProjectLink"        validate:"required"`
	OwnerEmail  string `json:"userEmail"`
}

// CreateProjectResponse reports a created project.
type CreateProjectResponse struct {
	Message   string `json:"message"`
	ProjectID string `json:"projectId"`
}

// List handles GET /projects?userEmail=.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerEmail := r.URL.Query().Get("userEmail")
	if ownerEmail == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "User email is required")
		return
	}

	projects, err := h.projectStore.ListByOwner(r.Context(), ownerEmail)
	if err != nil {
		slog.Error("failed to list projects", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Error fetching projects")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, projects)
}

// Get handles GET /projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.projectStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Project not found")
			return
		}
		slog.Error("failed to get project", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, project)
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "All fields are required")
		return
	}

	id, err := h.projectStore.Create(r.Context(), &domain.Project{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Link:        req.Link,
		OwnerEmail:  req.OwnerEmail,
	})
	if err != nil {
		slog.Error("failed to create project", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateProjectResponse{
		Message:   "Project added successfully",
		ProjectID: id.Hex(),
	})
}

// Update handles PATCH /projects/{id}. The body's userEmail must match the
// stored owner; the content fields are then overwritten wholesale, so a
// caller must resend the full record. Per the resource policy table,
// projects do not re-validate field presence on update.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req ProjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	existing, err := h.projectStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Project not found")
			return
		}
		slog.Error("failed to get project for update", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if existing.OwnerEmail != req.OwnerEmail {
		shared.RespondWithError(w, r, http.StatusForbidden, "Unauthorized access")
		return
	}

	if revalidateOnUpdate["projects"] {
		if err := h.validator.Struct(req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "All fields are required")
			return
		}
	}

	matched, err := h.projectStore.Replace(r.Context(), id, &domain.Project{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Link:        req.Link,
	})
	if err != nil {
		slog.Error("failed to update project", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if matched == 0 {
		// Deleted between the existence check and the update; benign race.
		shared.RespondWithError(w, r, http.StatusNotFound, "Project not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Project updated successfully"})
}

// Delete handles DELETE /projects/{id}. Deletion has no ownership check.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid project ID")
		return
	}

	deleted, err := h.projectStore.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete project", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if deleted == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Project not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Project deleted successfully"})
}
