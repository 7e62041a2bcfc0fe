package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/portfolioz/server/internal/api/shared"
	"github.com/portfolioz/server/internal/domain"
	"github.com/portfolioz/server/internal/service/icon"
	"github.com/portfolioz/server/internal/store"
)

// SkillHandler handles CRUD requests for skills and the stateless
// skill-icon lookup.
type SkillHandler struct {
	skillStore  store.SkillStore
	iconService *icon.Service
	validator   *validator.Validate
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(skillStore store.SkillStore, iconService *icon.Service) *SkillHandler {
	return &SkillHandler{
		skillStore:  skillStore,
		iconService: iconService,
		validator:   validator.New(),
	}
}

// SkillRequest is the payload for skill create and update.
type SkillRequest struct {
	Name       string `json:"SkillName"  validate:"required"`
	Level      string `json:"SkillLevel" validate:"required"`
	Image      string `json:"SkillImage" validate:"required"`
	OwnerEmail string `json:"userEmail"`
}

// CreateSkillResponse reports a created skill.
type CreateSkillResponse struct {
	Message string `json:"message"`
	SkillID string `json:"skillId"`
}

// IconURLResponse carries the derived icon-service URL for a skill name.
type IconURLResponse struct {
	IconURL string `json:"iconUrl"`
}

// Icon handles GET /skillsicon?SkillName=. Pure derivation, no store access.
func (h *SkillHandler) Icon(w http.ResponseWriter, r *http.Request) {
	skillName := r.URL.Query().Get("SkillName")
	if skillName == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Skill is required")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, IconURLResponse{IconURL: h.iconService.URL(skillName)})
}

// List handles GET /skills?userEmail=.
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerEmail := r.URL.Query().Get("userEmail")
	if ownerEmail == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "User email is required")
		return
	}

	skills, err := h.skillStore.ListByOwner(r.Context(), ownerEmail)
	if err != nil {
		slog.Error("failed to list skills", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Error fetching skills")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, skills)
}

// Get handles GET /skills/{id}.
func (h *SkillHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid Skill ID")
		return
	}

	skill, err := h.skillStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrSkillNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Skill not found")
			return
		}
		slog.Error("failed to get skill", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, skill)
}

// Create handles POST /skills.
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SkillRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "All fields are required")
		return
	}

	id, err := h.skillStore.Create(r.Context(), &domain.Skill{
		Name:       req.Name,
		Level:      req.Level,
		Image:      req.Image,
		OwnerEmail: req.OwnerEmail,
	})
	if err != nil {
		slog.Error("failed to create skill", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateSkillResponse{
		Message: "Skill added successfully",
		SkillID: id.Hex(),
	})
}

// Update handles PATCH /skills/{id}. Skills re-validate required fields on
// update, per the resource policy table.
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid Skill ID")
		return
	}

	var req SkillRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	existing, err := h.skillStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrSkillNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Skill not found")
			return
		}
		slog.Error("failed to get skill for update", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if existing.OwnerEmail != req.OwnerEmail {
		shared.RespondWithError(w, r, http.StatusForbidden, "Unauthorized access")
		return
	}

	if revalidateOnUpdate["skills"] {
		if err := h.validator.Struct(req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "All fields are required")
			return
		}
	}

	matched, err := h.skillStore.Replace(r.Context(), id, &domain.Skill{
		Name:  req.Name,
		Level: req.Level,
		Image: req.Image,
	})
	if err != nil {
		slog.Error("failed to update skill", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if matched == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Skill not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Skill updated successfully"})
}

// Delete handles DELETE /skills/{id}.
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid Skill ID")
		return
	}

	deleted, err := h.skillStore.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete skill", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if deleted == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Skill not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Skill deleted successfully"})
}
