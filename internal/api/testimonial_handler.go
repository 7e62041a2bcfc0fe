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

// TestimonialHandler handles CRUD requests for testimonials.
type TestimonialHandler struct {
	testimonialStore store.TestimonialStore
	validator        *validator.Validate
}

// NewTestimonialHandler creates a new TestimonialHandler.
func NewTestimonialHandler(testimonialStore store.TestimonialStore) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialStore: testimonialStore,
		validator:        validator.New(),
	}
}

// TestimonialRequest is the payload for testimonial create and update.
// Unlike projects, creation requires the owner email too.
type TestimonialRequest struct {
	PersonName  string `json:"TestimonialpersonName" validate:"required"`
	PersonRole  string `json:"PersonRole"            validate:"required"`
	PersonImage string `json:"PersonImage"           validate:"required"`
	Body        string `json:"Testimonial"           validate:"required"`
	OwnerEmail  string `json:"userEmail"             validate:"required"`
}

// CreateTestimonialResponse reports a created testimonial.
type CreateTestimonialResponse struct {
	Message       string `json:"message"`
	TestimonialID string `json:"testimonialId"`
}

// List handles GET /testimonials?userEmail=.
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerEmail := r.URL.Query().Get("userEmail")
	if ownerEmail == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "User email is required")
		return
	}

	testimonials, err := h.testimonialStore.ListByOwner(r.Context(), ownerEmail)
	if err != nil {
		slog.Error("failed to list testimonials", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Error fetching testimonials")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, testimonials)
}

// Get handles GET /testimonials/{id}.
func (h *TestimonialHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid Testimonial ID")
		return
	}

	testimonial, err := h.testimonialStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrTestimonialNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Testimonial not found")
			return
		}
		slog.Error("failed to get testimonial", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, testimonial)
}

// Create handles POST /testimonials.
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TestimonialRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "All fields are required")
		return
	}

	id, err := h.testimonialStore.Create(r.Context(), &domain.Testimonial{
		PersonName:  req.PersonName,
		PersonRole:  req.PersonRole,
		PersonImage: req.PersonImage,
		Body:        req.Body,
		OwnerEmail:  req.OwnerEmail,
	})
	if err != nil {
		slog.Error("failed to create testimonial", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error. Please try again later.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateTestimonialResponse{
		Message:       "Testimonial added successfully",
		TestimonialID: id.Hex(),
	})
}

// Update handles PATCH /testimonials/{id}. Per the resource policy table,
// testimonials do not re-validate field presence on update.
func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid Testimonial ID")
		return
	}

	var req TestimonialRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	existing, err := h.testimonialStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrTestimonialNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Testimonial not found")
			return
		}
		slog.Error("failed to get testimonial for update", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if existing.OwnerEmail != req.OwnerEmail {
		shared.RespondWithError(w, r, http.StatusForbidden, "Unauthorized access")
		return
	}

	if revalidateOnUpdate["testimonials"] {
		if err := h.validator.Struct(req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "All fields are required")
			return
		}
	}

	matched, err := h.testimonialStore.Replace(r.Context(), id, &domain.Testimonial{
		PersonName:  req.PersonName,
		PersonRole:  req.PersonRole,
		PersonImage: req.PersonImage,
		Body:        req.Body,
	})
	if err != nil {
		slog.Error("failed to update testimonial", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if matched == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Testimonial not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Testimonial updated successfully"})
}

// Delete handles DELETE /testimonials/{id}.
func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid Testimonial ID")
		return
	}

	deleted, err := h.testimonialStore.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete testimonial", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if deleted == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Testimonial not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Testimonial deleted successfully"})
}
