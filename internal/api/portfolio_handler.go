package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/portfolioz/server/internal/api/shared"
	"github.com/portfolioz/server/internal/service/publish"
	"github.com/portfolioz/server/internal/store"
)

// PortfolioHandler handles publishing and serving portfolios.
type PortfolioHandler struct {
	publishService *publish.Service
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(publishService *publish.Service) *PortfolioHandler {
	return &PortfolioHandler{publishService: publishService}
}

// PublishRequest is the payload for publishing a portfolio.
type PublishRequest struct {
	Email string `json:"email"`
	HTML  string `json:"portfolioData"`
}

// PublishResponse carries the stable live link for a published portfolio.
type PublishResponse struct {
	LiveLink string `json:"liveLink"`
}

// FetchResponse carries the stored sanitized HTML, never the live link.
type FetchResponse struct {
	HTML string `json:"portfolioData"`
}

// Publish handles POST /publishPortfolio. Publishing is idempotent by
// email: a second publish returns the original link and leaves the stored
// HTML untouched.
func (h *PortfolioHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req PublishRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Email == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email is required.")
		return
	}
	if strings.TrimSpace(req.HTML) == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Portfolio data is required.")
		return
	}

	liveLink, err := h.publishService.Publish(r.Context(), req.Email, req.HTML)
	if err != nil {
		slog.Error("failed to publish portfolio", "error", err, "email", req.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to publish portfolio.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PublishResponse{LiveLink: liveLink})
}

// Fetch handles GET /publishPortfolio/{email}.
func (h *PortfolioHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	html, err := h.publishService.Fetch(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrPortfolioNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Portfolio not found.")
			return
		}
		slog.Error("failed to fetch portfolio", "error", err, "email", email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to fetch portfolio.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FetchResponse{HTML: html})
}
