package handler

import (
	"log/slog"
	"net/http"

	"tenfold/internal/domain/services"
	"tenfold/internal/httputil"
)

// GenerationHandler handles generation HTTP requests
type GenerationHandler struct {
	generationService services.GenerationService
	logger            *slog.Logger
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(generationService services.GenerationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
		logger:            logger,
	}
}

// CreateGeneration records a completed extraction session
// POST /api/generations
func (h *GenerationHandler) CreateGeneration(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)

	var req services.CreateGenerationRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	gen, err := h.generationService.CreateGeneration(r.Context(), ident, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, gen)
}

// ListGenerations retrieves all of the caller's generations
// GET /api/generations
func (h *GenerationHandler) ListGenerations(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)

	generations, err := h.generationService.ListGenerations(r.Context(), ident)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, generations)
}

// GetGeneration retrieves one generation
// GET /api/generations/{id}
func (h *GenerationHandler) GetGeneration(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)

	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	gen, err := h.generationService.GetGeneration(r.Context(), ident, id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, gen)
}

// UpdateAcceptedCounts records review results on a generation
// PATCH /api/generations/{id}
func (h *GenerationHandler) UpdateAcceptedCounts(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)

	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var req services.UpdateAcceptedCountsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	gen, err := h.generationService.UpdateAcceptedCounts(r.Context(), ident, id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, gen)
}

// DeleteGeneration removes a generation; its flashcards survive unlinked
// DELETE /api/generations/{id}
func (h *GenerationHandler) DeleteGeneration(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)

	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.generationService.DeleteGeneration(r.Context(), ident, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
