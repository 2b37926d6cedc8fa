package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tenfold/internal/domain/services"
	"tenfold/internal/httputil"
)

// FlashcardHandler handles flashcard HTTP requests
type FlashcardHandler struct {
	flashcardService services.FlashcardService
	logger           *slog.Logger
}

// NewFlashcardHandler creates a new flashcard handler
func NewFlashcardHandler(flashcardService services.FlashcardService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{
		flashcardService: flashcardService,
		logger:           logger,
	}
}

// CreateFlashcard creates a single flashcard
// POST /api/flashcards
func (h *FlashcardHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)

	var req services.CreateFlashcardRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.flashcardService.CreateFlashcard(r.Context(), ident, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, card)
}

// CreateFlashcardBatch creates several flashcards atomically
// POST /api/flashcards/batch
func (h *FlashcardHandler) CreateFlashcardBatch(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)

	var req services.CreateFlashcardBatchRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cards, err := h.flashcardService.CreateFlashcards(r.Context(), ident, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, cards)
}

// ListFlashcards retrieves the caller's flashcards, optionally filtered by
// the generation that produced them
// GET /api/flashcards[?generation_id=N]
func (h *FlashcardHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)

	if raw := r.URL.Query().Get("generation_id"); raw != "" {
		generationID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || generationID <= 0 {
			httputil.RespondError(w, http.StatusBadRequest, "generation_id must be a positive integer")
			return
		}

		cards, err := h.flashcardService.ListFlashcardsByGeneration(r.Context(), ident, generationID)
		if err != nil {
			handleError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, cards)
		return
	}

	cards, err := h.flashcardService.ListFlashcards(r.Context(), ident)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, cards)
}

// GetFlashcard retrieves one flashcard
// GET /api/flashcards/{id}
func (h *FlashcardHandler) GetFlashcard(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)

	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	card, err := h.flashcardService.GetFlashcard(r.Context(), ident, id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, card)
}

// UpdateFlashcard edits a flashcard's content; updated_at is assigned by
// the store, never taken from the request
// PATCH /api/flashcards/{id}
func (h *FlashcardHandler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)

	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var req services.UpdateFlashcardRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.flashcardService.UpdateFlashcard(r.Context(), ident, id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, card)
}

// DeleteFlashcard removes a flashcard
// DELETE /api/flashcards/{id}
func (h *FlashcardHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)

	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.flashcardService.DeleteFlashcard(r.Context(), ident, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck is a simple health check endpoint
// GET /health
func (h *FlashcardHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now(),
	})
}
