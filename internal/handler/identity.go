package handler

import (
	"log/slog"
	"net/http"

	"tenfold/internal/domain"
	"tenfold/internal/domain/services"
	"tenfold/internal/httputil"
)

// IdentityHandler handles account-data HTTP requests
type IdentityHandler struct {
	identityService services.IdentityService
	logger          *slog.Logger
}

// NewIdentityHandler creates a new identity handler
func NewIdentityHandler(identityService services.IdentityService, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		identityService: identityService,
		logger:          logger,
	}
}

// DeleteMe removes the caller's user mirror row; storage cascades deletion
// of every generation, flashcard and error log they own
// DELETE /api/users/me
func (h *IdentityHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)
	if !ident.Authenticated() {
		handleError(w, &domain.UnauthorizedError{Message: "authentication required"})
		return
	}

	if err := h.identityService.DeleteIdentity(r.Context(), ident); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
