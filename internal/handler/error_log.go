package handler

import (
	"log/slog"
	"net/http"

	"tenfold/internal/domain/services"
	"tenfold/internal/httputil"
)

// ErrorLogHandler handles generation error log HTTP requests
type ErrorLogHandler struct {
	errorLogService services.ErrorLogService
	logger          *slog.Logger
}

// NewErrorLogHandler creates a new error log handler
func NewErrorLogHandler(errorLogService services.ErrorLogService, logger *slog.Logger) *ErrorLogHandler {
	return &ErrorLogHandler{
		errorLogService: errorLogService,
		logger:          logger,
	}
}

// LogGenerationError records a failed generation attempt
// POST /api/generation-errors
func (h *ErrorLogHandler) LogGenerationError(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)

	var req services.LogGenerationErrorRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.errorLogService.LogGenerationError(r.Context(), ident, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, entry)
}

// ListGenerationErrorLogs retrieves the caller's error logs
// GET /api/generation-errors
func (h *ErrorLogHandler) ListGenerationErrorLogs(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)

	logs, err := h.errorLogService.ListGenerationErrorLogs(r.Context(), ident)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, logs)
}

// DeleteGenerationErrorLog removes one of the caller's error logs
// DELETE /api/generation-errors/{id}
func (h *ErrorLogHandler) DeleteGenerationErrorLog(w http.ResponseWriter, r *http.Request) {
	ident := httputil.IdentityFrom(r)

	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.errorLogService.DeleteGenerationErrorLog(r.Context(), ident, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
