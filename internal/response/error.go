package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/GregMSThompson/report-cms/internal/errs"
	"github.com/GregMSThompson/report-cms/pkg/logger"
)

const NotSavedMessage = "Changes were applied but could not be saved. They will be lost on restart."

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	var (
		notFound     *errs.NotFoundError
		validation   *errs.ValidationError
		unauthorized *errs.UnauthorizedError
		storeErr     *errs.StoreError
	)
	switch {
	case errors.As(err, &notFound):
		log.Warn("resource not found", "error", notFound.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", notFound.Message)

	case errors.As(err, &validation):
		log.Warn("validation failed", "error", validation.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", validation.Message)

	case errors.As(err, &unauthorized):
		log.Warn("unauthorized", "error", unauthorized.Message)
		h.WriteError(w, r, http.StatusUnauthorized, "unauthorized", unauthorized.Message)

	case errors.As(err, &storeErr) && storeErr.IsWrite():
		log.Error("document store write failed",
			"operation", storeErr.Operation,
			"error", storeErr.Message)
		h.WriteError(w, r, http.StatusServiceUnavailable, "not_saved", NotSavedMessage)

	case errors.As(err, &storeErr):
		log.Error("document store error",
			"operation", storeErr.Operation,
			"error", storeErr.Message)
		h.WriteError(w, r, http.StatusServiceUnavailable, "service_unavailable",
			"Service temporarily unavailable")

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
