package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it to a client response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgItemNotFoundError  = "Item not found"
	ErrMsgCategoryError      = "Unknown category. Valid options: normal, aged_brie, backstage_pass, legendary, conjured"
	ErrMsgInvalidDaysError   = "Days must be between 1 and 365"
	ErrMsgReportNotFoundErr  = "No aging report for that day"
	ErrMsgRequestCancelled   = "Request cancelled"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unrecognised errors become a generic 500 so internals never leak to clients.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrReportNotFound):
		return http.StatusNotFound, ErrMsgReportNotFoundErr
	case errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusBadRequest, ErrMsgCategoryError
	case errors.Is(err, domain.ErrInvalidDays):
		return http.StatusBadRequest, ErrMsgInvalidDaysError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrMsgRequestCancelled
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
