package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ListResponse wraps a collection with its size
type ListResponse[T any] struct {
	Count int `json:"count"`
	Items []T `json:"items"`
}

func newListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Count: len(items), Items: items}
}

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON encodes payload into a pooled buffer before writing headers, so an
// encoding failure still yields a proper 500
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the status and message mapped from its domain error
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op, "error", err)
		if msg == ErrMsgGenericServerError {
			msg = op
		}
	} else {
		log.Warn(op, "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceError maps domain errors to an HTTP status and a user-facing message
func mapServiceError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, ErrMsgQuestNotFoundError
	case errors.Is(err, domain.ErrWorkstationNotFound):
		return http.StatusNotFound, ErrMsgStationNotFoundErr
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, ErrMsgProjectNotFoundErr
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFoundErr
	case errors.Is(err, domain.ErrInvalidSelectionKey):
		return http.StatusBadRequest, ErrMsgInvalidKeyError
	case errors.Is(err, domain.ErrInvalidLevel):
		return http.StatusBadRequest, ErrMsgInvalidLevelError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
