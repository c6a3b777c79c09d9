package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
)

// ErrorBody is the canonical error payload returned by the API.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response using the canonical error shape.
func writeError(w http.ResponseWriter, status int, code, message string, details any, logger zerolog.Logger) {
	logger.Debug().Str("code", code).Int("status", status).Str("message", message).Msg("handler error")
	writeJSON(w, status, map[string]any{"error": ErrorBody{Code: code, Message: message, Details: details}})
}

// writeServiceError maps domain and validation errors to HTTP responses.
// Validation failures return the complete collected field-error list.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var verrs *model.ValidationErrors
	if errors.As(err, &verrs) {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed,
			"request validation failed", verrs.Errors, logger)
		return
	}

	var derr *model.DomainError
	if errors.As(err, &derr) {
		writeError(w, statusForCode(derr.Code), derr.Code, derr.Message, nil, logger)
		return
	}

	logger.Error().Err(err).Msg("unexpected handler error")
	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", nil, logger)
}

func statusForCode(code string) int {
	switch code {
	case model.ErrCodeCartNotFound, model.ErrCodeOrderNotFound, model.ErrCodeItemNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidTransition:
		return http.StatusConflict
	case model.ErrCodeOrderRejected:
		return http.StatusServiceUnavailable
	case model.ErrCodeInvalidLineItem, model.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// decodeJSON decodes a request body, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
