package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// respondError maps domain errors to HTTP statuses. Anything unrecognised is
// logged and reported as 500 without details.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		fields := make([]fieldError, len(ve.Errors))
		for i, fe := range ve.Errors {
			fields[i] = fieldError{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{
			Code:    "VALIDATION",
			Message: "invalid input",
			Fields:  fields,
		}})
	case errors.Is(err, domain.ErrInvalidPrimary):
		writeError(w, http.StatusUnprocessableEntity, "INVALID_PRIMARY", domain.ErrInvalidPrimary.Error())
	case errors.Is(err, domain.ErrSelfMerge):
		writeError(w, http.StatusUnprocessableEntity, "SELF_MERGE", domain.ErrSelfMerge.Error())
	case errors.Is(err, domain.ErrAlreadyMerged):
		writeError(w, http.StatusConflict, "ALREADY_MERGED", domain.ErrAlreadyMerged.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "ALREADY_EXISTS", "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "CONFLICT", "conflict")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "forbidden")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
