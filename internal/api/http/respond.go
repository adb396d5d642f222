package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain error kinds onto HTTP statuses. Unknown errors are
// reported as 500 without leaking their message.
func writeError(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)
	status := http.StatusInternalServerError

	switch kind {
	case domain.KindInvalidArgument:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindFailedPrecondition:
		status = http.StatusUnprocessableEntity
	case domain.KindUnauthorized:
		status = http.StatusUnauthorized
	}

	msg := "internal server error"
	if status == http.StatusInternalServerError {
		logger.Error("Internal error", "error", err)
	} else {
		var de *domain.Error
		if errors.As(err, &de) {
			msg = de.Message
		} else {
			msg = err.Error()
		}
	}
	writeJSON(w, status, errorResponse{Error: msg, Kind: string(kind)})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewError(domain.KindInvalidArgument, "invalid JSON request body")
	}
	return nil
}
