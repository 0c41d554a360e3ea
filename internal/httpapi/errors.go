package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"flare/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, domain.ErrorResponse{Error: msg})
}

// statusFor maps a registration failure onto its HTTP status. Anything that
// is not a *domain.Error is treated as a store fault.
func statusFor(err error) (int, string) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		return http.StatusInternalServerError, err.Error()
	}
	switch derr.Kind {
	case domain.KindValidation:
		return http.StatusBadRequest, derr.Error()
	case domain.KindConflict:
		return http.StatusConflict, derr.Error()
	default:
		return http.StatusInternalServerError, derr.Error()
	}
}
