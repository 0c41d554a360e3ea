package httpapi

import (
	"context"
	"net/http"
	"time"
)

type ReadyzCheck func(ctx context.Context) error

type healthResponse struct {
	Status string `json:"status"`
	Failed string `json:"failed,omitempty"`
}

func Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}

// Readyz runs every named check under one timeout and reports the first failure.
func Readyz(timeout time.Duration, checks map[string]ReadyzCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "not ready", Failed: name})
				return
			}
		}
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
