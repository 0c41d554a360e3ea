package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadyzOK(t *testing.T) {
	h := Readyz(time.Second, map[string]ReadyzCheck{
		"db": func(ctx context.Context) error { return nil },
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestReadyzReportsFailedCheck(t *testing.T) {
	h := Readyz(time.Second, map[string]ReadyzCheck{
		"db": func(ctx context.Context) error { return errors.New("down") },
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var out healthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "db", out.Failed)
}

func TestReadyzAppliesTimeout(t *testing.T) {
	h := Readyz(10*time.Millisecond, map[string]ReadyzCheck{
		"slow": func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
