package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"flare/internal/domain"
	"flare/internal/store"
	"flare/internal/util"
)

const (
	RoutePhone       = "/phone"
	RouteLegacyPhone = "/api/phone"
)

type Registrar interface {
	Register(ctx context.Context, raw string) (store.PhoneRegistration, error)
}

type API struct {
	Svc Registrar
}

var validate = validator.New()

func (a *API) Register(m *mux.Router) {
	m.HandleFunc(RoutePhone, a.handleRegisterPhone).Methods(http.MethodPost)
	// path used by the original web client
	m.HandleFunc(RouteLegacyPhone, a.handleRegisterPhone).Methods(http.MethodPost)
}

func (a *API) handleRegisterPhone(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterPhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.MsgInvalidJSON)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, domain.MsgPhoneRequired)
		return
	}

	rec, err := a.Svc.Register(r.Context(), req.PhoneNumber)
	if err != nil {
		status, msg := statusFor(err)
		if status >= http.StatusInternalServerError {
			slog.Error("register phone failed",
				"err", err,
				"request_id", RequestIDFrom(r.Context()),
				"phone", util.MaskPhone(util.DigitsOnly(req.PhoneNumber)),
			)
		}
		writeError(w, status, msg)
		return
	}

	slog.Info("phone registered",
		"registration_id", rec.ID,
		"request_id", RequestIDFrom(r.Context()),
		"phone", util.MaskPhone(rec.Phone),
	)
	writeJSON(w, http.StatusCreated, domain.RegisterPhoneResponse{
		Success: true,
		Data:    []store.PhoneRegistration{rec},
	})
}
