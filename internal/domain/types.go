package domain

import "flare/internal/store"

type RegisterPhoneRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

type RegisterPhoneResponse struct {
	Success bool                      `json:"success"`
	Data    []store.PhoneRegistration `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
