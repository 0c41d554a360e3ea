package store

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("store: phone not found")
	ErrDuplicate = errors.New("store: phone already exists")
)

// PhoneRegistration is one row of phone_numbers. ID and CreatedAt are
// assigned by the database.
type PhoneRegistration struct {
	ID        int64     `json:"id"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
