package domain

import "errors"

const (
	MsgPhoneRequired   = "Phone number is required"
	MsgPhoneLength     = "Phone number must be 10 digits"
	MsgPhoneRegistered = "This phone number is already registered"
	MsgInvalidJSON     = "Invalid JSON payload"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindConflict
	KindStore
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Error is the failure side of a registration. Message is what the caller
// sees; Err, when set, is the underlying cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func ValidationError(msg string, cause error) *Error {
	return &Error{Kind: KindValidation, Message: msg, Err: cause}
}

func ConflictError(cause error) *Error {
	return &Error{Kind: KindConflict, Message: MsgPhoneRegistered, Err: cause}
}

func StoreError(cause error) *Error {
	return &Error{Kind: KindStore, Message: cause.Error(), Err: cause}
}

// KindOf reports the kind of err, or 0 when err is not a *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
