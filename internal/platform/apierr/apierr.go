package apierr

import (
	"fmt"
	"net/http"

	pkgerrors "github.com/giftlane/souvenirs-backend/internal/pkg/errors"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// FromKind maps a classified storage error onto an HTTP error envelope.
func FromKind(err error) *Error {
	switch pkgerrors.Classify(err) {
	case nil:
		return nil
	case pkgerrors.ErrNotFound:
		return New(http.StatusNotFound, "not_found", err)
	case pkgerrors.ErrInvalidArgument:
		return New(http.StatusBadRequest, "invalid_argument", err)
	case pkgerrors.ErrConflictRetryable:
		return New(http.StatusConflict, "conflict_retryable", err)
	default:
		return New(http.StatusServiceUnavailable, "storage_unavailable", err)
	}
}
