package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflictRetryable marks a transaction that lost an isolation
	// conflict; the caller may retry the whole operation.
	ErrConflictRetryable = errors.New("conflict, retry")
	// ErrStorageUnavailable marks the underlying store as unreachable.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Classify maps a storage-layer error onto one of the sentinel kinds.
// Kind sentinels pass through untouched so repos can pre-classify.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrConflictRetryable) ||
		errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isSerializationFailure(err) {
		return ErrConflictRetryable
	}
	return ErrStorageUnavailable
}

// isSerializationFailure recognizes postgres serialization/deadlock errors
// (SQLSTATE 40001/40P01) and sqlite busy/locked errors by message, since
// the drivers expose different error types.
func isSerializationFailure(err error) bool {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "40001"),
		strings.Contains(msg, "40P01"),
		strings.Contains(msg, "deadlock detected"),
		strings.Contains(msg, "database is locked"),
		strings.Contains(msg, "database table is locked"):
		return true
	}
	return false
}
