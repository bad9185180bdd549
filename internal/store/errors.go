package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	ErrNotFound         = errors.New("record not found")
	ErrConnectionFailed = errors.New("database connection failed")
	ErrTimeout          = errors.New("operation timeout")
	ErrCanceled         = errors.New("operation canceled")
)

// Error provides detailed error information for a failed store operation
type Error struct {
	Op        string // Operation that failed
	Table     string // Table involved
	Err       error  // Underlying error
	Retryable bool   // Whether the operation can be retried
}

func (e *Error) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("store: %s", e.Op))

	if e.Table != "" {
		parts = append(parts, fmt.Sprintf("table=%s", e.Table))
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for Error type
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return errors.Is(e.Err, target)
	}

	if t.Op != "" && e.Op == t.Op {
		return true
	}

	return errors.Is(e.Err, t.Err)
}

// wrapError converts driver-level errors to store errors
func wrapError(err error, op, table string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &Error{
			Op:    op,
			Table: table,
			Err:   ErrNotFound,
		}
	}

	errStr := err.Error()

	if strings.Contains(errStr, "context deadline exceeded") {
		return &Error{
			Op:        op,
			Table:     table,
			Err:       ErrTimeout,
			Retryable: true,
		}
	}

	if strings.Contains(errStr, "context canceled") {
		return &Error{
			Op:    op,
			Table: table,
			Err:   ErrCanceled,
		}
	}

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "broken pipe") {
		return &Error{
			Op:        op,
			Table:     table,
			Err:       ErrConnectionFailed,
			Retryable: true,
		}
	}

	return &Error{
		Op:    op,
		Table: table,
		Err:   err,
	}
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Retryable
	}
	return false
}
