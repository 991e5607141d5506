package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the request conflicts with the current ledger state,
// e.g. reversing an entry twice.
var ErrConflict = errors.New("conflict with current state")

// ErrInternal indicates an unexpected storage or programming failure.
var ErrInternal = errors.New("internal error")

// Ledger rule violations.
var (
	ErrInsufficientLines  = errors.New("journal entry must have at least two lines")
	ErrUnknownAccount     = errors.New("unknown or disabled account")
	ErrInvalidLine        = errors.New("journal line must carry exactly one non-negative nonzero side")
	ErrUnbalancedEntry    = errors.New("journal entry debits do not equal credits")
	ErrAlreadyInitialized = errors.New("chart of accounts already initialized")
	ErrConsistency        = errors.New("ledger consistency violation")
)

// AppError carries a status code hint and message alongside a wrapped cause.
// Repositories use it for storage failures so the cause survives errors.Is.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Kind names returned to API clients.
const (
	KindValidation         = "ValidationError"
	KindInsufficientLines  = "InsufficientLinesError"
	KindInvalidLine        = "InvalidLineError"
	KindUnbalancedEntry    = "UnbalancedEntryError"
	KindUnknownAccount     = "UnknownAccountError"
	KindAlreadyInitialized = "AlreadyInitializedError"
	KindConsistency        = "ConsistencyError"
	KindNotFound           = "NotFound"
	KindConflict           = "Conflict"
	KindInternal           = "Internal"
)

// KindOf maps an error chain to its machine-readable kind.
// Order matters: more specific sentinels are checked before ErrValidation.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInsufficientLines):
		return KindInsufficientLines
	case errors.Is(err, ErrUnknownAccount):
		return KindUnknownAccount
	case errors.Is(err, ErrInvalidLine):
		return KindInvalidLine
	case errors.Is(err, ErrUnbalancedEntry):
		return KindUnbalancedEntry
	case errors.Is(err, ErrAlreadyInitialized):
		return KindAlreadyInitialized
	case errors.Is(err, ErrConsistency):
		return KindConsistency
	case errors.Is(err, ErrValidation), errors.Is(err, ErrDuplicate):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}

// StatusOf maps an error chain to an HTTP status code.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInsufficientLines, KindInvalidLine, KindUnbalancedEntry:
		return http.StatusBadRequest
	case KindUnknownAccount:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyInitialized, KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
