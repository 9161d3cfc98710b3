package errors

import (
	stderrors "errors"

	"github.com/mezonai/certledger/jsonx"
)

// LedgerErrorCode represents standardized error codes for chain operations
type LedgerErrorCode string

const (
	ErrCodeUnauthorized LedgerErrorCode = "unauthorized"
)

const (
	ErrMsgUnauthorizedAdd  = "Only registered universities can add certificates"
	ErrMsgUnauthorizedMine = "Unauthorized university ID, cannot mine certificates"
)

// LedgerError represents a standardized chain operation error
type LedgerError struct {
	Code    LedgerErrorCode `json:"code"`
	Message string          `json:"message"`
}

// Error implements the error interface
func (e *LedgerError) Error() string {
	err, _ := jsonx.Marshal(LedgerError{
		Code:    e.Code,
		Message: e.Message,
	})
	return string(err)
}

// Is matches any LedgerError carrying the same code, so callers can
// test with errors.Is(err, ErrUnauthorized).
func (e *LedgerError) Is(target error) bool {
	t, ok := target.(*LedgerError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var ErrUnauthorized = &LedgerError{Code: ErrCodeUnauthorized}

// NewError creates a new LedgerError and returns it as error interface
func NewError(code LedgerErrorCode, message string) error {
	return &LedgerError{
		Code:    code,
		Message: message,
	}
}

// CodeOf returns the code carried by err, or "" when err is not a LedgerError.
func CodeOf(err error) LedgerErrorCode {
	var le *LedgerError
	if stderrors.As(err, &le) {
		return le.Code
	}
	return ""
}
