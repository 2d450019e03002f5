package errors

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	InvalidInput     ErrorCode = "invalid_input"
	InvalidAmount    ErrorCode = "invalid_amount"
	InvalidBalance   ErrorCode = "invalid_balance"
	DuplicateAccount ErrorCode = "duplicate_account"
	AccountNotFound  ErrorCode = "account_not_found"
	TransferNotFound ErrorCode = "transfer_not_found"
	InternalError    ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// HTTPStatus maps the error code to the status returned at the HTTP boundary.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case InvalidInput:
		return http.StatusBadRequest
	case InvalidAmount, InvalidBalance:
		return http.StatusUnprocessableEntity
	case DuplicateAccount:
		return http.StatusConflict
	case AccountNotFound, TransferNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Predefined errors for common cases
var (
	ErrAccountNotFound  = NewAppError(AccountNotFound, "account not found")
	ErrTransferNotFound = NewAppError(TransferNotFound, "transfer not found")
	ErrDuplicateAccount = NewAppError(DuplicateAccount, "account already exists")
	ErrInvalidBalance   = NewAppError(InvalidBalance, "balance is not allowed")
	ErrInvalidAmount    = NewAppError(InvalidAmount, "transfer amount must be positive")
)
