package apperr

import (
	"errors"
	"fmt"
)

// Error is a coded application error. Callers match on Code, clients see
// Message.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

const (
	CodeInvalidArgument   = "INVALID_ARGUMENT"
	CodeNotFound          = "NOT_FOUND"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeEmptyCart         = "EMPTY_CART"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeConflict          = "CONFLICT"
)

var (
	ErrInvalidArgument   = New(CodeInvalidArgument, "invalid input provided")
	ErrNotFound          = New(CodeNotFound, "resource not found")
	ErrInsufficientStock = New(CodeInsufficientStock, "not enough stock available")
	ErrEmptyCart         = New(CodeEmptyCart, "your cart is empty")
	ErrUnauthorized      = New(CodeUnauthorized, "not authorized to perform this action")
	ErrConflict          = New(CodeConflict, "resource was modified by another request")
)

// CodeOf returns the code of err, or "" when err is not an *Error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code string) bool {
	return CodeOf(err) == code
}
