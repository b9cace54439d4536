// Package apperr carries the (status, message) pair every failing request
// resolves to. Services return these directly for domain failures; anything
// else is classified once at the handler boundary by From.
package apperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Internal(cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Something went wrong", cause: cause}
}

// From maps storage and auth error kinds onto a single (status, message)
// pair. Already-classified errors pass through unchanged; unknown errors
// become a generic 500 with the cause retained for server-side logging.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("Resource not found")
	case errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err):
		return BadRequest("Resource already exists")
	case errors.Is(err, jwt.ErrTokenExpired):
		return Unauthorized("Token has expired")
	case errors.Is(err, jwt.ErrTokenMalformed) || errors.Is(err, jwt.ErrSignatureInvalid):
		return Unauthorized("Invalid token")
	}

	return Internal(err)
}

// isUniqueViolation matches the driver-level duplicate-key errors gorm does
// not always translate (postgres SQLSTATE 23505, sqlite "UNIQUE constraint").
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "UNIQUE constraint")
}
