package ecode

import (
	"errors"
	"net/http"
	"sync"

	"github.com/ncobase/sqlpage/paging"
)

// Business codes
const (
	OK                 = 0
	RequestErr         = -400
	ParamErr           = -401
	InvalidToken       = -402
	NotFound           = -404
	ServerErr          = -500
	ServiceUnavailable = -503
	Deadline           = -504
)

var (
	mu       sync.RWMutex
	messages = map[int]string{
		OK:                 "ok",
		RequestErr:         "Invalid request",
		ParamErr:           "Invalid parameters",
		InvalidToken:       "Invalid page token",
		NotFound:           "Resource not found",
		ServerErr:          "Internal server error",
		ServiceUnavailable: "Service unavailable",
		Deadline:           "Deadline exceeded",
	}
	statuses = map[int]int{
		OK:                 http.StatusOK,
		RequestErr:         http.StatusBadRequest,
		ParamErr:           http.StatusBadRequest,
		InvalidToken:       http.StatusBadRequest,
		NotFound:           http.StatusNotFound,
		ServerErr:          http.StatusInternalServerError,
		ServiceUnavailable: http.StatusServiceUnavailable,
		Deadline:           http.StatusGatewayTimeout,
	}
)

// Register registers a custom code with its message and HTTP status.
func Register(code int, message string, status int) {
	mu.Lock()
	defer mu.Unlock()
	messages[code] = message
	statuses[code] = status
}

// Text returns the message for code
func Text(code int) string {
	mu.RLock()
	defer mu.RUnlock()
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

// ToHTTPStatus maps a business code to an HTTP status
func ToHTTPStatus(code int) int {
	mu.RLock()
	defer mu.RUnlock()
	if status, ok := statuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FromError maps a pagination error to its business code.
// A nil error maps to OK.
func FromError(err error) int {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, paging.ErrInvalidToken):
		return InvalidToken
	case errors.Is(err, paging.ErrInvalidArgument):
		return ParamErr
	case errors.Is(err, paging.ErrSource):
		return ServiceUnavailable
	default:
		return ServerErr
	}
}
