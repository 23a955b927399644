package resp

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ncobase/sqlpage/ecode"
)

// Exception represents the response structure.
type Exception struct {
	Status  int    `json:"status,omitempty"`  // HTTP status
	Code    int    `json:"code,omitempty"`    // Business code
	Message string `json:"message,omitempty"` // Message
	Errors  any    `json:"errors,omitempty"`  // Validation errors
	Data    any    `json:"data,omitempty"`    // Response data
}

// Error implements the error interface.
func (e *Exception) Error() string {
	return e.Message
}

// newException creates a failure response for a business code.
func newException(code int, message string, errs ...any) *Exception {
	if message == "" {
		message = ecode.Text(code)
	}
	e := &Exception{
		Status:  ecode.ToHTTPStatus(code),
		Code:    code,
		Message: message,
	}
	if len(errs) > 0 {
		e.Errors = errs[0]
	}
	return e
}

// BadRequest returns a 400 exception.
func BadRequest(message string, errs ...any) *Exception {
	return newException(ecode.RequestErr, message, errs...)
}

// InvalidParams returns a 400 exception for invalid parameters.
func InvalidParams(message string, errs ...any) *Exception {
	return newException(ecode.ParamErr, message, errs...)
}

// NotFound returns a 404 exception.
func NotFound(message string) *Exception {
	return newException(ecode.NotFound, message)
}

// ServiceUnavailable returns a 503 exception.
func ServiceUnavailable(message string) *Exception {
	return newException(ecode.ServiceUnavailable, message)
}

// InternalServer returns a 500 exception.
func InternalServer(message string) *Exception {
	return newException(ecode.ServerErr, message)
}

// FromError builds an exception from a pagination error. The business code
// and HTTP status follow ecode.FromError; the cause is exposed as message.
func FromError(err error) *Exception {
	var e *Exception
	if errors.As(err, &e) {
		return e
	}
	code := ecode.FromError(err)
	message := ecode.Text(code)
	// Only request errors echo the cause back to the client.
	if code == ecode.InvalidToken || code == ecode.ParamErr {
		message = err.Error()
	}
	return newException(code, message)
}

// Success handles success responses.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode handles success responses with custom status code.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	var responseData any
	if len(data) > 0 {
		responseData = data[0]
	}

	if statusCode < 200 || statusCode >= 400 {
		Fail(w, &Exception{Status: statusCode, Errors: responseData})
		return
	}

	if responseData == nil {
		writeJSON(w, statusCode, map[string]any{"message": "ok"})
		return
	}
	if message, ok := responseData.(string); ok {
		writeJSON(w, statusCode, map[string]any{"message": message})
		return
	}
	writeJSON(w, statusCode, responseData)
}

// Fail handles failure responses.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = InternalServer("")
	}
	statusCode, result := buildFailureResponse(r)
	writeJSON(w, statusCode, result)
}

// buildFailureResponse builds the failure response.
func buildFailureResponse(r *Exception) (int, *Exception) {
	status := http.StatusBadRequest
	code := ecode.RequestErr
	message := ecode.Text(code)

	if r.Status != 0 {
		status = r.Status
	}
	if r.Code != 0 {
		code = r.Code
	}
	if r.Message != "" {
		message = r.Message
	}

	return status, &Exception{
		Code:    code,
		Message: message,
		Errors:  r.Errors,
	}
}

// writeJSON writes res as a JSON body with the given status code.
func writeJSON(w http.ResponseWriter, code int, res any) {
	body, err := json.Marshal(res)
	if err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(append(body, '\n'))
}
