package handler

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// CodeUnknown is the error code of unexpected failures.
const CodeUnknown = 999

// genericMessage is shown for unexpected failures outside development mode.
const genericMessage = "we made a mistake O(∩_∩)O~~"

// HTTPError is an application error with a status code and an application
// error code.
type HTTPError struct {
	Status    int
	ErrorCode int
	Message   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// BadRequest reports malformed parameters.
func BadRequest(msg string) *HTTPError {
	if msg == "" {
		msg = "invalid parameters"
	}
	return &HTTPError{Status: http.StatusBadRequest, ErrorCode: validator.DefaultErrorCode, Message: msg}
}

// NotFound reports a missing resource.
func NotFound(msg string) *HTTPError {
	if msg == "" {
		msg = "resource not found"
	}
	return &HTTPError{Status: http.StatusNotFound, ErrorCode: validator.DefaultErrorCode, Message: msg}
}

// Forbidden reports a refused action.
func Forbidden(msg string) *HTTPError {
	if msg == "" {
		msg = "forbidden"
	}
	return &HTTPError{Status: http.StatusForbidden, ErrorCode: 10006, Message: msg}
}
