package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Func is an HTTP handler that reports failures by returning an error.
type Func func(w http.ResponseWriter, r *http.Request) error

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Msg       string `json:"msg"`
	ErrorCode int    `json:"errorCode"`
	Request   string `json:"request"`
	// Errors holds every field failure of a validation error.
	Errors map[string][]string `json:"errors,omitempty"`
}

// Option configures Wrap.
type Option func(*options)

type options struct {
	logger *slog.Logger
	dev    bool
}

// WithLogger sets the logger for failed requests.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDevelopment exposes unexpected error messages to clients.
func WithDevelopment(enabled bool) Option {
	return func(o *options) { o.dev = enabled }
}

// Wrap converts h into an http.HandlerFunc that renders returned errors.
func Wrap(h Func, opts ...Option) http.HandlerFunc {
	o := options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		status, body := classify(err, o.dev)
		body.Request = r.Method + " " + r.URL.Path

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		o.logger.LogAttrs(r.Context(), level, "request failed",
			logger.Request(r.Method, r.URL.Path),
			logger.Status(status),
			logger.ErrorCode(body.ErrorCode),
			logger.Error(err),
			logger.Component("handler"),
		)

		if err := JSON(w, status, body); err != nil {
			o.logger.ErrorContext(r.Context(), "failed to write error response", logger.Error(err))
		}
	}
}

func classify(err error, dev bool) (int, ErrorResponse) {
	if verr, ok := validator.AsValidationError(err); ok {
		return verr.StatusCode(), ErrorResponse{Msg: verr.Message, ErrorCode: verr.Code, Errors: verr.Errors}
	}

	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.Status, ErrorResponse{Msg: herr.Message, ErrorCode: herr.ErrorCode}
	}

	msg := genericMessage
	if dev {
		msg = err.Error()
	}
	return http.StatusInternalServerError, ErrorResponse{Msg: msg, ErrorCode: CodeUnknown}
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
