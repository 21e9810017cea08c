package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under the key "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Field records a record field name or dotted path.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records a validation rule kind.
func Rule(kind string) slog.Attr {
	return slog.String("rule", kind)
}

// Policy records a validation failure policy.
func Policy(name string) slog.Attr {
	return slog.String("policy", name)
}

// ErrorCode records an application error code.
func ErrorCode(code int) slog.Attr {
	return slog.Int("error_code", code)
}

// RequestID records the request identifier. A nil id yields an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Request records the HTTP method and path as "METHOD /path".
func Request(method, path string) slog.Attr {
	return slog.String("request", method+" "+path)
}

// Status records an HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Component records the component name.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
