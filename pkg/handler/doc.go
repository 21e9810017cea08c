// Package handler adapts error-returning handlers to net/http and renders
// failures as JSON:
//
//	{"msg": "name is required", "errorCode": 10000, "request": "GET /v1/test/test1"}
//
// A *validator.ValidationError becomes a 400 response carrying its message
// and code. An *HTTPError uses its own status and code. Anything else is a
// 500 with error code 999 and a generic message, or the real message when
// development mode is on.
package handler
