package binder_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/binder"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestRecord(t *testing.T) {
	t.Parallel()

	t.Run("query only", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/v1/test?name=john&tag=a&tag=b", nil)
		record, err := binder.Record(req)
		require.NoError(t, err)
		assert.Equal(t, validator.Record{"name": "john", "tag": []string{"a", "b"}}, record)
	})

	t.Run("json body wins over query", func(t *testing.T) {
		t.Parallel()
		body := `{"name":"jane","age":30,"user":{"email":"jane@example.com"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/test?name=john&page=2", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		record, err := binder.Record(req)
		require.NoError(t, err)
		assert.Equal(t, "jane", record["name"])
		assert.Equal(t, "2", record["page"])
		assert.InDelta(t, 30, record["age"], 0)

		email, ok := validator.Resolve(record, "user.email")
		require.True(t, ok)
		assert.Equal(t, "jane@example.com", email)
	})

	t.Run("empty json body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/?a=1", strings.NewReader("  "))
		req.Header.Set("Content-Type", "application/json")
		record, err := binder.Record(req)
		require.NoError(t, err)
		assert.Equal(t, validator.Record{"a": "1"}, record)
	})

	t.Run("urlencoded form", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=john&role=a&role=b"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		record, err := binder.Record(req)
		require.NoError(t, err)
		assert.Equal(t, "john", record["name"])
		assert.Equal(t, []string{"a", "b"}, record["role"])
	})

	t.Run("multipart form", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("name", "john"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		record, err := binder.Record(req)
		require.NoError(t, err)
		assert.Equal(t, "john", record["name"])
	})

	t.Run("path params", func(t *testing.T) {
		t.Parallel()
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "42")
		req := httptest.NewRequest(http.MethodGet, "/books/42?id=override", nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		record, err := binder.Record(req)
		require.NoError(t, err)
		assert.Equal(t, "override", record["id"], "query wins over path")
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name        string
			contentType string
			body        string
			want        error
		}{
			{"malformed json", "application/json", `{"name":`, binder.ErrFailedToParseJSON},
			{"json array", "application/json", `["a"]`, binder.ErrFailedToParseJSON},
			{"unsupported media", "text/plain", "hello", binder.ErrUnsupportedMediaType},
			{"too large", "application/json", `{"a":"` + strings.Repeat("x", binder.DefaultMaxJSONSize) + `"}`, binder.ErrBodyTooLarge},
		}
		for _, tt := range tests {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			_, err := binder.Record(req)
			assert.ErrorIs(t, err, tt.want, tt.name)
		}
	})
}
