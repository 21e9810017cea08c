package sample_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/modules/sample"
	"github.com/dmitrymomot/rulekit/pkg/handler"
	"github.com/dmitrymomot/rulekit/pkg/requestid"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var body handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouter(t *testing.T) {
	t.Parallel()

	router := sample.Router(sample.RouterOptions{})

	t.Run("valid query", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/test/test1?name=john", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"name":"john"}}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(requestid.Header))
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/test/test1", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeError(t, rec)
		assert.Equal(t, "name is required", body.Msg)
		assert.Equal(t, validator.DefaultErrorCode, body.ErrorCode)
		assert.Equal(t, "GET /v1/test/test1", body.Request)
	})

	t.Run("too long from json body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/v1/test/test1", strings.NewReader(`{"name":"johnny"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "name length does not match 3,4", decodeError(t, rec).Msg)
	})

	t.Run("chinese messages", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/v1/test/test1", nil)
		req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, "name不能为空", decodeError(t, rec).Msg)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/v1/test/test1", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Msg, "failed to parse JSON")
	})
}

func TestRouter_AggregatePolicy(t *testing.T) {
	t.Parallel()

	router := sample.Router(sample.RouterOptions{
		Validator: []validator.Option{validator.WithPolicy(validator.Aggregate)},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/test/test1?name=ab", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "name length does not match 3,4", decodeError(t, rec).Msg)
}
