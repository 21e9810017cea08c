package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json with static attrs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithAttr(logger.Component("validator")))
		log.Info("checked", logger.Field("name"), logger.Rule("require"), logger.ErrorCode(10000))

		entry := decode(t, &buf)
		assert.Equal(t, "checked", entry["msg"])
		assert.Equal(t, "validator", entry["component"])
		assert.Equal(t, "name", entry["field"])
		assert.Equal(t, "require", entry["rule"])
		assert.InDelta(t, 10000, entry["error_code"], 0)
	})

	t.Run("level filter", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		assert.Zero(t, buf.Len())
		log.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))
		log.Info("hello", logger.Status(400))
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "status=400")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("environment defaults", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("dev", "rulekitd"))
		log.Debug("debugging")
		out := buf.String()
		assert.Contains(t, out, "msg=debugging")
		assert.Contains(t, out, "env=dev")
		assert.Contains(t, out, "service=rulekitd")

		buf.Reset()
		log = logger.New(logger.WithOutput(&buf), logger.WithEnvironment("production", ""))
		log.Debug("dropped")
		assert.Zero(t, buf.Len())
		log.Info("kept")
		assert.Equal(t, "production", decode(t, &buf)["env"])
	})
}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextValue("request_id", ctxKey{}),
		logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
			return slog.String("tenant", "acme"), true
		}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.With(logger.Policy("fail-fast")).InfoContext(ctx, "with context")
	entry := decode(t, &buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "acme", entry["tenant"])
	assert.Equal(t, "fail-fast", entry["policy"])

	buf.Reset()
	log.InfoContext(context.Background(), "without value")
	entry = decode(t, &buf)
	assert.NotContains(t, entry, "request_id")
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
	errs := logger.Errors(errors.New("a"), nil, errors.New("c"))
	assert.Equal(t, "errors", errs.Key)
	assert.Len(t, errs.Value.Group(), 2)

	assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))
	assert.Equal(t, "GET /v1/test", logger.Request("GET", "/v1/test").Value.String())

	g := logger.Group("check", logger.Field("age"), logger.Rule("between"))
	assert.Equal(t, slog.KindGroup, g.Value.Kind())
}

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := logger.ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)
	_, err = logger.ParseFormat("xml")
	assert.Error(t, err)

	l, err := logger.ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
	_, err = logger.ParseLevel("loud")
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() { log.Error("nothing", logger.Error(errors.New("x"))) })
}
