package validator_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	record := validator.Record{
		"name":  "john",
		"zero":  "0",
		"num":   0,
		"empty": "",
		"off":   false,
		"a":     map[string]any{"b": 5, "c": validator.Record{"d": "deep"}},
		"flat":  map[string]string{"k": "v"},
		"query": url.Values{"q": {"go"}, "tags": {"a", "b"}},
		"plain": "not a map",
		".dot":  "leading dot",
	}

	tests := []struct {
		name    string
		path    string
		want    any
		present bool
	}{
		{"top level", "name", "john", true},
		{"string zero is present", "zero", "0", true},
		{"numeric zero is absent", "num", nil, false},
		{"empty string is absent", "empty", nil, false},
		{"false is absent", "off", nil, false},
		{"missing key", "missing", nil, false},
		{"nested", "a.b", 5, true},
		{"nested missing", "a.x", nil, false},
		{"two levels", "a.c.d", "deep", true},
		{"string map", "flat.k", "v", true},
		{"url values single", "query.q", "go", true},
		{"url values repeated", "query.tags", []string{"a", "b"}, true},
		{"through a string", "plain.x", nil, false},
		{"leading dot is a literal key", ".dot", "leading dot", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := validator.Resolve(record, tt.path)
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("nil record", func(t *testing.T) {
		t.Parallel()
		got, ok := validator.Resolve(nil, "a.b")
		assert.False(t, ok)
		assert.Nil(t, got)
	})
}
