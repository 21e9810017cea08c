package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

const (
	// DefaultMaxJSONSize is the maximum accepted JSON body (1MB).
	DefaultMaxJSONSize = 1 << 20
	// DefaultMaxMemory is the memory budget for multipart forms (10MB).
	DefaultMaxMemory = 10 << 20
)

// Record collects path, query and body parameters of r into a record.
// Requests without a body, or with an unknown content type and an empty
// body, yield the path and query parameters only.
func Record(r *http.Request) (validator.Record, error) {
	record := make(validator.Record)

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key == "*" || i >= len(rctx.URLParams.Values) {
				continue
			}
			record[key] = rctx.URLParams.Values[i]
		}
	}
	mergeValues(record, r.URL.Query())

	body, err := bodyParams(r)
	if err != nil {
		return nil, err
	}
	maps.Copy(record, body)
	return record, nil
}

func bodyParams(r *http.Request) (map[string]any, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch mediaType {
	case "application/json":
		return jsonParams(r)
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return formParams(r.PostForm), nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return formParams(r.MultipartForm.Value), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
}

func jsonParams(r *http.Request) (map[string]any, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if len(raw) > DefaultMaxJSONSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, DefaultMaxJSONSize)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: body must be a JSON object", ErrFailedToParseJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	return out, nil
}

func formParams(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	mergeValues(out, values)
	return out
}

func mergeValues(dst map[string]any, values url.Values) {
	for key, vs := range values {
		switch len(vs) {
		case 0:
		case 1:
			dst[key] = vs[0]
		default:
			dst[key] = vs
		}
	}
}
