// Package sample mounts the demo endpoint that validates request parameters
// with the rule engine.
package sample

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rulekit/pkg/binder"
	"github.com/dmitrymomot/rulekit/pkg/handler"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/requestid"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Rules is the rule set checked by /v1/test/test1.
func Rules() validator.FieldRuleSet {
	return validator.Set(validator.Rules("name",
		validator.NewRule("require"),
		validator.NewRule("length", 3, 4),
	))
}

// RouterOptions configures the sample router.
type RouterOptions struct {
	Logger *slog.Logger
	// Development exposes unexpected error messages in responses.
	Development bool
	// Validator holds engine defaults, usually from validator.Config.Options.
	Validator []validator.Option
}

// Router returns a router serving /v1/test/test1 for any method.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/", sample.Router(sample.RouterOptions{Logger: log}))
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	vopts := append([]validator.Option{validator.WithLogger(log)}, opts.Validator...)
	proto := validator.MustNew(Rules(), vopts...)

	h := &testHandler{rules: proto.Rules(), base: vopts, proto: proto}

	r := chi.NewRouter()
	r.Use(requestid.Middleware())
	r.HandleFunc("/v1/test/test1", handler.Wrap(h.test1,
		handler.WithLogger(log.With(logger.Component("sample"))),
		handler.WithDevelopment(opts.Development),
	))
	return r
}

type testHandler struct {
	rules validator.FieldRuleSet
	base  []validator.Option
	proto *validator.Validator
}

// validatorFor returns a Validator for one request. Accept-Language picks the
// message catalog.
func (h *testHandler) validatorFor(r *http.Request) (*validator.Validator, error) {
	lang := r.Header.Get("Accept-Language")
	if lang == "" {
		return h.proto.Clone(), nil
	}
	opts := append(append([]validator.Option(nil), h.base...), validator.WithLocale(lang))
	return validator.New(h.rules, opts...)
}

func (h *testHandler) test1(w http.ResponseWriter, r *http.Request) error {
	record, err := binder.Record(r)
	if err != nil {
		return handler.BadRequest(err.Error())
	}

	v, err := h.validatorFor(r)
	if err != nil {
		return err
	}
	out, err := v.Check(record)
	if err != nil {
		return err
	}
	if !out.OK {
		return handler.BadRequest(v.ErrorInfo())
	}

	name, _ := validator.Resolve(record, "name")
	return handler.JSON(w, http.StatusOK, map[string]any{"data": map[string]any{"name": name}})
}
