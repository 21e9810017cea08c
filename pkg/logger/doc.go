// Package logger builds *slog.Logger values for rulekit services and offers
// attribute helpers that keep key names consistent across packages.
//
// New applies functional options on top of production defaults (JSON, info
// level, stdout). Context extractors registered with WithContextValue or
// WithContextExtractors pull request-scoped values such as a request id into
// every record logged with a context.
//
//	log := logger.New(
//		logger.WithEnvironment("development", "rulekitd"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.DebugContext(ctx, "validation rule failed",
//		logger.Field("age"),
//		logger.Rule("between"),
//	)
//
// Attribute helpers return an empty slog.Attr for nil inputs, so they can be
// passed unconditionally.
package logger
