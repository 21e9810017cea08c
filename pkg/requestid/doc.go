// Package requestid tags every request with a correlation id.
//
// The middleware reuses a well-formed X-Request-ID header or generates a new
// UUID, stores the id in the request context and echoes it in the response.
// Extractor plugs the id into loggers built with pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.Extractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware())
package requestid
