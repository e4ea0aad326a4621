// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a client supplied X-Request-ID header when it consists
// of at most 128 letters, digits, '-' or '_'; otherwise it generates a
// UUIDv4. The ID is stored in the request context (FromContext) and echoed
// in the response header. LoggerExtractor plugs the ID into the logger
// package so request-scoped records carry request_id:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
