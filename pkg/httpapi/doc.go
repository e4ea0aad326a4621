// Package httpapi exposes configured validation fields over HTTP.
//
// New builds one engine per profile loaded by the config package. Handler
// returns a chi router with these routes:
//
//	GET  /health                      readiness probe
//	GET  /v1/fields                   {"data":{"fields":[...]}}
//	GET  /v1/fields/{name}            field configuration
//	POST /v1/fields/{name}/evaluate   {"text":"3.14159"}
//
// An evaluate request runs one Process cycle and answers
//
//	{"data":{"field":"amount","valid":true,"text":"3.14","reformatted":true}}
//
// Failures use the same envelope with an error object:
// 404 unknown_field, 400 bad_request, 429 rate_limited and
// 500 evaluation_failed when an external predicate or the number parser
// fails.
//
// Every request gets an X-Request-ID and a resolved client address.
// WithRateLimit limits evaluate requests per client address.
//
// Serve runs the handler on the httpserver package with graceful shutdown.
package httpapi
