package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/inputguard/pkg/clientip"
	"github.com/dmitrymomot/inputguard/pkg/httpserver"
	"github.com/dmitrymomot/inputguard/pkg/ratelimiter"
	"github.com/dmitrymomot/inputguard/pkg/requestid"
)

// Handler returns the HTTP routes:
//
//	GET  /health
//	GET  /v1/fields
//	GET  /v1/fields/{name}
//	POST /v1/fields/{name}/evaluate
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(a.resolver.Middleware)
	r.Use(a.logRequests)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeMethod, "method not allowed")
	})

	r.Get("/health", httpserver.HealthCheckHandler(a.log, a.ready))

	r.Route("/v1/fields", func(r chi.Router) {
		r.Get("/", a.listFields)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", a.getField)
			r.With(a.rateLimit()...).Post("/evaluate", a.evaluate)
		})
	})

	return r
}

func (a *API) ready(context.Context) error {
	if len(a.fields) == 0 {
		return ErrNoFields
	}
	return nil
}

func (a *API) rateLimit() []func(http.Handler) http.Handler {
	if a.limiter == nil {
		return nil
	}
	return []func(http.Handler) http.Handler{
		ratelimiter.Middleware(a.limiter,
			func(r *http.Request) string { return clientip.FromContext(r.Context()) },
			ratelimiter.WithMiddlewareLogger(a.log),
			ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, _ *http.Request, res *ratelimiter.Result) {
				writeError(w, http.StatusTooManyRequests, CodeRateLimited,
					fmt.Sprintf("retry in %s", res.RetryAfter().Round(time.Second)))
			}),
			ratelimiter.WithErrorHandler(func(w http.ResponseWriter, _ *http.Request, _ error) {
				writeError(w, http.StatusInternalServerError, CodeInternalError, "rate limiter unavailable")
			}),
		),
	}
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		a.log.InfoContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.String("client_ip", clientip.FromContext(r.Context())),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// Serve runs handler with the listener settings of cfg until ctx is done.
func Serve(ctx context.Context, cfg httpserver.Config, handler http.Handler, log *slog.Logger) error {
	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, handler); err != nil {
		return fmt.Errorf("serve %s: %w", cfg.Addr, err)
	}
	return nil
}
