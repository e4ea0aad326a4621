// Package httpserver runs an http.Handler with configurable timeouts,
// graceful shutdown and structured logging.
//
// Run binds the listener first, so an address of ":0" works and Addr
// reports the bound port once Ready is closed. Run blocks until its
// context is cancelled or the process receives SIGINT or SIGTERM, then
// shuts the server down within the shutdown timeout.
//
// Construction uses functional options (WithAddr, WithReadTimeout,
// WithLogger, WithStartHook, ...) or NewFromConfig with a Config loaded
// from the environment:
//
//	var cfg httpserver.Config
//	if err := config.Load(&cfg); err != nil { // INPUTGUARD_HTTP_ADDR, ...
//		return err
//	}
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	return srv.Run(ctx, router)
//
// HealthCheckHandler serves liveness and readiness probes.
//
// # Errors
//
// Listen and serve failures are wrapped with ErrStart, shutdown failures
// with ErrShutdown. Use errors.Is to distinguish them.
package httpserver
