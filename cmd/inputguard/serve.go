package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputguard/pkg/clientip"
	"github.com/dmitrymomot/inputguard/pkg/config"
	"github.com/dmitrymomot/inputguard/pkg/httpapi"
	"github.com/dmitrymomot/inputguard/pkg/httpserver"
	"github.com/dmitrymomot/inputguard/pkg/ratelimiter"
)

func newServeCmd(c *cli) *cobra.Command {
	var (
		addr         string
		trustHeaders []string
		noRateLimit  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the profiles file over HTTP",
		Long: `Serve exposes every field of the profiles file over HTTP.

Listener settings come from INPUTGUARD_HTTP_* variables, rate limiting
from INPUTGUARD_RATE_LIMIT_* (capacity 0 disables it).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var srvCfg httpserver.Config
			if err := config.Load(&srvCfg); err != nil {
				return err
			}
			if addr != "" {
				srvCfg.Addr = addr
			}

			profiles, err := c.loadProfiles()
			if err != nil {
				return err
			}

			opts := []httpapi.Option{
				httpapi.WithLogger(c.log),
				httpapi.WithClientIP(clientip.NewResolver(trustHeaders...)),
			}
			if !noRateLimit {
				limiter, closeStore, err := newLimiter()
				if err != nil {
					return err
				}
				if limiter != nil {
					defer closeStore()
					opts = append(opts, httpapi.WithRateLimit(limiter))
				}
			}

			api, err := httpapi.New(profiles, opts...)
			if err != nil {
				return err
			}
			c.log.Info("serving fields", slog.Any("fields", api.Names()), slog.String("profiles", c.app.Profiles))
			return httpapi.Serve(cmd.Context(), srvCfg, api.Handler(), c.log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", "", "listen address (overrides INPUTGUARD_HTTP_ADDR)")
	flags.StringSliceVar(&trustHeaders, "trust-header", nil, "proxy header carrying the client address, highest priority first")
	flags.BoolVar(&noRateLimit, "no-rate-limit", false, "disable per-client rate limiting")
	return cmd
}

// newLimiter returns nil when the environment disables rate limiting.
func newLimiter() (*ratelimiter.Bucket, func(), error) {
	var cfg ratelimiter.Config
	if err := config.Load(&cfg); err != nil {
		return nil, nil, err
	}
	if cfg.Disabled() {
		return nil, func() {}, nil
	}

	store := ratelimiter.NewMemoryStore()
	limiter, err := ratelimiter.NewBucket(store, cfg)
	if err != nil {
		store.Close()
		return nil, nil, errors.Join(config.ErrParsingConfig, err)
	}
	return limiter, store.Close, nil
}
