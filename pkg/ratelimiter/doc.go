// Package ratelimiter implements token bucket rate limiting with an
// in-memory store and HTTP middleware.
//
// A bucket holds at most Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that does not fit
// is denied without draining the bucket further.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.Use(ratelimiter.Middleware(limiter, func(r *http.Request) string {
//		return clientip.FromContext(r.Context())
//	}))
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every limited response plus Retry-After on denials.
// WithDeniedHandler and WithErrorHandler customize the response bodies.
package ratelimiter
