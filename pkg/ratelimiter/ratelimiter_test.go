package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputguard/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Now()}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(clock.Now))
	t.Cleanup(store.Close)

	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, store, clock
}

func TestNewBucket_InvalidConfig(t *testing.T) {
	t.Parallel()
	for _, cfg := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1, RefillInterval: 0},
	} {
		_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}
}

func TestBucket_AllowAndRefill(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b, _, clock := newBucket(t, ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second})

	for i := 2; i >= 0; i-- {
		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, i, res.Remaining)
		assert.Equal(t, 3, res.Limit)
	}

	res, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	// denials do not drain the bucket further
	res, err = b.Status(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Remaining)

	clock.Advance(2 * time.Second)
	res, err = b.Status(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Remaining)

	clock.Advance(time.Hour)
	res, err = b.Status(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Remaining, "refill is capped at capacity")
}

func TestBucket_KeysAreIndependent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b, store, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})

	res, err := b.Allow(ctx, "a")
	require.NoError(t, err)
	assert.True(t, res.Allowed())

	res, err = b.Allow(ctx, "b")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 2, store.Len())

	require.NoError(t, b.Reset(ctx, "a"))
	res, err = b.Allow(ctx, "a")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
}

func TestBucket_AllowN(t *testing.T) {
	t.Parallel()
	b, _, _ := newBucket(t, ratelimiter.Config{Capacity: 5, RefillRate: 1, RefillInterval: time.Second})

	_, err := b.AllowN(context.Background(), "k", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	res, err := b.AllowN(context.Background(), "k", 6)
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Positive(t, res.RetryAfter())
}

func TestMemoryStore_RemoveStale(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(0, 0)}
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithStaleAfter(time.Minute),
		ratelimiter.WithClock(clock.Now),
	)
	defer store.Close()
	cfg := ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second}

	_, _, err := store.ConsumeTokens(context.Background(), "old", 1, cfg)
	require.NoError(t, err)
	clock.Advance(2 * time.Minute)
	_, _, err = store.ConsumeTokens(context.Background(), "new", 1, cfg)
	require.NoError(t, err)

	store.RemoveStale()
	assert.Equal(t, 1, store.Len())
	store.Close()
	store.Close()
}

func TestComposite(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	fixed := func(s string) ratelimiter.KeyFunc { return func(*http.Request) string { return s } }

	assert.Equal(t, "", ratelimiter.Composite(fixed(""))(req))
	assert.Equal(t, "ip:field", ratelimiter.Composite(fixed("ip"), fixed(""), fixed("field"))(req))

	long := ratelimiter.Composite(fixed(strings.Repeat("x", 40)), fixed(strings.Repeat("y", 40)))(req)
	assert.LessOrEqual(t, len(long), 64)
	assert.NotContains(t, long, ":")
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	b, _, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	var denied bool
	h := ratelimiter.Middleware(b,
		func(r *http.Request) string { return r.Header.Get("X-Client") },
		ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, _ *http.Request, _ *ratelimiter.Result) {
			denied = true
			w.WriteHeader(http.StatusTooManyRequests)
		}),
	)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }))

	do := func(client string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Client", client)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := do("a")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = do("a")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.True(t, denied)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	rec = do("")
	assert.Equal(t, http.StatusNoContent, rec.Code, "empty key is not limited")
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

type failingStore struct{}

func (failingStore) ConsumeTokens(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, errors.New("store down")
}

func (failingStore) Reset(context.Context, string) error { return nil }

func TestMiddleware_StoreError(t *testing.T) {
	t.Parallel()
	b, err := ratelimiter.NewBucket(failingStore{}, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	require.NoError(t, err)

	h := ratelimiter.Middleware(b, func(*http.Request) string { return "k" })(http.NotFoundHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
