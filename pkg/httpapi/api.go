package httpapi

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/inputguard/pkg/clientip"
	"github.com/dmitrymomot/inputguard/pkg/config"
	"github.com/dmitrymomot/inputguard/pkg/logger"
	"github.com/dmitrymomot/inputguard/pkg/ratelimiter"
	"github.com/dmitrymomot/inputguard/pkg/validator"
)

// maxBodyBytes bounds evaluate request bodies.
const maxBodyBytes = 64 << 10

// field is one named engine. Engines have a single owner, so requests for
// the same field are serialized.
type field struct {
	mu     sync.Mutex
	engine *validator.Engine
	info   FieldInfo
}

func (f *field) process(text string) (validator.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.engine.Process(text)
}

// API serves the configured fields over HTTP.
type API struct {
	fields   map[string]*field
	names    []string
	log      *slog.Logger
	limiter  *ratelimiter.Bucket
	resolver clientip.Resolver
}

// Option configures an API.
type Option func(*options)

type options struct {
	log        *slog.Logger
	limiter    *ratelimiter.Bucket
	resolver   clientip.Resolver
	engineOpts []validator.Option
}

// WithLogger sets the request and engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithRateLimit limits evaluate requests per client address.
func WithRateLimit(b *ratelimiter.Bucket) Option {
	return func(o *options) { o.limiter = b }
}

// WithClientIP sets how client addresses are resolved.
func WithClientIP(res clientip.Resolver) Option {
	return func(o *options) { o.resolver = res }
}

// WithEngineOptions adds options to every engine built from the profiles.
func WithEngineOptions(opts ...validator.Option) Option {
	return func(o *options) { o.engineOpts = append(o.engineOpts, opts...) }
}

// New builds one engine per profile.
func New(profiles *config.Profiles, opts ...Option) (*API, error) {
	o := options{log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	if profiles == nil || profiles.Len() == 0 {
		return nil, ErrNoFields
	}

	api := &API{
		fields:   make(map[string]*field, profiles.Len()),
		names:    profiles.Names(),
		log:      o.log,
		limiter:  o.limiter,
		resolver: o.resolver,
	}

	engineOpts := append([]validator.Option{validator.WithLogger(o.log)}, o.engineOpts...)
	for _, name := range api.names {
		src, err := profiles.Get(name)
		if err != nil {
			return nil, err
		}
		e, err := profiles.Engine(name, engineOpts...)
		if err != nil {
			return nil, err
		}
		api.fields[name] = &field{engine: e, info: newFieldInfo(name, src, e)}
	}
	return api, nil
}

// Names returns the served field names in sorted order.
func (a *API) Names() []string {
	return append([]string(nil), a.names...)
}
