package config

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"passvault/internal/datastate"
	"passvault/internal/domain"
	"passvault/internal/network"
	"passvault/internal/observability/logger"
	"passvault/internal/observable"
)

// DefaultTTL is how long a fetched configuration is reused.
const DefaultTTL = 5 * time.Minute

// FetchTimeout bounds a shared fetch once it no longer follows its caller.
const FetchTimeout = 30 * time.Second

const cacheKey = "server-config"

// Repository implements domain.ConfigRepository.
type Repository struct {
	service domain.ConfigService
	cache   *gocache.Cache
	sf      singleflight.Group
	state   *observable.State[datastate.DataState[domain.ServerConfig]]
}

// New returns a Repository in the Loading state. ttl <= 0 uses DefaultTTL.
func New(service domain.ConfigService, ttl time.Duration) *Repository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Repository{
		service: service,
		cache:   gocache.New(ttl, 2*ttl),
		state:   observable.New(datastate.Loading[domain.ServerConfig]()),
	}
}

// ServerConfigState returns the observable configuration.
func (r *Repository) ServerConfigState() *observable.State[datastate.DataState[domain.ServerConfig]] {
	return r.state
}

// Refresh loads the configuration and publishes the outcome. Concurrent
// callers share one fetch, which runs detached from any single caller's
// cancellation and is bounded by FetchTimeout. A caller whose ctx ends first
// gets Error(ctx.Err()) with the current data; the shared state is left to the
// fetch.
func (r *Repository) Refresh(ctx context.Context) datastate.DataState[domain.ServerConfig] {
	if v, ok := r.cache.Get(cacheKey); ok {
		s := datastate.Loaded(v.(domain.ServerConfig))
		r.state.Set(s)
		return s
	}

	datastate.UpdateToPendingOrLoading(r.state)

	ch := r.sf.DoChan(cacheKey, func() (any, error) {
		return r.fetch(context.WithoutCancel(ctx)), nil
	})
	select {
	case res := <-ch:
		return res.Val.(datastate.DataState[domain.ServerConfig])
	case <-ctx.Done():
		logger.From(ctx).Debug("config refresh abandoned by caller",
			logger.Component("config"), logger.Err(ctx.Err()))
		return datastate.Error(ctx.Err(), r.state.Value().DataPtr())
	}
}

// fetch runs the shared request and publishes its outcome.
func (r *Repository) fetch(ctx context.Context) datastate.DataState[domain.ServerConfig] {
	log := logger.From(ctx).With(logger.Component("config"))
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	cfg, err := r.service.GetConfig(ctx)
	if err == nil {
		r.cache.SetDefault(cacheKey, cfg)
	}
	s := network.ToDataState(cfg, err, r.state.Value().DataPtr())
	if err != nil {
		log.Warn("config refresh failed", logger.State(s.Kind().String()), logger.Err(err))
	} else {
		log.Debug("config refreshed", logger.State(s.Kind().String()))
	}
	r.state.Set(s)
	return s
}

// Invalidate drops the cached configuration so the next Refresh fetches.
func (r *Repository) Invalidate() { r.cache.Delete(cacheKey) }

var _ domain.ConfigRepository = (*Repository)(nil)
