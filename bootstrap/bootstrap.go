package bootstrap

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/status-im/mapzen-core/apikeys"
	"github.com/status-im/mapzen-core/config"
	"github.com/status-im/mapzen-core/logging"
	"github.com/status-im/mapzen-core/metrics"
	"github.com/status-im/mapzen-core/resources"
	"github.com/status-im/mapzen-core/resources/cached"
	"github.com/status-im/mapzen-core/resources/keydb"
)

// Runtime is a fully wired key store: the resolved context, the manager
// and, when configured, its refresher and metrics.
type Runtime struct {
	Config    *config.Config
	Context   resources.AppContext
	Manager   *apikeys.Manager
	Refresher *apikeys.Refresher
	Metrics   *metrics.KeyMetrics

	logger  resources.Logger
	closers []func() error
}

type settings struct {
	config      *config.Config
	logger      resources.Logger
	registerer  prometheus.Registerer
	keydbClient keydb.Client
	extra       []resources.Resources
	singleton   bool
}

type Option func(*settings)

func WithConfig(cfg *config.Config) Option {
	return func(s *settings) {
		s.config = cfg
	}
}

func WithLogger(logger resources.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithRegisterer sets where metrics are registered when they are enabled
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *settings) {
		s.registerer = reg
	}
}

// WithKeyDBClient uses client instead of dialing the configured URL
func WithKeyDBClient(client keydb.Client) Option {
	return func(s *settings) {
		s.keydbClient = client
	}
}

// WithResources appends host bundles consulted after the configured ones
func WithResources(res ...resources.Resources) Option {
	return func(s *settings) {
		s.extra = append(s.extra, res...)
	}
}

// WithSingleton makes the runtime use the process-wide apikeys.Instance
func WithSingleton(enable bool) Option {
	return func(s *settings) {
		s.singleton = enable
	}
}

func New(opts ...Option) (*Runtime, error) {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}

	// If no config was provided, try to load from default sources
	if s.config == nil {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			cfg, err = config.Load()
			if err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
		s.config = cfg
	}

	if err := s.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if s.logger == nil {
		l, err := logging.New(s.config.Logging.Level, s.config.Logging.Development)
		if err != nil {
			return nil, err
		}
		s.logger = l
	}

	rt := &Runtime{
		Config: s.config,
		logger: s.logger,
	}

	res, err := rt.buildResources(s)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}
	rt.Context = resources.NewContext(s.config.PackageName, res)

	managerOpts := []apikeys.Option{
		apikeys.WithLogger(s.logger),
		apikeys.WithResource(s.config.ResourceName, s.config.ResourceType),
	}
	if s.config.Metrics.Enabled {
		rt.Metrics = metrics.New(metrics.Config{
			Namespace:  s.config.Metrics.Namespace,
			Registerer: s.registerer,
		})
		managerOpts = append(managerOpts, apikeys.WithMetrics(rt.Metrics))
	}

	if s.singleton {
		rt.Manager = apikeys.Instance(rt.Context, managerOpts...)
	} else {
		rt.Manager = apikeys.New(rt.Context, managerOpts...)
	}

	if s.config.APIKey != "" {
		rt.Manager.SetAPIKey(s.config.APIKey)
	}

	if s.config.RefreshInterval > 0 {
		rt.Refresher = apikeys.NewRefresher(rt.Manager, rt.Context, s.config.RefreshInterval)
		rt.Refresher.Start()
		rt.closers = append(rt.closers, func() error {
			rt.Refresher.Stop()
			return nil
		})
	}

	if _, err := rt.Manager.RequireAPIKey(); err != nil {
		s.logger.Warn("Mapzen API key not configured", "package", s.config.PackageName, "error", err)
	}

	return rt, nil
}

// buildResources assembles the configured bundles in lookup order
func (rt *Runtime) buildResources(s *settings) (resources.Resources, error) {
	cfg := s.config.Resources
	var chain resources.Chain

	if cfg.File != "" {
		f, err := resources.LoadFile(cfg.File)
		if err != nil {
			return nil, err
		}
		chain = append(chain, f)
	}

	if cfg.Env {
		chain = append(chain, &resources.Env{})
	}

	if cfg.KeyDB.Enabled {
		client := s.keydbClient
		if client == nil {
			c, err := keydb.NewRedisClient(&cfg.KeyDB.Config, keydb.WithClientLogger(s.logger))
			if err != nil {
				return nil, err
			}
			client = c
		}
		store := keydb.NewStore(&cfg.KeyDB.Config, client, keydb.WithLogger(s.logger))
		rt.closers = append(rt.closers, store.Close)

		var res resources.Resources = store
		if cfg.Cache.Enabled {
			c, err := cached.New(&cfg.Cache.Config, store, cached.WithLogger(s.logger))
			if err != nil {
				return nil, fmt.Errorf("failed to create resource cache: %w", err)
			}
			rt.closers = append(rt.closers, c.Close)
			res = c
		}
		chain = append(chain, res)
	}

	chain = append(chain, s.extra...)

	if len(chain) == 0 {
		return nil, nil
	}
	return chain, nil
}

// Close stops the refresher and releases resource connections
func (rt *Runtime) Close() error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	rt.closers = nil
	return errors.Join(errs...)
}
