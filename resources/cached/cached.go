package cached

import (
	"context"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"

	"github.com/status-im/mapzen-core/resources"
)

// Ensure Resources implements resources.Resources
var _ resources.Resources = (*Resources)(nil)

// Config represents the read-through cache configuration
type Config struct {
	TTL          time.Duration `yaml:"ttl" json:"ttl"`
	Size         int           `yaml:"size" json:"size"` // MB
	MaxEntrySize int           `yaml:"max_entry_size" json:"max_entry_size"`
	Shards       int           `yaml:"shards" json:"shards"` // must be power of 2
}

func (c *Config) ApplyDefaults() {
	if c.TTL == 0 {
		c.TTL = 10 * time.Minute
	}
	if c.Size == 0 {
		c.Size = 8
	}
	if c.MaxEntrySize == 0 {
		c.MaxEntrySize = 4096
	}
	if c.Shards == 0 {
		c.Shards = 16
	}
}

// Resources caches hits from a slower backing bundle in BigCache.
// Misses always go to the backing bundle so newly published values show up.
type Resources struct {
	next   resources.Resources
	cache  *bigcache.BigCache
	logger resources.Logger
}

// Option is a functional option for configuring Resources
type Option func(*Resources)

// WithLogger sets the logger for Resources
func WithLogger(logger resources.Logger) Option {
	return func(r *Resources) {
		r.logger = logger
	}
}

// New wraps next with a BigCache-backed read-through cache
func New(cfg *Config, next resources.Resources, opts ...Option) (*Resources, error) {
	cfg.ApplyDefaults()

	config := bigcache.DefaultConfig(cfg.TTL)
	config.HardMaxCacheSize = cfg.Size
	config.Verbose = false
	config.MaxEntrySize = cfg.MaxEntrySize
	config.Shards = cfg.Shards

	c, err := bigcache.New(context.Background(), config)
	if err != nil {
		return nil, err
	}

	r := &Resources{
		next:   next,
		cache:  c,
		logger: resources.NoopLogger{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func (r *Resources) Lookup(name, resType, pkg string) (string, bool) {
	key := cacheKey(name, resType, pkg)

	data, err := r.cache.Get(key)
	if err == nil {
		return string(data), true
	}
	if !errors.Is(err, bigcache.ErrEntryNotFound) {
		r.logger.Warn("Resource cache read failed", "name", name, "error", err)
	}

	value, ok := r.next.Lookup(name, resType, pkg)
	if !ok {
		return "", false
	}

	if err := r.cache.Set(key, []byte(value)); err != nil {
		r.logger.Warn("Resource cache write failed", "name", name, "error", err)
	}
	return value, true
}

// Invalidate drops a cached value so the next lookup hits the backing bundle
func (r *Resources) Invalidate(name, resType, pkg string) {
	_ = r.cache.Delete(cacheKey(name, resType, pkg))
}

// Reset drops every cached value
func (r *Resources) Reset() error {
	return r.cache.Reset()
}

// Close closes the cache
func (r *Resources) Close() error {
	return r.cache.Close()
}

func cacheKey(name, resType, pkg string) string {
	return pkg + "/" + resType + "/" + name
}
