package keydb

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/status-im/mapzen-core/resources"
)

// Ensure Store implements resources.Resources
var _ resources.Resources = (*Store)(nil)

// Store serves resources from KeyDB hashes. Each (package, type) pair is
// one hash named "<prefix>:<package>:<type>" whose fields are resource names.
type Store struct {
	client Client
	cfg    *Config
	logger resources.Logger
}

// Option is a functional option for configuring Store
type Option func(*Store)

// WithLogger sets the logger for Store
func WithLogger(logger resources.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a new Store instance with provided client
func NewStore(cfg *Config, client Client, opts ...Option) *Store {
	cfg.ApplyDefaults()

	s := &Store{
		client: client,
		cfg:    cfg,
		logger: resources.NoopLogger{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// HashKey returns the hash holding all resources of resType for pkg
func (s *Store) HashKey(pkg, resType string) string {
	return fmt.Sprintf("%s:%s:%s", s.cfg.KeyPrefix, pkg, resType)
}

// Lookup reads a single resource. Connection failures are logged and
// reported as a miss.
func (s *Store) Lookup(name, resType, pkg string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Connection.ReadTimeout)
	defer cancel()

	value, err := s.client.HGet(ctx, s.HashKey(pkg, resType), name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false
		}
		s.logger.Warn("KeyDB resource lookup failed", "package", pkg, "type", resType, "name", name, "error", err)
		return "", false
	}

	return value, true
}

// Put stores a resource value
func (s *Store) Put(pkg, resType, name, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Connection.SendTimeout)
	defer cancel()

	if err := s.client.HSet(ctx, s.HashKey(pkg, resType), name, value).Err(); err != nil {
		return fmt.Errorf("failed to store resource %s: %w", name, err)
	}
	return nil
}

// Remove deletes a resource value
func (s *Store) Remove(pkg, resType, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Connection.SendTimeout)
	defer cancel()

	if err := s.client.HDel(ctx, s.HashKey(pkg, resType), name).Err(); err != nil {
		return fmt.Errorf("failed to remove resource %s: %w", name, err)
	}
	return nil
}

// Close closes the KeyDB connection
func (s *Store) Close() error {
	return s.client.Close()
}
