package keydb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/status-im/mapzen-core/resources"
)

//go:generate mockgen -package=mock -source=client.go -destination=mock/client.go

// Client defines the KeyDB/Redis hash operations the resource store needs
type Client interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	HDel(ctx context.Context, key string, fields ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// Ensure RedisClient implements Client
var _ Client = (*RedisClient)(nil)

// RedisClient wraps redis.Client to implement Client
type RedisClient struct {
	client *redis.Client
	logger resources.Logger
}

// ClientOption is a functional option for configuring RedisClient
type ClientOption func(*RedisClient)

// WithClientLogger sets the logger for RedisClient
func WithClientLogger(logger resources.Logger) ClientOption {
	return func(r *RedisClient) {
		r.logger = logger
	}
}

// NewRedisClient connects to the KeyDB instance at cfg.URL
func NewRedisClient(cfg *Config, opts ...ClientOption) (*RedisClient, error) {
	cfg.ApplyDefaults()

	redisOpts, err := parseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	redisOpts.DialTimeout = cfg.Connection.ConnectTimeout
	redisOpts.ReadTimeout = cfg.Connection.ReadTimeout
	redisOpts.WriteTimeout = cfg.Connection.SendTimeout
	redisOpts.PoolSize = cfg.Keepalive.PoolSize
	redisOpts.IdleTimeout = cfg.Keepalive.MaxIdleTimeout

	client := redis.NewClient(redisOpts)

	r := &RedisClient{
		client: client,
		logger: resources.NoopLogger{},
	}

	for _, opt := range opts {
		opt(r)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Connection.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to KeyDB at %s: %w", redisOpts.Addr, err)
	}

	r.logger.Info("Connected to KeyDB",
		"address", redisOpts.Addr,
		"connect_timeout", cfg.Connection.ConnectTimeout,
		"pool_size", cfg.Keepalive.PoolSize)

	return r, nil
}

func parseURL(keydbURL string) (*redis.Options, error) {
	parsedURL, err := url.Parse(keydbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse KeyDB URL: %w", err)
	}

	host := parsedURL.Hostname()
	port := parsedURL.Port()
	if port == "" {
		port = "6379"
	}

	opts := &redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port),
	}

	if parsedURL.User != nil {
		if password, ok := parsedURL.User.Password(); ok {
			opts.Password = password
		}
	}

	if parsedURL.Path != "" && len(parsedURL.Path) > 1 {
		if db, err := strconv.Atoi(parsedURL.Path[1:]); err == nil {
			opts.DB = db
		}
	}

	return opts, nil
}

func (r *RedisClient) HGet(ctx context.Context, key, field string) *redis.StringCmd {
	return r.client.HGet(ctx, key, field)
}

func (r *RedisClient) HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	return r.client.HSet(ctx, key, values...)
}

func (r *RedisClient) HDel(ctx context.Context, key string, fields ...string) *redis.IntCmd {
	return r.client.HDel(ctx, key, fields...)
}

func (r *RedisClient) Ping(ctx context.Context) *redis.StatusCmd {
	return r.client.Ping(ctx)
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}
