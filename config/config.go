package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/status-im/mapzen-core/apikeys"
	"github.com/status-im/mapzen-core/resources/cached"
	"github.com/status-im/mapzen-core/resources/keydb"
)

type Config struct {
	PackageName     string        `yaml:"package_name" json:"package_name"`
	ResourceName    string        `yaml:"resource_name" json:"resource_name"`
	ResourceType    string        `yaml:"resource_type" json:"resource_type"`
	APIKey          string        `yaml:"api_key" json:"api_key"`
	RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval"`

	Resources ResourcesConfig `yaml:"resources" json:"resources"`
	Metrics   MetricsConfig   `yaml:"metrics" json:"metrics"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
}

// ResourcesConfig selects the bundles the key is resolved from. Sources
// are consulted in the order file, env, KeyDB.
type ResourcesConfig struct {
	File  string      `yaml:"file" json:"file"`
	Env   bool        `yaml:"env" json:"env"`
	KeyDB KeyDBConfig `yaml:"keydb" json:"keydb"`
	Cache CacheConfig `yaml:"cache" json:"cache"`
}

type KeyDBConfig struct {
	Enabled      bool `yaml:"enabled" json:"enabled"`
	keydb.Config `yaml:",inline"`
}

// CacheConfig puts a read-through cache in front of the KeyDB bundle
type CacheConfig struct {
	Enabled       bool `yaml:"enabled" json:"enabled"`
	cached.Config `yaml:",inline"`
}

type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" json:"enabled"`
	Namespace string `yaml:"namespace" json:"namespace"`
}

type LoggingConfig struct {
	Level       string `yaml:"level" json:"level"`
	Development bool   `yaml:"development" json:"development"`
}

type Option func(*Config)

func New(opts ...Option) *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func (c *Config) ApplyDefaults() {
	if c.ResourceName == "" {
		c.ResourceName = apikeys.ResourceName
	}
	if c.ResourceType == "" {
		c.ResourceType = apikeys.ResourceType
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func WithPackageName(pkg string) Option {
	return func(c *Config) {
		c.PackageName = pkg
	}
}

func WithResource(name, resType string) Option {
	return func(c *Config) {
		c.ResourceName = name
		c.ResourceType = resType
	}
}

func WithAPIKey(key string) Option {
	return func(c *Config) {
		c.APIKey = key
	}
}

func WithRefreshInterval(interval time.Duration) Option {
	return func(c *Config) {
		c.RefreshInterval = interval
	}
}

func WithResourceFile(path string) Option {
	return func(c *Config) {
		c.Resources.File = path
	}
}

func WithEnvResources(enable bool) Option {
	return func(c *Config) {
		c.Resources.Env = enable
	}
}

func WithKeyDB(url string) Option {
	return func(c *Config) {
		c.Resources.KeyDB.Enabled = true
		c.Resources.KeyDB.URL = url
	}
}

func WithCache(enable bool) Option {
	return func(c *Config) {
		c.Resources.Cache.Enabled = enable
	}
}

func WithMetrics(enable bool, namespace string) Option {
	return func(c *Config) {
		c.Metrics.Enabled = enable
		c.Metrics.Namespace = namespace
	}
}

func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.Logging.Level = level
	}
}

// Parse decodes a YAML configuration and applies defaults
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	config.ApplyDefaults()
	return &config, nil
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Load loads configuration from the MAPZEN_CONFIG_FILE environment variable
// or from the default path "mapzen.yaml"
func Load() (*Config, error) {
	configFile := os.Getenv("MAPZEN_CONFIG_FILE")
	if configFile == "" {
		configFile = "mapzen.yaml"
	}
	return LoadFromFile(configFile)
}

// LoadFromEnv loads configuration from environment variables
// This provides a way to configure without a config file
func LoadFromEnv() (*Config, error) {
	cfg := New()

	if pkg := os.Getenv("MAPZEN_PACKAGE_NAME"); pkg != "" {
		cfg.PackageName = pkg
	} else {
		return nil, fmt.Errorf("MAPZEN_PACKAGE_NAME environment variable is required")
	}

	if key := os.Getenv("MAPZEN_API_KEY_OVERRIDE"); key != "" {
		cfg.APIKey = key
	}

	if file := os.Getenv("MAPZEN_RESOURCE_FILE"); file != "" {
		cfg.Resources.File = file
	}

	if envStr := os.Getenv("MAPZEN_ENV_RESOURCES"); envStr != "" {
		if enabled, err := strconv.ParseBool(envStr); err == nil {
			cfg.Resources.Env = enabled
		}
	}

	if url := os.Getenv("MAPZEN_KEYDB_URL"); url != "" {
		cfg.Resources.KeyDB.Enabled = true
		cfg.Resources.KeyDB.URL = url
	}

	if cacheStr := os.Getenv("MAPZEN_RESOURCE_CACHE"); cacheStr != "" {
		if enabled, err := strconv.ParseBool(cacheStr); err == nil {
			cfg.Resources.Cache.Enabled = enabled
		}
	}

	if intervalStr := os.Getenv("MAPZEN_REFRESH_INTERVAL"); intervalStr != "" {
		if interval, err := time.ParseDuration(intervalStr); err == nil {
			cfg.RefreshInterval = interval
		}
	}

	if metricsStr := os.Getenv("MAPZEN_METRICS"); metricsStr != "" {
		if enabled, err := strconv.ParseBool(metricsStr); err == nil {
			cfg.Metrics.Enabled = enabled
		}
	}

	if level := os.Getenv("MAPZEN_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.PackageName == "" {
		return fmt.Errorf("package name is required")
	}

	if c.ResourceName == "" || c.ResourceType == "" {
		return fmt.Errorf("resource name and type are required")
	}

	if c.RefreshInterval < 0 {
		return fmt.Errorf("refresh interval must be non-negative")
	}

	if c.Resources.KeyDB.Enabled && c.Resources.KeyDB.URL == "" {
		return fmt.Errorf("KeyDB URL is required when KeyDB resources are enabled")
	}

	if c.Resources.Cache.Enabled && c.Resources.Cache.Shards > 0 && c.Resources.Cache.Shards&(c.Resources.Cache.Shards-1) != 0 {
		return fmt.Errorf("cache shards must be a power of 2")
	}

	return nil
}
