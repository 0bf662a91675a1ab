package config

import (
	"time"
	"unicode/utf8"

	"github.com/kbukum/stringr/errors"
	"github.com/kbukum/stringr/logger"
	"github.com/kbukum/stringr/observability"
	"github.com/kbukum/stringr/textops"
	"github.com/kbukum/stringr/validation"
	"github.com/kbukum/stringr/wildcard"
)

// Default values applied by ApplyDefaults.
const (
	DefaultMulti         = "*"
	DefaultSingle        = "?"
	DefaultCacheSize     = 128
	DefaultServiceName   = "stringr"
	DefaultOTLPEndpoint  = "localhost:4318"
	DefaultMeterInterval = 15 * time.Second
)

// Config is the full stringr configuration.
type Config struct {
	Wildcard WildcardConfig `yaml:"wildcard" mapstructure:"wildcard"`
	Chunk    ChunkConfig    `yaml:"chunk" mapstructure:"chunk"`
	Logging  logger.Config  `yaml:"logging" mapstructure:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics" mapstructure:"metrics"`
	Tracing  TracingConfig  `yaml:"tracing" mapstructure:"tracing"`
}

// ApplyDefaults fills every unset field.
func (c *Config) ApplyDefaults() {
	c.Wildcard.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Metrics.ApplyDefaults()
	c.Tracing.ApplyDefaults()
}

// Validate checks every section and returns an INVALID_CONFIG error naming
// the first section that failed.
func (c *Config) Validate() error {
	if err := c.Wildcard.Validate(); err != nil {
		return err
	}
	if err := c.Chunk.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig("logging", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	return c.Tracing.Validate()
}

// WildcardConfig holds the default wildcard spec. Symbols are strings so they
// can be written naturally in YAML and environment variables; each must be
// exactly one character.
type WildcardConfig struct {
	Multi      string `yaml:"multi" mapstructure:"multi" validate:"required"`
	Single     string `yaml:"single" mapstructure:"single" validate:"required,nefield=Multi"`
	IgnoreCase bool   `yaml:"ignore_case" mapstructure:"ignore_case"`
	CacheSize  int    `yaml:"cache_size" mapstructure:"cache_size" validate:"gte=0"`
}

// ApplyDefaults sets '*', '?' and the default cache size when unset.
func (c *WildcardConfig) ApplyDefaults() {
	if c.Multi == "" {
		c.Multi = DefaultMulti
	}
	if c.Single == "" {
		c.Single = DefaultSingle
	}
	if c.CacheSize == 0 {
		c.CacheSize = DefaultCacheSize
	}
}

// Validate validates the wildcard section. Each symbol must be exactly one
// character.
func (c *WildcardConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return errors.InvalidConfig("wildcard", err)
	}
	v := validation.New().
		RuneLength("multi", c.Multi, 1).
		RuneLength("single", c.Single, 1)
	if appErr := v.Validate(); appErr != nil {
		return errors.InvalidConfig("wildcard", appErr)
	}
	return nil
}

// Spec converts the section into a wildcard.Spec.
func (c *WildcardConfig) Spec() (wildcard.Spec, error) {
	if err := c.Validate(); err != nil {
		return wildcard.Spec{}, err
	}
	multi, _ := utf8.DecodeRuneInString(c.Multi)
	single, _ := utf8.DecodeRuneInString(c.Single)
	spec := wildcard.Spec{Multi: multi, Single: single, IgnoreCase: c.IgnoreCase}
	if err := spec.Validate(); err != nil {
		return wildcard.Spec{}, errors.InvalidConfig("wildcard", err)
	}
	return spec, nil
}

// NewCache creates a matcher cache sized by CacheSize using the configured
// spec rules. The options are passed to every compiled matcher.
func (c *WildcardConfig) NewCache(opts ...wildcard.Option) (*wildcard.Cache, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	size := c.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}
	return wildcard.NewCache(size, opts...)
}

// ChunkConfig holds the default chunk width and separator. A zero width
// disables chunking.
type ChunkConfig struct {
	Width     int    `yaml:"width" mapstructure:"width" validate:"gte=0"`
	Separator string `yaml:"separator" mapstructure:"separator"`
}

// Validate validates the chunk section.
func (c *ChunkConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return errors.InvalidConfig("chunk", err)
	}
	return nil
}

// Apply chunks input with the configured width and separator.
func (c *ChunkConfig) Apply(input string) string {
	return textops.ChunkWithSeparator(input, c.Width, c.Separator)
}

// MetricsConfig controls OTLP metric export.
type MetricsConfig struct {
	Enabled     bool          `yaml:"enabled" mapstructure:"enabled"`
	ServiceName string        `yaml:"service_name" mapstructure:"service_name" validate:"required_if=Enabled true"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Endpoint    string        `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true"`
	Insecure    bool          `yaml:"insecure" mapstructure:"insecure"`
	Interval    time.Duration `yaml:"interval" mapstructure:"interval" validate:"gte=0"`
}

// ApplyDefaults applies default values to the metrics section.
func (c *MetricsConfig) ApplyDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Endpoint == "" {
		c.Endpoint = DefaultOTLPEndpoint
	}
	if c.Interval == 0 {
		c.Interval = DefaultMeterInterval
	}
}

// Validate validates the metrics section.
func (c *MetricsConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return errors.InvalidConfig("metrics", err)
	}
	return nil
}

// MeterConfig converts the section into an observability.MeterConfig.
func (c *MetricsConfig) MeterConfig() *observability.MeterConfig {
	cfg := observability.DefaultMeterConfig(c.ServiceName)
	cfg.Environment = c.Environment
	cfg.Endpoint = c.Endpoint
	cfg.Insecure = c.Insecure
	cfg.Interval = c.Interval
	return &cfg
}

// TracingConfig controls OTLP trace export.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled" mapstructure:"enabled"`
	ServiceName string  `yaml:"service_name" mapstructure:"service_name" validate:"required_if=Enabled true"`
	Environment string  `yaml:"environment" mapstructure:"environment"`
	Endpoint    string  `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true"`
	Insecure    bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate  float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// ApplyDefaults applies default values to the tracing section. SampleRate is
// left alone since zero is a valid rate.
func (c *TracingConfig) ApplyDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Endpoint == "" {
		c.Endpoint = DefaultOTLPEndpoint
	}
}

// Validate validates the tracing section.
func (c *TracingConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return errors.InvalidConfig("tracing", err)
	}
	return nil
}

// TracerConfig converts the section into an observability.TracerConfig.
func (c *TracingConfig) TracerConfig() *observability.TracerConfig {
	cfg := observability.DefaultTracerConfig(c.ServiceName)
	cfg.Environment = c.Environment
	cfg.Endpoint = c.Endpoint
	cfg.Insecure = c.Insecure
	cfg.SampleRate = c.SampleRate
	return &cfg
}
