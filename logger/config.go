package logger

import "github.com/kbukum/stringr/validation"

// Config contains logging configuration.
type Config struct {
	Level       string `yaml:"level" mapstructure:"level"`
	Format      string `yaml:"format" mapstructure:"format"`
	Output      string `yaml:"output" mapstructure:"output"`
	NoColor     bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp   bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller      bool   `yaml:"caller" mapstructure:"caller"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
	c.Timestamp = true
}

// Validate checks level, format and output against the values New accepts.
func (c *Config) Validate() error {
	v := validation.New().
		OneOf("level", c.Level, "trace", "debug", "info", "warn", "error", "fatal", "disabled").
		OneOf("format", c.Format, "json", "console", FormatPretty).
		OneOf("output", c.Output, "stdout", "stderr")
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
