package config

import "time"

const (
	// API defaults
	DefaultAPIBaseURL  = "https://stoat.chat/api/webhooks"
	DefaultTimeoutSecs = 15

	// UserAgent identifies the tool on every request.
	UserAgent = "stoat-wh/1.0 (+https://github.com/bjornmorten/stoat-wh)"

	// Log defaults
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "console"
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Environment variables
	EnvAPIBase    = "STOAT_API"
	EnvConfigPath = "STOAT_WH_CONFIG"
)

// Config is the resolved tool configuration. Values come from defaults,
// an optional YAML config file, and environment overrides, in that
// order.
type Config struct {
	APIBaseURL  string    `yaml:"api_base_url" validate:"required,url"`
	TimeoutSecs int       `yaml:"timeout_seconds" validate:"gt=0"`
	LogConfig   LogConfig `yaml:"log_config"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	LogLevel      string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error fatal"`
	LogFormat     string `yaml:"log_format" validate:"omitempty,oneof=json console text"`
	LogFile       string `yaml:"log_file"`
	MaxLogSizeMB  int    `yaml:"max_log_size_mb" validate:"omitempty,gt=0"`
	MaxLogBackups int    `yaml:"max_log_backups" validate:"omitempty,gte=0"`
}

// NewDefaultConfig returns a Config populated with the documented
// defaults.
func NewDefaultConfig() *Config {
	return &Config{
		APIBaseURL:  DefaultAPIBaseURL,
		TimeoutSecs: DefaultTimeoutSecs,
		LogConfig:   NewDefaultLogConfig(),
	}
}

// NewDefaultLogConfig returns the default logging configuration.
func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		MaxLogSizeMB:  DefaultMaxLogSizeMB,
		MaxLogBackups: DefaultMaxLogBackups,
	}
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}
