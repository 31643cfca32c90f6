package config

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Timezone string        `mapstructure:"timezone"`
	Output   OutputConfig  `mapstructure:"output"`
	Logging  LoggingConfig `mapstructure:"logging"`
	Server   ServerConfig  `mapstructure:"server"`
}

// OutputConfig controls how command results are rendered
type OutputConfig struct {
	Format string `mapstructure:"format"` // "text" or "json"
}

// LoggingConfig represents logger configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ServerConfig represents the query API server configuration
type ServerConfig struct {
	Addr           string `mapstructure:"addr"`
	RequestTimeout string `mapstructure:"request_timeout"`
	Metrics        bool   `mapstructure:"metrics"`
	MaxRangeDays   int    `mapstructure:"max_range_days"`
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "text"},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.localdate")
		v.AddConfigPath("/etc/localdate")
	}

	v.SetDefault("output.format", "text")
	v.SetDefault("server.addr", ":8080")

	// Read environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("output.format must be 'text' or 'json', got '%s'", c.Output.Format)
	}

	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("timezone must be an IANA zone name, got '%s'", c.Timezone)
		}
	}

	if c.Server.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
			return fmt.Errorf("server.addr must be host:port, got '%s'", c.Server.Addr)
		}
	}

	if c.Server.MaxRangeDays < 0 {
		return fmt.Errorf("server.max_range_days must not be negative")
	}

	return nil
}

// JSON reports whether results should be rendered as JSON
func (c *OutputConfig) JSON() bool {
	return c.Format == "json"
}

// GetRequestTimeout returns the per-request timeout duration
func (c *ServerConfig) GetRequestTimeout() time.Duration {
	if c.RequestTimeout == "" {
		return 30 * time.Second
	}
	duration, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return duration
}

// GetMaxRangeDays returns the largest day span a range query may cover
func (c *ServerConfig) GetMaxRangeDays() int {
	if c.MaxRangeDays <= 0 {
		return 1000
	}
	return c.MaxRangeDays
}
