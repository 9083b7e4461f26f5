package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Generation GenerationConfig `mapstructure:"generation"`
	Credits    CreditsConfig    `mapstructure:"credits"`
	Session    SessionConfig    `mapstructure:"session"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host               string        `mapstructure:"host"`
	Port               int           `mapstructure:"port"`
	Mode               string        `mapstructure:"mode"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	MaxRequestBodySize int           `mapstructure:"max_request_body_size"`
}

// LogConfig controls structured logging output.
type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	Output    string `mapstructure:"output"`
	FilePath  string `mapstructure:"file_path"`
	AddSource bool   `mapstructure:"add_source"`
}

// DatabaseConfig controls the SQLite store.
type DatabaseConfig struct {
	Path            string        `mapstructure:"path"` // file path, or :memory:
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// GenerationConfig controls the AI text generation backend. An empty APIKey
// disables the backend; weave and stitch then serve deterministic fallbacks.
type GenerationConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CreditsConfig controls the credit ledger.
type CreditsConfig struct {
	StartingGrant  int `mapstructure:"starting_grant"`
	WeaveCost      int `mapstructure:"weave_cost"`
	StitchCost     int `mapstructure:"stitch_cost"`
	RegenerateCost int `mapstructure:"regenerate_cost"`
}

// SessionConfig controls session store behavior.
type SessionConfig struct {
	// AutoCreateMissing makes updates to an unknown session ID create a
	// placeholder session instead of returning not found.
	AutoCreateMissing bool `mapstructure:"auto_create_missing"`
}

// Load reads configuration from the given file, or from ./configs/config.yaml
// when path is empty. Environment variables with the SOULHUG prefix override
// file values (SOULHUG_SERVER_PORT, SOULHUG_GENERATION_API_KEY, ...). A
// missing config file is not an error; defaults plus environment apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix("SOULHUG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.max_request_body_size", 4*1024*1024)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("database.path", "soulhug.db")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "1h")

	v.SetDefault("generation.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("generation.model", "gemini-2.0-flash")
	v.SetDefault("generation.timeout", "60s")

	v.SetDefault("credits.starting_grant", 3)
	v.SetDefault("credits.weave_cost", 1)
	v.SetDefault("credits.stitch_cost", 1)
	v.SetDefault("credits.regenerate_cost", 1)

	v.SetDefault("session.auto_create_missing", true)
}

// Validate checks ranges and enumerations after unmarshal.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server mode: %s, must be 'debug' or 'release'", c.Server.Mode)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %s, must be 'json' or 'text'", c.Log.Format)
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	if c.Credits.StartingGrant < 0 {
		return fmt.Errorf("credits.starting_grant must not be negative")
	}
	if c.Credits.WeaveCost < 0 || c.Credits.StitchCost < 0 || c.Credits.RegenerateCost < 0 {
		return fmt.Errorf("credit costs must not be negative")
	}

	if c.Generation.APIKey != "" && c.Generation.Model == "" {
		return fmt.Errorf("generation.model is required when generation.api_key is set")
	}

	return nil
}

// GetServerAddr returns the host:port listen address.
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
