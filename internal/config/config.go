// Package config loads string-analyzer configuration with Viper.
//
// Sources in precedence order: bound command-line flags, STRING_ANALYZER_*
// environment variables, a TOML config file, then defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rcliao/string-analyzer/internal/errors"
)

// EnvPrefix prefixes environment overrides, e.g. STRING_ANALYZER_DATABASE_PATH.
const EnvPrefix = "STRING_ANALYZER"

// ProjectConfigName is looked up in the working directory.
const ProjectConfigName = "string-analyzer.toml"

// Config represents the string-analyzer configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig configures the SQLite database
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Addr              string  `mapstructure:"addr"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"` // 0 disables rate limiting
	Burst             int     `mapstructure:"burst"`
}

// LogConfig configures logging
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", defaultDBPath())
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.requests_per_second", 0)
	v.SetDefault("server.burst", 20)
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}

// New builds a Viper instance with defaults, environment binding and the
// config file at configFile. An empty configFile searches the working
// directory and then ~/.string-analyzer/config.toml; finding none is not an error.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	path := configFile
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}

	return v, nil
}

// Load unmarshals the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if cfg.Server.RequestsPerSecond < 0 {
		return nil, errors.Newf("server.requests_per_second must not be negative, got %v", cfg.Server.RequestsPerSecond)
	}
	return &cfg, nil
}

func findConfigFile() string {
	if _, err := os.Stat(ProjectConfigName); err == nil {
		return ProjectConfigName
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	userPath := filepath.Join(home, ".string-analyzer", "config.toml")
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ""
}

func defaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".string-analyzer", "strings.db")
}
