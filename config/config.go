package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Inventory specifics
	Auth       AuthConfig
	Pagination PaginationConfig
	Console    ConsoleConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// APIVersion selects the HTTP variant: 1 is open CRUD, 2 adds login,
	// pagination and bearer-token protection.
	APIVersion int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path        string
	WALMode     bool
	BusyTimeout int // seconds
}

type AuthConfig struct {
	Username             string
	Password             string
	JWTSecret            string
	TokenTTL             time.Duration
	LoginRateLimitPerMin int
}

type PaginationConfig struct {
	DefaultSize int
	MaxSize     int
}

type ConsoleConfig struct {
	Language string
}

// Supported HTTP API variants.
const (
	APIVersionOpen   = 1
	APIVersionSecure = 2
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")
	return load(v)
}

// LoadFile loads configuration from an explicit YAML file.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.APIVersion = v.GetInt("http_server.api_version")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.Path = v.GetString("database.path")
	cfg.Database.WALMode = v.GetBool("database.wal_mode")
	cfg.Database.BusyTimeout = v.GetInt("database.busy_timeout")

	// Auth
	cfg.Auth.Username = v.GetString("auth.username")
	cfg.Auth.Password = v.GetString("auth.password")
	cfg.Auth.JWTSecret = v.GetString("auth.jwt_secret")
	cfg.Auth.TokenTTL = v.GetDuration("auth.token_ttl")
	cfg.Auth.LoginRateLimitPerMin = v.GetInt("auth.login_rate_limit_per_min")

	cfg.Pagination.DefaultSize = v.GetInt("pagination.default_size")
	cfg.Pagination.MaxSize = v.GetInt("pagination.max_size")

	cfg.Console.Language = v.GetString("console.language")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.api_version", APIVersionOpen)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.path", "store.db")
	v.SetDefault("database.wal_mode", true)
	v.SetDefault("database.busy_timeout", 5)

	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.token_ttl", "1h")
	v.SetDefault("auth.login_rate_limit_per_min", 30)

	v.SetDefault("pagination.default_size", 10)
	v.SetDefault("pagination.max_size", 100)

	v.SetDefault("console.language", "ru")
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.HTTPServer.APIVersion {
	case APIVersionOpen:
	case APIVersionSecure:
		if c.Auth.JWTSecret == "" {
			return errors.New("auth.jwt_secret is required for api_version 2")
		}
		if c.Auth.Username == "" || c.Auth.Password == "" {
			return errors.New("auth.username and auth.password are required for api_version 2")
		}
		if c.Auth.TokenTTL <= 0 {
			return errors.New("auth.token_ttl must be positive")
		}
	default:
		return fmt.Errorf("http_server.api_version %d is not supported", c.HTTPServer.APIVersion)
	}

	if c.Database.Path == "" {
		return errors.New("database.path is required")
	}
	if c.Pagination.DefaultSize <= 0 || c.Pagination.MaxSize <= 0 {
		return errors.New("pagination sizes must be positive")
	}
	if c.Pagination.DefaultSize > c.Pagination.MaxSize {
		return fmt.Errorf("pagination.default_size %d exceeds pagination.max_size %d", c.Pagination.DefaultSize, c.Pagination.MaxSize)
	}
	return nil
}
