package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage drivers
const (
	StorageDriverLocal = "local"
	StorageDriverMinio = "minio"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Host         string `yaml:"host" env:"SERVER_HOST"`
		Port         string `yaml:"port" env:"SERVER_PORT"`
		Mode         string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout  string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		IdleTimeout  string `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		URL             string `yaml:"url" env:"DATABASE_URL"`
		MaxConns        int    `yaml:"max_conns" env:"DB_MAX_CONNS"`
		MinConns        int    `yaml:"min_conns" env:"DB_MIN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrateOnStart  bool   `yaml:"migrate_on_start" env:"DB_MIGRATE_ON_START"`
	} `yaml:"database"`

	Storage struct {
		Driver string `yaml:"driver" env:"STORAGE_DRIVER"`
		Path   string `yaml:"path" env:"STORAGE_PATH"`
		Minio  struct {
			Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT"`
			AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
			SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
			Bucket    string `yaml:"bucket" env:"MINIO_BUCKET"`
			UseSSL    bool   `yaml:"use_ssl" env:"MINIO_USE_SSL"`
		} `yaml:"minio"`
	} `yaml:"storage"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and the environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Host = "127.0.0.1"
	config.Server.Port = "3000"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "30s"
	config.Server.IdleTimeout = "120s"

	// Database defaults
	config.Database.MaxConns = 5
	config.Database.MinConns = 0
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrateOnStart = true

	// Storage defaults
	config.Storage.Driver = StorageDriverLocal
	config.Storage.Path = "uploads"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return fmt.Errorf("database url is required (DATABASE_URL)")
	}

	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Database.MaxConns <= 0 {
		return fmt.Errorf("database max_conns must be positive, got %d", config.Database.MaxConns)
	}
	if config.Database.MinConns < 0 || config.Database.MinConns > config.Database.MaxConns {
		return fmt.Errorf("database min_conns must be between 0 and max_conns, got %d", config.Database.MinConns)
	}

	durations := map[string]string{
		"server.read_timeout":        config.Server.ReadTimeout,
		"server.write_timeout":       config.Server.WriteTimeout,
		"server.idle_timeout":        config.Server.IdleTimeout,
		"database.conn_max_lifetime": config.Database.ConnMaxLifetime,
	}
	for key, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", key, err)
		}
	}

	switch strings.ToLower(config.Storage.Driver) {
	case StorageDriverLocal:
		if config.Storage.Path == "" {
			return fmt.Errorf("storage path is required for the local driver")
		}
	case StorageDriverMinio:
		m := config.Storage.Minio
		if m.Endpoint == "" || m.AccessKey == "" || m.SecretKey == "" || m.Bucket == "" {
			return fmt.Errorf("minio endpoint, access_key, secret_key and bucket are required for the minio driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	return nil
}

// Addr returns the host:port the HTTP server binds to
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}
