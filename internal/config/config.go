// Package config loads application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/userdi/internal/connection"
	"github.com/sghaida/userdi/internal/logger"
)

// DefaultConnectionString is the descriptor the binary ships with.
const DefaultConnectionString = "User ID=user;Password=password;Host=localhost;Port=5432;Database=myDataBase;Pooling=true;Min Pool Size=0;Max Pool Size=100;Connection Lifetime=0;"

const envFile = ".env"

// Environment overrides, applied after the YAML file.
const (
	EnvDriver           = "USERSVC_DB_DRIVER"
	EnvConnectionString = "USERSVC_DB_CONNECTION_STRING"
	EnvLogLevel         = "USERSVC_LOG_LEVEL"
	EnvConnectTimeout   = "USERSVC_CONNECT_TIMEOUT"
)

// Supported database drivers.
const (
	DriverStub      = connection.DriverStub
	DriverPostgres  = connection.DriverPostgres
	DriverSQLServer = connection.DriverSQLServer
)

var (
	// ErrMissingConnectionString is returned when no connection descriptor is configured.
	ErrMissingConnectionString = errors.New("database.connection_string is required")
	// ErrUnsupportedDriver is returned for a driver name outside DriverStub/DriverPostgres/DriverSQLServer.
	ErrUnsupportedDriver = errors.New("unsupported database.driver")
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DatabaseConfig describes the connection provider.
type DatabaseConfig struct {
	Driver           string        `yaml:"driver"`
	ConnectionString string        `yaml:"connection_string"`
	ConnectTimeout   time.Duration `yaml:"connect_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database: DatabaseConfig{
			Driver:           DriverStub,
			ConnectionString: DefaultConnectionString,
			ConnectTimeout:   5 * time.Second,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (skipped
// when path is empty), then environment overrides. A .env file in the working
// directory seeds variables that are not already set.
func Load(path string) (Config, error) {
	_ = godotenv.Load(envFile)

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Database.ConnectionString == "" {
		return ErrMissingConnectionString
	}
	switch c.Database.Driver {
	case DriverStub, DriverPostgres, DriverSQLServer:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, c.Database.Driver)
	}
	if c.Database.ConnectTimeout <= 0 {
		return errors.New("database.connect_timeout must be > 0")
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

func applyEnv(c *Config) error {
	if v, ok := os.LookupEnv(EnvDriver); ok {
		c.Database.Driver = v
	}
	if v, ok := os.LookupEnv(EnvConnectionString); ok {
		c.Database.ConnectionString = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvConnectTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvConnectTimeout, err)
		}
		c.Database.ConnectTimeout = d
	}
	return nil
}
