package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Timezone string `env:"PLANNER_TIMEZONE" env-default:"Local"`
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" env-default:"8080"`
	GinMode         string        `env:"GIN_MODE" env-default:"debug"`
	AllowOrigins    []string      `env:"CORS_ALLOW_ORIGINS" env-default:"*" env-separator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type DBConfig struct {
	Driver   string `env:"DB_DRIVER" env-default:"sqlite"`
	DSN      string `env:"DB_DSN" env-default:"schoolplanner.db"`
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"planner_user"`
	Password string `env:"DB_PASSWORD" env-default:"planner_pass"`
	Name     string `env:"DB_NAME" env-default:"planner_db"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
	LogLevel string `env:"DB_LOG_LEVEL" env-default:"warn"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, c.DB.Driver)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves PLANNER_TIMEZONE. "today" is computed in this location.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("PLANNER_TIMEZONE: %w", err)
	}
	return loc, nil
}

// PostgresDSN builds a libpq style connection string.
func (d DBConfig) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}
