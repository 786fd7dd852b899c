package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
)

const maskChar = "*"

var ErrInvalidConfig = errors.New("config: invalid value")

// SSLModes lists the transport security modes understood by the PostgreSQL driver.
var SSLModes = []string{"disable", "allow", "prefer", "require", "verify-ca", "verify-full"}

type Server struct {
	Port            int           `env:"PORT" envDefault:"3000"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MaxBodyBytes    int64         `env:"SERVER_MAX_BODY_BYTES" envDefault:"1048576"`
}

type DB struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"password"`
	Name     string `env:"NAME" envDefault:"notesdb"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`

	MaxConns          int32         `env:"MAX_CONNS" envDefault:"10"`
	MinConns          int32         `env:"MIN_CONNS" envDefault:"0"`
	AcquireTimeout    time.Duration `env:"ACQUIRE_TIMEOUT" envDefault:"5s"`
	ConnMaxLifetime   time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"1h"`
	ConnMaxIdleTime   time.Duration `env:"CONN_MAX_IDLE_TIME" envDefault:"30m"`
	PingTimeout       time.Duration `env:"PING_TIMEOUT" envDefault:"5s"`
	BootstrapFailFast bool          `env:"BOOTSTRAP_FAIL_FAST" envDefault:"false"`
}

func (d *DB) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("host", d.Host),
		slog.Int("port", d.Port),
		slog.String("user", d.User),
		slog.String("password", maskChar),
		slog.String("name", d.Name),
		slog.String("sslmode", d.SSLMode),
		slog.Int("max_conns", int(d.MaxConns)),
		slog.Duration("acquire_timeout", d.AcquireTimeout),
		slog.Bool("bootstrap_fail_fast", d.BootstrapFailFast),
	)
}

type Config struct {
	Env      string  `env:"ENV" envDefault:"development"`
	LogLevel string  `env:"LOG_LEVEL" envDefault:"info"`
	Version  string  `env:"APP_VERSION" envDefault:"1.0.0"`
	Server   Server
	DB       DB `envPrefix:"DB_"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", c.Env),
		slog.String("log_level", c.LogLevel),
		slog.String("version", c.Version),
		slog.Any("server", c.Server),
		slog.Any("db", &c.DB),
	)
}

// Validate reports the first setting that cannot be used to start the service.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: PORT %d is out of range", ErrInvalidConfig, c.Server.Port)
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: SERVER_MAX_BODY_BYTES must be positive", ErrInvalidConfig)
	}

	if !slices.Contains(SSLModes, c.DB.SSLMode) {
		return fmt.Errorf("%w: DB_SSLMODE %q is not one of %v", ErrInvalidConfig, c.DB.SSLMode, SSLModes)
	}

	if c.DB.MaxConns <= 0 {
		return fmt.Errorf("%w: DB_MAX_CONNS must be positive", ErrInvalidConfig)
	}

	if c.DB.MinConns < 0 || c.DB.MinConns > c.DB.MaxConns {
		return fmt.Errorf("%w: DB_MIN_CONNS must be between 0 and DB_MAX_CONNS", ErrInvalidConfig)
	}

	if c.DB.AcquireTimeout <= 0 {
		return fmt.Errorf("%w: DB_ACQUIRE_TIMEOUT must be positive", ErrInvalidConfig)
	}

	return nil
}

// Load reads the configuration from the environment, falling back to the
// defaults declared on each field.
func Load() (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", slog.Any("config", &cfg))
	return &cfg, nil
}
