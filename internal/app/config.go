package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names the optional YAML file read before environment
// overrides are applied.
const ConfigFileEnv = "INETSTORE_CONFIG"

var ErrMissingDSN = errors.New("missing required setting: DB_CONN")

type Config struct {
	Port         string        `yaml:"port"`
	DSN          string        `yaml:"dsn"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	LogLevel     string        `yaml:"log_level"`
	AutoMigrate  bool          `yaml:"auto_migrate"`

	AuthEnabled  bool   `yaml:"auth_enabled"`
	AuthIssuer   string `yaml:"auth_issuer"`
	AuthJWKSURL  string `yaml:"auth_jwks_url"`
	AuthAudience string `yaml:"auth_audience"`
}

func DefaultConfig() Config {
	return Config{
		Port:         "4040",
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		LogLevel:     "info",
	}
}

// LoadConfig layers defaults, the file named by INETSTORE_CONFIG and the
// environment, in that order.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.DSN == "" {
		return Config{}, ErrMissingDSN
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) error {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", key, err)
		}
		*dst = b
		return nil
	}

	setString("DB_CONN", &cfg.DSN)
	setString("PORT", &cfg.Port)
	setString("LOG_LEVEL", &cfg.LogLevel)
	setString("AUTH_ISSUER", &cfg.AuthIssuer)
	setString("AUTH_JWKS_URL", &cfg.AuthJWKSURL)
	setString("AUTH_AUDIENCE", &cfg.AuthAudience)

	if err := setBool("AUTO_MIGRATE", &cfg.AutoMigrate); err != nil {
		return err
	}
	return setBool("AUTH_ENABLED", &cfg.AuthEnabled)
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
