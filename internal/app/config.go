package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the dashboard.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:"127.0.0.1:8050"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"10s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	DataPath         string `envconfig:"DATA_PATH" default:"data_input/promotion.csv"`
	StaticDepartment string `envconfig:"STATIC_DEPARTMENT" default:"HR"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.AppAddr == "" {
		return errors.New("app address must be provided")
	}
	if c.DataPath == "" {
		return errors.New("data path must be provided")
	}
	if c.StaticDepartment == "" {
		return errors.New("static department must be provided")
	}
	switch c.LogFormat {
	case "pretty", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	if c.AppReadTimeout < 0 || c.AppWriteTimeout < 0 || c.AppRequestTimeout < 0 {
		return errors.New("timeouts must not be negative")
	}
	// The handler timeout has to fire before the connection write deadline.
	if c.AppWriteTimeout > 0 && c.AppRequestTimeout >= c.AppWriteTimeout {
		return fmt.Errorf("request timeout %s must be shorter than write timeout %s", c.AppRequestTimeout, c.AppWriteTimeout)
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
