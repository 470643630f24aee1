package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/n-r-w/db2itx/txmgr"
	"gopkg.in/yaml.v3"
)

// Native driver kinds.
const (
	driverPgx = "pgx"
	driverSQL = "sql"
)

// Config probe configuration.
type Config struct {
	Name           string        `yaml:"name"`
	Driver         string        `yaml:"driver" validate:"required,oneof=pgx sql"`
	SQLDriverName  string        `yaml:"sql_driver_name"`
	DSN            string        `yaml:"dsn" validate:"required"`
	IsolationLevel string        `yaml:"isolation_level" validate:"omitempty,oneof=default read_uncommitted read_committed repeatable_read serializable"` //nolint:lll // tag
	Probes         int           `yaml:"probes" validate:"min=1,max=64"`
	Timeout        time.Duration `yaml:"timeout"`
	Debug          bool          `yaml:"debug"`
}

func defaultConfig() Config {
	return Config{
		Name:    "db2itx-probe",
		Driver:  driverPgx,
		Probes:  1,
		Timeout: 10 * time.Second,
	}
}

// Level returns the parsed isolation level.
func (c *Config) Level() txmgr.TransactionLevel {
	level, _ := txmgr.ParseTransactionLevel(c.IsolationLevel)
	return level
}

func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return parseConfig(data)
}

func parseConfig(data []byte) (Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return Config{}, formatValidationError(err)
	}

	return cfg, nil
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate config: %w", err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s: failed on '%s'", e.Field(), e.Tag()))
	}

	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
