package main

import (
	"strings"

	"github.com/dmitrymomot/postcodes/pkg/httpserver"
	"github.com/dmitrymomot/postcodes/pkg/validator"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// Config is read from the environment (and an optional .env file).
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	Output    string `env:"POSTCODES_OUTPUT" envDefault:"json"`
	MaxBatch  int    `env:"POSTCODES_MAX_BATCH" envDefault:"1000"`

	HTTP httpserver.Config
}

// Validate checks the values that would otherwise fail deep inside the program.
func (c Config) Validate() error {
	return validator.Apply(
		validator.InList("POSTCODES_OUTPUT", c.Output, []string{outputJSON, outputYAML}),
		validator.InList("LOG_FORMAT", c.LogFormat, []string{"", "json", "text"}),
		validator.InList("LOG_LEVEL", strings.ToLower(c.LogLevel), []string{"", "debug", "info", "warn", "error"}),
	)
}
