// Package config loads typed configuration from environment variables.
//
// Structs are described with `env` tags understood by
// github.com/caarlos0/env/v11. A `.env` file in the working directory is read
// once, on first use, through github.com/joho/godotenv; real environment
// variables always take precedence over file values.
//
//	type Config struct {
//	    Env      string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // ...
//	}
//
// Load caches one value per struct type, so repeated calls are cheap and
// always return the first successfully loaded value. Parse skips the cache
// and can read from an explicit variable map, which is what tests use.
package config
