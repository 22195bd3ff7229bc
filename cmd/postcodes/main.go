// Command postcodes parses UK postcodes and prints their structure.
//
// Usage:
//
//	postcodes [-format json|yaml] [POSTCODE...]
//	postcodes serve
//
// Without arguments, postcodes are read from standard input, one per line.
// Each result is printed as a JSON object per line, or as a YAML document.
// The exit status is 1 when any postcode is invalid and 2 on usage errors.
//
// The serve command exposes the parser over HTTP; see HTTP_ADDR and the other
// HTTP_* variables.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/postcodes/pkg/config"
)

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
