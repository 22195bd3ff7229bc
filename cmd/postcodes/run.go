package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/postcodes/internal/api"
	"github.com/dmitrymomot/postcodes/pkg/httpserver"
	"github.com/dmitrymomot/postcodes/pkg/logger"
	"github.com/dmitrymomot/postcodes/pkg/postcode/uk"
	"github.com/dmitrymomot/postcodes/pkg/requestid"
	"github.com/dmitrymomot/postcodes/pkg/sanitizer"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

const serviceName = "postcodes"

func run(ctx context.Context, cfg Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "postcodes: invalid configuration: %v\n", err)
		return exitUsage
	}

	log := newLogger(cfg, stderr)

	if len(args) > 0 && args[0] == "serve" {
		return serve(ctx, cfg, log)
	}

	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", cfg.Output, "output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *format != outputJSON && *format != outputYAML {
		fmt.Fprintf(stderr, "postcodes: unknown format %q\n", *format)
		return exitUsage
	}

	raws := fs.Args()
	if len(raws) == 0 {
		var err error
		if raws, err = readLines(stdin); err != nil {
			log.ErrorContext(ctx, "read stdin", logger.Error(err))
			return exitUsage
		}
	}

	results, err := uk.ParseAll(ctx, raws...)
	if err != nil {
		log.ErrorContext(ctx, "parse aborted", logger.Error(err))
		return exitInvalid
	}

	if err := write(stdout, *format, results); err != nil {
		log.ErrorContext(ctx, "write results", logger.Error(err))
		return exitInvalid
	}

	code := exitOK
	for _, pc := range results {
		if !pc.IsValid() {
			log.DebugContext(ctx, "invalid postcode",
				logger.Postcode(pc.Normalized()),
				logger.FailedFields(pc.ErrorKeys()),
			)
			code = exitInvalid
		}
	}
	return code
}

func serve(ctx context.Context, cfg Config, log *slog.Logger) int {
	handler := api.New(log, api.WithMaxBatch(cfg.MaxBatch))
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))

	if err := srv.Run(ctx, handler.Router()); err != nil {
		log.ErrorContext(ctx, "http server", logger.Error(err))
		return exitInvalid
	}
	return exitOK
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...)
}

// readLines returns the non-empty lines of r with line endings removed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sanitizer.TrimLineEnding(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Join(errors.New("read input"), err)
	}
	return lines, nil
}

func write(w io.Writer, format string, results []uk.Postcode) error {
	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, pc := range results {
			if err := enc.Encode(pc); err != nil {
				return err
			}
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	for _, pc := range results {
		if err := enc.Encode(pc); err != nil {
			return err
		}
	}
	return nil
}
