// Package api exposes the UK postcode parser over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/postcodes/pkg/logger"
	"github.com/dmitrymomot/postcodes/pkg/postcode/uk"
	"github.com/dmitrymomot/postcodes/pkg/requestid"
)

const (
	defaultMaxBatch = 1000
	maxBodyBytes    = 1 << 20
)

// Handler serves postcode parsing endpoints.
type Handler struct {
	log      *slog.Logger
	maxBatch int
}

type Option func(*Handler)

// WithMaxBatch limits the number of postcodes accepted by one batch request.
func WithMaxBatch(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBatch = n
		}
	}
}

func New(log *slog.Logger, opts ...Option) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	h := &Handler{log: log.With(logger.Component("api")), maxBatch: defaultMaxBatch}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router returns the API routes:
//
//	GET  /health         liveness probe
//	GET  /uk/{postcode}  parse one postcode; 200 when valid, 422 otherwise
//	POST /uk             parse a JSON array of postcodes
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.Recoverer)

	r.Get("/health", h.HandleHealth)
	r.Route("/uk", func(r chi.Router) {
		r.Get("/{postcode}", h.HandleParse)
		r.Post("/", h.HandleParseBatch)
	})
	return r
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

// HandleParse handles GET /uk/{postcode}.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	pc := uk.Parse(chi.URLParam(r, "postcode"))

	h.log.DebugContext(r.Context(), "postcode parsed",
		logger.Postcode(pc.Normalized()),
		logger.Valid(pc.IsValid()),
		logger.FailedFields(pc.ErrorKeys()),
	)

	status := http.StatusOK
	if !pc.IsValid() {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, pc)
}

// HandleParseBatch handles POST /uk with a body like ["SW1A 1AA", "EC1A 1BB"].
// The response is an array of parse results in request order.
func (h *Handler) HandleParseBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var raws []string
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&raws); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", err)
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", ErrInvalidBody)
		return
	}
	if len(raws) > h.maxBatch {
		writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", ErrBatchTooLarge)
		return
	}

	results, err := uk.ParseAll(ctx, raws...)
	if err != nil {
		h.log.WarnContext(ctx, "batch parse aborted", logger.Error(err))
		writeError(w, http.StatusServiceUnavailable, "aborted", err)
		return
	}

	invalid := 0
	for _, pc := range results {
		if !pc.IsValid() {
			invalid++
		}
	}
	h.log.InfoContext(ctx, "postcode batch parsed",
		logger.Count(len(results)),
		slog.Int("invalid", invalid),
		logger.Duration(time.Since(start)),
	)

	writeJSON(w, http.StatusOK, results)
}
