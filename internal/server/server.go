// Package server exposes plan construction over HTTP.
//
// Routes:
//
//	GET  /healthz     liveness probe
//	POST /v1/extend   build a plan from a JSON catalog
//
// Request body for /v1/extend:
//
//	{
//	  "meals": [{"name": "PB&J", "tolerance": 1}, ...],
//	  "target": 16,
//	  "sort": true,
//	  "strategy": "spread",
//	  "period": 0,
//	  "strict": false
//	}
//
// The response is a render.Document. Input errors map to 400, dropped repeats
// in strict mode to 422, everything else to 500.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/mealcycle/pkg/buildinfo"
	"github.com/matzehuels/mealcycle/pkg/errors"
	"github.com/matzehuels/mealcycle/pkg/meal"
	"github.com/matzehuels/mealcycle/pkg/observability"
	"github.com/matzehuels/mealcycle/pkg/pipeline"
	"github.com/matzehuels/mealcycle/pkg/render"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// Server serves the HTTP API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server backed by runner. A nil logger uses log.Default().
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(logger)
	}
	return &Server{runner: runner, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/extend", s.handleExtend)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// extendRequest is the body of POST /v1/extend.
type extendRequest struct {
	Meals    []meal.Meal `json:"meals"`
	Target   *int        `json:"target"` // nil means pipeline.DefaultTarget
	Sort     bool        `json:"sort"`
	Strategy string      `json:"strategy"`
	Period   int         `json:"period"`
	Strict   bool        `json:"strict"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleExtend(w http.ResponseWriter, r *http.Request) {
	var req extendRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request: %v", err))
		return
	}
	if len(req.Meals) == 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeEmptySource, "meals must not be empty"))
		return
	}
	for i, m := range req.Meals {
		if err := errors.ValidateMealName(m.Name); err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidName, err, "meal %d: %s", i, errors.UserMessage(err)))
			return
		}
	}

	target := pipeline.DefaultTarget
	if req.Target != nil {
		target = *req.Target
	}
	opts := pipeline.Options{
		Meals:    req.Meals,
		Target:   target,
		Sort:     req.Sort,
		Strategy: req.Strategy,
		Period:   req.Period,
		Strict:   req.Strict,
		Format:   render.FormatJSON,
	}
	p, err := s.runner.Plan(r.Context(), &opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, render.NewDocument(p))
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "err", err)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

// statusFor maps an error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.IsInputError(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodePlacementIncomplete):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// logRequests logs each request and forwards it to the HTTP observability
// hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, elapsed)
		s.logger.Debug("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", elapsed,
			"request_id", middleware.GetReqID(r.Context()))
	})
}
