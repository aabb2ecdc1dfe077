//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

// Package server exposes the tactics advisor over HTTP: analysis and
// report endpoints, batch processing, health probes and Prometheus
// metrics. Request bodies are validated against JSON schemas before any
// agent work starts.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Bahadurahmedkhan/TacticsMaster/agent"
	"github.com/Bahadurahmedkhan/TacticsMaster/config"
	"github.com/Bahadurahmedkhan/TacticsMaster/format"
	"github.com/Bahadurahmedkhan/TacticsMaster/log"
)

// maxBodyBytes caps request bodies before JSON parsing.
const maxBodyBytes = 1 << 20

// readHeaderTimeout bounds how long a client may take to send headers.
const readHeaderTimeout = 10 * time.Second

// Agent is the analysis engine the server fronts.
type Agent interface {
	Analyze(ctx context.Context, query string, matchContext agent.Context) (*format.Response, error)
	ModelAvailable() bool
	Info() agent.Info
}

// Server is the HTTP front end. Construct with New.
type Server struct {
	cfg        *config.Config
	agent      Agent
	router     *mux.Router
	httpServer *http.Server
	limiter    *rateLimiter

	analyzeSchema *gojsonschema.Schema
	batchSchema   *gojsonschema.Schema
	reportSchema  *gojsonschema.Schema

	now func() time.Time
}

// Option configures the Server.
type Option func(*Server)

// WithClock overrides the clock used in timestamps. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New creates the HTTP server for the given agent.
func New(cfg *config.Config, a Agent, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if a == nil {
		return nil, errors.New("agent is required")
	}

	s := &Server{
		cfg:     cfg,
		agent:   a,
		router:  mux.NewRouter(),
		limiter: newRateLimiter(cfg.Server.RateLimitPerMinute, time.Minute),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	var err error
	if s.analyzeSchema, err = buildAnalyzeSchema(cfg.Server.MaxQueryLength); err != nil {
		return nil, err
	}
	if s.batchSchema, err = buildBatchSchema(cfg.Server.MaxQueryLength); err != nil {
		return nil, err
	}
	if s.reportSchema, err = buildReportSchema(cfg.Server.MaxQueryLength); err != nil {
		return nil, err
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
	})
	s.router.Use(c.Handler)
	s.router.Use(requestIDMiddleware)
	s.router.Use(securityHeadersMiddleware)
	s.router.Use(metricsMiddleware)
	s.router.Use(s.rateLimitMiddleware)
	s.router.Use(recoveryMiddleware)
	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:              cfg.Address(),
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s, nil
}

// Handler returns the http.Handler for the server.
func (s *Server) Handler() http.Handler { return s.router }

// Start serves until Shutdown is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	log.Infof("listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Infof("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	s.router.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	s.router.HandleFunc("/analyze/batch", s.handleBatch).Methods(http.MethodPost)
	s.router.HandleFunc("/report", s.handleReport).Methods(http.MethodPost)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/health/liveness", s.handleLiveness).Methods(http.MethodGet)
	s.router.HandleFunc("/health/readiness", s.handleReadiness).Methods(http.MethodGet)
	s.router.HandleFunc("/version", s.handleVersion).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// OPTIONS handlers so the CORS middleware sees pre-flight requests.
	preflight := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	s.router.HandleFunc("/analyze", preflight).Methods(http.MethodOptions)
	s.router.HandleFunc("/analyze/batch", preflight).Methods(http.MethodOptions)
	s.router.HandleFunc("/report", preflight).Methods(http.MethodOptions)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse mirrors the {"detail": ...} error body clients expect.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Detail: detail})
}
