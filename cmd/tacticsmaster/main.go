//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

// Package main runs the Tactics Master analysis service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bahadurahmedkhan/TacticsMaster/agent"
	"github.com/Bahadurahmedkhan/TacticsMaster/config"
	"github.com/Bahadurahmedkhan/TacticsMaster/log"
	"github.com/Bahadurahmedkhan/TacticsMaster/model"
	"github.com/Bahadurahmedkhan/TacticsMaster/model/gemini"
	"github.com/Bahadurahmedkhan/TacticsMaster/model/openai"
	"github.com/Bahadurahmedkhan/TacticsMaster/server"
	"github.com/Bahadurahmedkhan/TacticsMaster/telemetry/trace"
	"github.com/Bahadurahmedkhan/TacticsMaster/tool/cricket"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)
	log.Infof("Starting %s v%s", cfg.AppName, cfg.Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Trace.Enabled {
		clean, err := trace.Start(ctx,
			trace.WithEndpoint(cfg.Trace.Endpoint),
			trace.WithProtocol(cfg.Trace.Protocol),
		)
		if err != nil {
			log.Fatalf("Failed to start tracing: %v", err)
		}
		defer func() {
			if err := clean(); err != nil {
				log.Errorf("Trace shutdown error: %v", err)
			}
		}()
	}

	provider := cricket.NewAPIProvider(
		cricket.WithBaseURL(cfg.Cricket.BaseURL),
		cricket.WithAPIKey(cfg.Cricket.APIKey),
		cricket.WithHTTPClient(&http.Client{Timeout: cfg.Cricket.Timeout}),
	)
	registry, err := cricket.NewToolSet(provider)
	if err != nil {
		log.Fatalf("Failed to build cricket tools: %v", err)
	}

	opts := []agent.Option{agent.WithRegistry(registry)}
	if m := buildModel(ctx, cfg); m != nil {
		opts = append(opts, agent.WithModel(m))
	} else {
		log.Warn("No model configured, answering with keyword analysis only")
	}

	tacticsAgent, err := agent.New(cfg, opts...)
	if err != nil {
		log.Fatalf("Failed to create agent: %v", err)
	}

	srv, err := server.New(cfg, tacticsAgent)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	go func() {
		log.Infof("Listening on http://%s", cfg.Address())
		if err := srv.Start(); err != nil {
			log.Errorf("Server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown error: %v", err)
	}
	log.Info("Server stopped")
}

// buildModel constructs the configured language model. A missing API key is
// not fatal: the agent still serves requests through keyword analysis.
func buildModel(ctx context.Context, cfg *config.Config) model.Model {
	switch cfg.Model.Provider {
	case config.ProviderGemini:
		if cfg.Model.GeminiAPIKey == "" {
			log.Warn("GEMINI_API_KEY is not set")
			return nil
		}
		m, err := gemini.New(ctx, cfg.Model.GeminiModel, gemini.WithAPIKey(cfg.Model.GeminiAPIKey))
		if err != nil {
			log.Errorf("Failed to create Gemini model: %v", err)
			return nil
		}
		return m
	case config.ProviderOpenAI:
		if cfg.Model.OpenAIAPIKey == "" {
			log.Warn("OPENAI_API_KEY is not set")
			return nil
		}
		return openai.New(cfg.Model.OpenAIModel, openai.WithAPIKey(cfg.Model.OpenAIAPIKey))
	default:
		log.Warnf("Unknown model provider %q", cfg.Model.Provider)
		return nil
	}
}
