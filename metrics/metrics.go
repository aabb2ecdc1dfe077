//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysisRequestsTotal counts analysis requests by outcome.
	AnalysisRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tactics_analysis_requests_total",
			Help: "Total number of analysis requests by outcome",
		},
		[]string{"outcome"},
	)

	// AnalysisDuration observes end-to-end analysis latency in seconds.
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "tactics_analysis_duration_seconds",
			Help: "Duration of analysis requests in seconds",
		},
	)

	// ToolCallsTotal counts tool invocations by tool name.
	ToolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tactics_tool_calls_total",
			Help: "Total number of tool invocations by tool name",
		},
		[]string{"tool"},
	)

	// ToolFallbackTotal counts lookups answered from the synthetic catalog.
	ToolFallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tactics_tool_fallback_total",
			Help: "Total number of tool lookups answered with synthetic data",
		},
		[]string{"tool"},
	)

	// ModelCallsTotal counts model invocations by provider and outcome.
	ModelCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tactics_model_calls_total",
			Help: "Total number of model invocations by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	// HybridFallbackTotal counts requests answered by the keyword path.
	HybridFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tactics_hybrid_fallback_total",
			Help: "Total number of requests answered by the keyword fallback path",
		},
	)

	// HTTPRequestsTotal counts HTTP requests by route, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tactics_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration observes HTTP request latency in seconds by route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "tactics_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds by route",
		},
		[]string{"route"},
	)
)
