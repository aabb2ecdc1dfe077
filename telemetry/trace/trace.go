//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

// Package trace wires OpenTelemetry tracing for TacticsMaster. Until Start
// is called the global Tracer is a noop, so instrumented code needs no
// enabled/disabled branching.
package trace

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Service identity reported on every span.
const (
	ServiceName      = "tactics-master"
	ServiceVersion   = "1.0.0"
	ServiceNamespace = "tacticsmaster"
	InstrumentName   = "tacticsmaster"
)

// Span names used by the orchestrator.
const (
	SpanNameCallLLM           = "call_llm"
	SpanNamePrefixExecuteTool = "execute_tool"
)

// Supported OTLP transport protocols.
const (
	ProtocolGRPC = "grpc"
	ProtocolHTTP = "http"
)

// TracerProvider is the global tracer provider, noop until Start succeeds.
var TracerProvider trace.TracerProvider = noop.NewTracerProvider()

// Tracer is the global tracer instance.
var Tracer trace.Tracer = TracerProvider.Tracer("")

// Option configures the exporter set up by Start.
type Option func(*options)

type options struct {
	endpoint string
	protocol string
	headers  map[string]string
}

// WithEndpoint sets the collector endpoint ("host:port", no scheme).
// When unset, OTEL_EXPORTER_OTLP_TRACES_ENDPOINT and
// OTEL_EXPORTER_OTLP_ENDPOINT are consulted before the localhost default.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithProtocol selects the OTLP transport, "grpc" (default) or "http".
func WithProtocol(protocol string) Option {
	return func(o *options) {
		o.protocol = protocol
	}
}

// WithHeaders sets headers to include in export requests.
func WithHeaders(headers map[string]string) Option {
	return func(o *options) {
		o.headers = headers
	}
}

// Start initializes the OTLP exporter and swaps the global Tracer in. The
// returned clean function flushes and shuts the provider down.
func Start(ctx context.Context, opts ...Option) (clean func() error, err error) {
	o := &options{protocol: ProtocolGRPC}
	for _, opt := range opts {
		opt(o)
	}
	if o.endpoint == "" {
		o.endpoint = defaultEndpoint(o.protocol)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNamespace(ServiceNamespace),
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	var shutdown func(context.Context) error
	switch o.protocol {
	case ProtocolHTTP:
		shutdown, err = initHTTPTracerProvider(ctx, res, o)
	default:
		shutdown, err = initGRPCTracerProvider(ctx, res, o)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracer provider: %w", err)
	}

	Tracer = otel.Tracer(InstrumentName)
	return func() error {
		if err := shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown TracerProvider: %w", err)
		}
		return nil
	}, nil
}

func defaultEndpoint(protocol string) string {
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"); endpoint != "" {
		return endpoint
	}
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		return endpoint
	}
	if protocol == ProtocolHTTP {
		return "localhost:4318"
	}
	return "localhost:4317"
}

func initGRPCTracerProvider(ctx context.Context, res *resource.Resource, o *options) (
	func(context.Context) error, error) {
	// TLS is recommended in production; the collector is assumed local here.
	conn, err := grpc.NewClient(o.endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to collector: %w", err)
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithGRPCConn(conn),
		otlptracegrpc.WithEndpoint(o.endpoint),
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithHeaders(o.headers),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}
	return setupTracerProvider(res, exporter), nil
}

func initHTTPTracerProvider(ctx context.Context, res *resource.Resource, o *options) (
	func(context.Context) error, error) {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(o.endpoint),
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithHeaders(o.headers),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP trace exporter: %w", err)
	}
	return setupTracerProvider(res, exporter), nil
}

// setupTracerProvider registers the exporter behind a batch span processor
// and installs the provider globally.
func setupTracerProvider(res *resource.Resource, exporter sdktrace.SpanExporter) func(context.Context) error {
	bsp := sdktrace.NewBatchSpanProcessor(exporter)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp),
	)
	TracerProvider = provider
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return provider.Shutdown
}
