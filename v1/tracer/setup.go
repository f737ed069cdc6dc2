package tracer

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config holds the tracing exporter settings.
type Config struct {
	// Endpoint of the OTLP HTTP collector, host:port without scheme.
	Endpoint string `yaml:"endpoint" env:"TRACING_ENDPOINT"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure" env:"TRACING_INSECURE"`

	// ServiceName identifies this process in emitted spans.
	ServiceName string `yaml:"service_name" env:"TRACING_SERVICE_NAME"`

	// SampleRatio is the fraction of traces to sample, 0..1. Zero means 1.
	SampleRatio float64 `yaml:"sample_ratio" env:"TRACING_SAMPLE_RATIO"`
}

// Tracer owns the OpenTelemetry tracer provider for the process.
// Construction installs the provider globally, so components obtain spans
// through otel.Tracer without depending on this package.
type Tracer struct {
	tracer *sdktrace.TracerProvider
}

// NewClient builds an OTLP HTTP exporter and installs a tracer provider
// configured with the given service name and sample ratio.
func NewClient(cfg Config) (*Tracer, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("tracer: missing endpoint")
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(opts...))
	if err != nil {
		return nil, fmt.Errorf("tracer: failed to create OTLP exporter: %w", err)
	}

	ratio := cfg.SampleRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("tracer: failed to build resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)

	otel.SetTracerProvider(provider)

	return &Tracer{tracer: provider}, nil
}
