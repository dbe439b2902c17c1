package tracing

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.uber.org/multierr"
)

const DefaultServiceName = "webserver"

var ErrInvalidConfig = errors.New("invalid tracing config")

type Config struct {
	// Endpoint is the OTLP/HTTP collector address, host:port.
	Endpoint       string
	ServiceName    string
	ServiceVersion string
	// SampleRatio is the fraction of traces kept. Zero means every trace.
	SampleRatio  float64
	BatchTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = BuildVersion()
	}
	if c.SampleRatio == 0 {
		c.SampleRatio = 1
	}
	if c.BatchTimeout == 0 {
		c.BatchTimeout = time.Second
	}
	return c
}

func (c Config) validate() error {
	if c.SampleRatio < 0 || c.SampleRatio > 1 {
		return errors.Wrapf(ErrInvalidConfig, "sample ratio must be within [0, 1], got %v", c.SampleRatio)
	}
	if c.BatchTimeout < 0 {
		return errors.Wrap(ErrInvalidConfig, "batch timeout must be non-negative")
	}
	return nil
}

// BuildVersion reports the main module version stamped by the Go toolchain.
func BuildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "(devel)"
	}
	return info.Main.Version
}

// Init exports spans over OTLP/HTTP to cfg.Endpoint, installs the provider
// globally and returns its shutdown function.
func Init(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	if cfg.Endpoint == "" {
		return nil, errors.Wrap(ErrInvalidConfig, "endpoint is empty")
	}
	if err := cfg.withDefaults().validate(); err != nil {
		return nil, err
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create otlp exporter")
	}

	tp, err := NewProvider(ctx, cfg, exporter)
	if err != nil {
		return nil, multierr.Append(err, exporter.Shutdown(ctx))
	}

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	slog.Info("tracing initialized", "endpoint", cfg.Endpoint, "service", cfg.withDefaults().ServiceName)
	return tp.Shutdown, nil
}

// NewProvider builds a batching tracer provider around exporter, tagged with
// the service name and version from cfg.
func NewProvider(ctx context.Context, cfg Config, exporter sdktrace.SpanExporter) (*sdktrace.TracerProvider, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create resource")
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(cfg.BatchTimeout)),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	), nil
}
