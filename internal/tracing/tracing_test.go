package tracing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

func TestInit_RejectsBadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "Fail_EmptyEndpoint",
			cfg:  Config{},
		},
		{
			name: "Fail_NegativeRatio",
			cfg:  Config{Endpoint: "localhost:4318", SampleRatio: -0.5},
		},
		{
			name: "Fail_RatioAboveOne",
			cfg:  Config{Endpoint: "localhost:4318", SampleRatio: 2},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			shutdown, err := Init(context.Background(), tt.cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, shutdown)
		})
	}
}

func TestNewProvider_TagsSpansWithService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	exp := tracetest.NewInMemoryExporter()
	tp, err := NewProvider(ctx, Config{
		ServiceName:    "webserver-test",
		ServiceVersion: "v1.2.3",
		BatchTimeout:   10 * time.Millisecond,
	}, exp)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(ctx, "connection.handle")
	span.End()
	require.NoError(t, tp.ForceFlush(ctx))

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "connection.handle", spans[0].Name)

	attrs := spans[0].Resource.Set()
	name, ok := attrs.Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, "webserver-test", name.AsString())
	version, ok := attrs.Value(semconv.ServiceVersionKey)
	require.True(t, ok)
	assert.Equal(t, "v1.2.3", version.AsString())

	require.NoError(t, tp.Shutdown(ctx))
}

func TestNewProvider_Defaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	exp := tracetest.NewInMemoryExporter()
	tp, err := NewProvider(ctx, Config{}, exp)
	require.NoError(t, err)
	defer func() { _ = tp.Shutdown(ctx) }()

	_, span := tp.Tracer("test").Start(ctx, "workerpool.job")
	span.End()
	require.NoError(t, tp.ForceFlush(ctx))

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	attrs := spans[0].Resource.Set()
	assert.Contains(t, attrs.ToSlice(), semconv.ServiceName(DefaultServiceName))
	assert.Contains(t, attrs.ToSlice(), attribute.String(string(semconv.ServiceVersionKey), BuildVersion()))
}

func TestBuildVersion(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, BuildVersion())
}
