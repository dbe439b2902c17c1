package tracing

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// JobTracer records one span per executed job. It implements
// workerpool.Observer.
type JobTracer struct {
	tracer trace.Tracer

	mu    sync.Mutex
	spans map[int]trace.Span
}

func NewJobTracer(tp trace.TracerProvider) *JobTracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &JobTracer{
		tracer: tp.Tracer("webserver-workerpool"),
		spans:  make(map[int]trace.Span),
	}
}

func (j *JobTracer) WorkerStarted(int) {}

func (j *JobTracer) JobStarted(id int) {
	_, span := j.tracer.Start(context.Background(), "workerpool.job",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.Int("worker.id", id)),
	)

	j.mu.Lock()
	j.spans[id] = span
	j.mu.Unlock()
}

func (j *JobTracer) JobFinished(id int, elapsed time.Duration, err error) {
	j.mu.Lock()
	span, ok := j.spans[id]
	delete(j.spans, id)
	j.mu.Unlock()
	if !ok {
		return
	}

	span.SetAttributes(attribute.Int64("job.elapsed_ms", elapsed.Milliseconds()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func (j *JobTracer) WorkerStopped(int) {}
