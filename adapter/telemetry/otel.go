package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/n-r-w/db2itx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OtelPrometheus implements ITelemetry with OpenTelemetry spans and Prometheus metrics.
type OtelPrometheus struct {
	tracer trace.Tracer

	requestsTotal   *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

var _ ITelemetry = (*OtelPrometheus)(nil)

// NewOtelPrometheus registers db2itx metrics in reg and creates spans with tracer.
func NewOtelPrometheus(tracer trace.Tracer, reg prometheus.Registerer) *OtelPrometheus {
	return &OtelPrometheus{
		tracer: tracer,
		requestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "db2itx_operations_total",
				Help: "Total number of transaction operations",
			},
			[]string{"operation"}, // begin, commit, rollback, release
		),
		errorsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "db2itx_operation_errors_total",
				Help: "Total number of failed transaction operations",
			},
			[]string{"operation", "kind"},
		),
		requestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db2itx_operation_duration_seconds",
				Help:    "Duration of transaction operations in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"operation"},
		),
	}
}

// StartSpan starts new span.
func (o *OtelPrometheus) StartSpan(ctx context.Context, name string) (context.Context, ISpan) {
	ctx, span := o.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient))
	return ctx, &otelSpan{span: span}
}

// ObserveRequestDuration records operation duration.
func (o *OtelPrometheus) ObserveRequestDuration(_ context.Context, operation string, duration time.Duration) {
	o.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveRequest records operation count.
func (o *OtelPrometheus) ObserveRequest(_ context.Context, operation string) {
	o.requestsTotal.WithLabelValues(operation).Inc()
}

// ObserveRequestError records operation error labeled with its db2itx.ErrorKind.
func (o *OtelPrometheus) ObserveRequestError(_ context.Context, operation string, err error) {
	kind := "other"
	if k, ok := db2itx.KindOf(err); ok {
		kind = k.String()
	}

	o.errorsTotal.WithLabelValues(operation, kind).Inc()
}

type otelSpan struct {
	span trace.Span
}

func (s *otelSpan) AddAttributes(attributes []Attribute) {
	kvs := make([]attribute.KeyValue, 0, len(attributes))
	for _, a := range attributes {
		if a.Key == "error" {
			s.span.SetStatus(codes.Error, fmt.Sprint(a.Value))
		}
		kvs = append(kvs, attribute.String(a.Key, fmt.Sprint(a.Value)))
	}

	s.span.SetAttributes(kvs...)
}

func (s *otelSpan) End() {
	s.span.End()
}
