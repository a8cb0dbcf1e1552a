package observability

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "github.com/spec-kit/edudigital"

// Metrics records HTTP and authorization counters. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	provider     *sdkmetric.MeterProvider
	requests     metric.Int64Counter
	errors       metric.Int64Counter
	duration     metric.Float64Histogram
	authOutcomes metric.Int64Counter
}

// NewMetrics wires an OpenTelemetry meter to the Prometheus exporter, which
// registers with the default Prometheus registry.
func NewMetrics() (*Metrics, error) {
	exporter, err := otelprom.New()
	if err != nil {
		return nil, err
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	m, err := newMetrics(provider.Meter(meterName))
	if err != nil {
		return nil, err
	}
	m.provider = provider
	return m, nil
}

// NewNoopMetrics returns metrics that discard every measurement.
func NewNoopMetrics() *Metrics {
	m, _ := newMetrics(noop.NewMeterProvider().Meter(meterName))
	return m
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	requests, err := meter.Int64Counter(
		"http.server.requests",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter(
		"http.server.errors",
		metric.WithDescription("HTTP requests that ended in an error response"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"http.server.duration_ms",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	authOutcomes, err := meter.Int64Counter(
		"auth.guard.outcomes",
		metric.WithDescription("Authorization guard decisions by outcome"),
		metric.WithUnit("{decision}"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{requests: requests, errors: errs, duration: duration, authOutcomes: authOutcomes}, nil
}

// RecordRequest counts a finished request.
func (m *Metrics) RecordRequest(ctx context.Context, route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	opt := metric.WithAttributes(
		attribute.String("http.route", route),
		attribute.String("http.method", method),
		attribute.String("http.status_code", strconv.Itoa(status)),
	)
	m.requests.Add(ctx, 1, opt)
	m.duration.Record(ctx, float64(elapsed.Microseconds())/1000, opt)
}

// RecordError counts an error response by its domain code.
func (m *Metrics) RecordError(ctx context.Context, route, method, code string) {
	if m == nil {
		return
	}
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.route", route),
		attribute.String("http.method", method),
		attribute.String("error.code", code),
	))
}

// RecordAuthOutcome counts a guard decision.
func (m *Metrics) RecordAuthOutcome(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.authOutcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// Shutdown flushes the meter provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m == nil || m.provider == nil {
		return nil
	}
	return m.provider.Shutdown(ctx)
}
