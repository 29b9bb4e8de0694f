package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The provider must be shut down on exit to flush metrics.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("component", "metric exporter")
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("component", "resource")
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric instrument names.
const (
	MetricRuns     = "demo.runs"
	MetricElements = "demo.elements"
	MetricDuration = "demo.duration"
	MetricActive   = "demo.active"
)

// RunMetrics holds the instruments recorded for each demo problem run.
type RunMetrics struct {
	runs     metric.Int64Counter
	elements metric.Int64Counter
	duration metric.Float64Histogram
	active   metric.Int64UpDownCounter
}

// NewRunMetrics creates metric instruments on the given meter.
func NewRunMetrics(meter metric.Meter) (*RunMetrics, error) {
	runs, err := meter.Int64Counter(MetricRuns,
		metric.WithDescription("Problems executed, by problem and status"),
	)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("instrument", MetricRuns)
	}

	elements, err := meter.Int64Counter(MetricElements,
		metric.WithDescription("Elements produced by problem pipelines"),
	)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("instrument", MetricElements)
	}

	duration, err := meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Duration of problem runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("instrument", MetricDuration)
	}

	active, err := meter.Int64UpDownCounter(MetricActive,
		metric.WithDescription("Problems currently running"),
	)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("instrument", MetricActive)
	}

	return &RunMetrics{
		runs:     runs,
		elements: elements,
		duration: duration,
		active:   active,
	}, nil
}

// RecordStart increments the active problem count.
func (m *RunMetrics) RecordStart(ctx context.Context) {
	m.active.Add(ctx, 1)
}

// RecordEnd decrements the active count and records a finished problem.
func (m *RunMetrics) RecordEnd(ctx context.Context, problem, status string, elements int64, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(AttrProblemName, problem),
		attribute.String(AttrStatus, status),
	)
	m.active.Add(ctx, -1)
	m.runs.Add(ctx, 1, attrs)
	m.elements.Add(ctx, elements, metric.WithAttributes(attribute.String(AttrProblemName, problem)))
	m.duration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String(AttrProblemName, problem)))
}
