package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// recordSpans installs an in-memory tracer provider for the duration of the test.
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return rec
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
		{0.5, "TraceIDRatioBased{0.5}"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.rate), func(t *testing.T) {
			if got := sampler(tc.rate).Description(); got != tc.want {
				t.Errorf("sampler(%v) = %q, want %q", tc.rate, got, tc.want)
			}
		})
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource("streams-demo", "1.2.3", "test")
	if err != nil {
		t.Fatalf("newResource: %v", err)
	}
	v, ok := res.Set().Value("service.name")
	if !ok || v.AsString() != "streams-demo" {
		t.Errorf("service.name = %v", v)
	}
	v, ok = res.Set().Value("service.version")
	if !ok || v.AsString() != "1.2.3" {
		t.Errorf("service.version = %v", v)
	}
}

func TestStartSpan(t *testing.T) {
	rec := recordSpans(t)

	ctx, span := StartSpan(context.Background(), "test-operation")
	if !SpanFromContext(ctx).SpanContext().Equal(span.SpanContext()) {
		t.Error("expected span to be stored in context")
	}
	span.End()

	ended := rec.Ended()
	if len(ended) != 1 || ended[0].Name() != "test-operation" {
		t.Fatalf("expected one ended span named test-operation, got %d", len(ended))
	}
}

func TestSetSpanAttribute(t *testing.T) {
	rec := recordSpans(t)

	ctx, span := StartSpan(context.Background(), "test-attrs")
	SetSpanAttribute(ctx, "string-key", "value")
	SetSpanAttribute(ctx, "int-key", 42)
	SetSpanAttribute(ctx, "int64-key", int64(100))
	SetSpanAttribute(ctx, "float-key", 3.14)
	SetSpanAttribute(ctx, "bool-key", true)
	SetSpanAttribute(ctx, "string-slice-key", []string{"a", "b"})
	SetSpanAttribute(ctx, "unsupported-key", struct{}{})
	span.End()

	attrs := rec.Ended()[0].Attributes()
	if v, ok := attrValue(attrs, "string-key"); !ok || v.AsString() != "value" {
		t.Errorf("string-key = %v", v)
	}
	if v, ok := attrValue(attrs, "int-key"); !ok || v.AsInt64() != 42 {
		t.Errorf("int-key = %v", v)
	}
	if _, ok := attrValue(attrs, "unsupported-key"); ok {
		t.Error("unsupported types should be ignored")
	}
	if len(attrs) != 6 {
		t.Errorf("expected 6 attributes, got %d", len(attrs))
	}
}

func TestSetSpanHelpersWithoutSpan(t *testing.T) {
	// background context carries a no-op span; must not panic
	ctx := context.Background()
	SetSpanAttribute(ctx, "key", "value")
	SetSpanError(ctx, fmt.Errorf("no span error"))
}

func TestSetSpanError(t *testing.T) {
	rec := recordSpans(t)

	ctx, span := StartSpan(context.Background(), "test-error")
	SetSpanError(ctx, fmt.Errorf("test error"))
	span.End()

	events := rec.Ended()[0].Events()
	if len(events) != 1 || events[0].Name != "exception" {
		t.Errorf("expected one exception event, got %v", events)
	}
}

func TestNewRunMetricsNoop(t *testing.T) {
	metrics, err := NewRunMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	ctx := context.Background()
	metrics.RecordStart(ctx)
	metrics.RecordEnd(ctx, "grouping", "ok", 6, 10*time.Millisecond)
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	out := make(map[string]metricdata.Aggregation)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func TestRunMetricsRecorded(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	metrics, err := NewRunMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewRunMetrics: %v", err)
	}

	ctx := context.Background()
	metrics.RecordStart(ctx)
	metrics.RecordEnd(ctx, "grouping", "ok", 6, 20*time.Millisecond)
	metrics.RecordStart(ctx)
	metrics.RecordEnd(ctx, "grouping", "ok", 4, 10*time.Millisecond)

	data := collectMetrics(t, reader)

	runs, ok := data[MetricRuns].(metricdata.Sum[int64])
	if !ok || len(runs.DataPoints) != 1 || runs.DataPoints[0].Value != 2 {
		t.Errorf("demo.runs = %+v", data[MetricRuns])
	}
	elements, ok := data[MetricElements].(metricdata.Sum[int64])
	if !ok || len(elements.DataPoints) != 1 || elements.DataPoints[0].Value != 10 {
		t.Errorf("demo.elements = %+v", data[MetricElements])
	}
	active, ok := data[MetricActive].(metricdata.Sum[int64])
	if !ok || len(active.DataPoints) != 1 || active.DataPoints[0].Value != 0 {
		t.Errorf("demo.active = %+v", data[MetricActive])
	}
	duration, ok := data[MetricDuration].(metricdata.Histogram[float64])
	if !ok || len(duration.DataPoints) != 1 || duration.DataPoints[0].Count != 2 {
		t.Errorf("demo.duration = %+v", data[MetricDuration])
	}
}

func TestProblemContext(t *testing.T) {
	rec := recordSpans(t)

	pc := NewProblemContext("run-1", 4, "top-n", nil)
	if pc.StartTime.IsZero() {
		t.Error("expected StartTime to be set")
	}

	ctx, span := pc.Start(context.Background())
	if got := ProblemContextFromContext(ctx); got != pc {
		t.Fatal("expected problem context in returned context")
	}
	pc.End(ctx, span, 3, nil)

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected one span, got %d", len(ended))
	}
	s := ended[0]
	if s.Name() != SpanProblem {
		t.Errorf("span name = %q", s.Name())
	}
	if v, _ := attrValue(s.Attributes(), AttrProblemName); v.AsString() != "top-n" {
		t.Errorf("problem.name = %v", v)
	}
	if v, _ := attrValue(s.Attributes(), AttrElements); v.AsInt64() != 3 {
		t.Errorf("elements = %v", v)
	}
	if v, _ := attrValue(s.Attributes(), AttrStatus); v.AsString() != "ok" {
		t.Errorf("status = %v", v)
	}
}

func TestProblemContextError(t *testing.T) {
	rec := recordSpans(t)

	metrics, _ := NewRunMetrics(noop.NewMeterProvider().Meter("test"))
	pc := NewProblemContext("run-1", 9, "duplicates", metrics)
	ctx, span := pc.Start(context.Background())
	pc.End(ctx, span, 0, fmt.Errorf("something failed"))

	s := rec.Ended()[0]
	if s.Status().Code != codes.Error {
		t.Errorf("status code = %v", s.Status().Code)
	}
	if v, _ := attrValue(s.Attributes(), AttrStatus); v.AsString() != "failed" {
		t.Errorf("status = %v", v)
	}
}

func TestProblemContextFromContext_NotSet(t *testing.T) {
	if ProblemContextFromContext(context.Background()) != nil {
		t.Error("expected nil when problem context not set")
	}
}

func TestProblemContext_Duration(t *testing.T) {
	pc := NewProblemContext("run-1", 1, "grouping", nil)
	pc.StartTime = time.Now().Add(-50 * time.Millisecond)

	duration := pc.Duration()
	if duration < 45*time.Millisecond || duration > 500*time.Millisecond {
		t.Errorf("expected duration around 50ms, got %v", duration)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Endpoint != "localhost:4318" || cfg.SampleRate != 1.0 || cfg.MetricInterval != 15*time.Second {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestSetupDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{}, "svc", "dev", "test")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestSetupEnabled(t *testing.T) {
	prevTP, prevMP := otel.GetTracerProvider(), otel.GetMeterProvider()
	defer func() {
		otel.SetTracerProvider(prevTP)
		otel.SetMeterProvider(prevMP)
	}()

	cfg := Config{Enabled: true, Insecure: true}
	cfg.ApplyDefaults()

	// Exporters connect lazily, so setup succeeds without a collector.
	shutdown, err := Setup(context.Background(), cfg, "svc", "dev", "test")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	// Flushing to a missing collector may fail; only the call path matters here.
	_ = shutdown(ctx)
}

func TestInitTracerSamplingRates(t *testing.T) {
	prev := otel.GetTracerProvider()
	defer otel.SetTracerProvider(prev)

	for _, rate := range []float64{1.0, 0.0, 0.5} {
		cfg := DefaultTracerConfig("test")
		cfg.SampleRate = rate
		tp, err := InitTracer(context.Background(), &cfg)
		if err != nil {
			t.Fatalf("InitTracer(%v): %v", rate, err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		_ = tp.Shutdown(ctx)
		cancel()
	}
}

func TestInitMeter(t *testing.T) {
	prev := otel.GetMeterProvider()
	defer otel.SetMeterProvider(prev)

	cfg := DefaultMeterConfig("test")
	cfg.Insecure = false
	cfg.Interval = 0
	mp, err := InitMeter(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("InitMeter: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = mp.Shutdown(ctx)
}
