package telemetry

import (
	"context"
	"testing"
)

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "test.span")
	defer span.End()

	// Without Setup the global provider hands out non-recording spans.
	if span.SpanContext().IsValid() {
		t.Error("span context should be invalid before Setup")
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop.span")
	defer span.End()

	if span.IsRecording() {
		t.Error("no-op spans should not record")
	}
}

func TestConfigured(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	if Configured() {
		t.Error("no endpoint set, Configured should be false")
	}

	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "https://collector.example:4318")
	if !Configured() {
		t.Error("traces endpoint set, Configured should be true")
	}
}
