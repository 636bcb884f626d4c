package observability

import (
	"context"
	"testing"
)

func TestInitTracingDisabledByDefault(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "")
	if shutdown := InitTracing(context.Background(), nil, TracingConfig{}); shutdown != nil {
		t.Fatal("expected no tracer provider when OTEL_ENABLED is unset")
	}
}
