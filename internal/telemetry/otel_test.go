package telemetry

import (
	"context"
	"testing"

	"github.com/blaisecz/questionnaire-report/internal/config"
)

func TestInitTracer_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), &config.Config{})
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestInitTracer_Enabled(t *testing.T) {
	cfg := &config.Config{
		OTLPEndpoint:    "http://localhost:4318",
		OTelServiceName: "questionnaire-report-test",
		OTelEnvironment: "test",
	}
	shutdown, err := InitTracer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
