package log

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &zapLogger{sugar: zap.New(core).Sugar()}

	ctx := context.WithValue(context.Background(), RequestIDKey{}, "req-1")
	l.Infof(ctx, "booked %d", 1)
	l.Warn(context.Background(), "no id")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "booked 1" || entries[0].ContextMap()["request_id"] != "req-1" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Errorf("request_id should be absent without one in ctx")
	}
}

func TestInit(t *testing.T) {
	tests := []ZapConfig{
		{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "warn", Mode: ModeProduction, Encoding: EncodingJSON},
		{Level: "nonsense"},
	}
	for _, cfg := range tests {
		if l := Init(cfg); l == nil {
			t.Errorf("Init(%+v) returned nil", cfg)
		}
	}
	NewNop().Info(context.Background(), "discarded")
}
