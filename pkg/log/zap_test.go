package log

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInit(t *testing.T) {
	for _, enc := range []string{EncodingJSON, EncodingConsole} {
		l := Init(ZapConfig{Level: "error", Mode: ModeProduction, Encoding: enc})
		if l == nil {
			t.Fatalf("Init(%s) returned nil", enc)
		}
		ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
		l.Debugf(ctx, "suppressed %d", 1)
	}
}
