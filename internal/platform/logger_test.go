package platform

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "", want: slog.LevelInfo},
		{input: "info", want: slog.LevelInfo},
		{input: "DEBUG", want: slog.LevelDebug},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "trace", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLogLevel(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("expected %v, got %v for %q", tt.want, got, tt.input)
		}
	}
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    LogFormat
		wantErr bool
	}{
		{input: "", want: LogFormatText},
		{input: "text", want: LogFormatText},
		{input: "JSON", want: LogFormatJSON},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLogFormat(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("expected %v, got %v for %q", tt.want, got, tt.input)
		}
	}
}

func TestConfigureLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := ConfigureLogger(LoggerOptions{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("ConfigureLogger returned error: %v", err)
	}

	logger.Debug("probe", "k", "v")
	if !strings.Contains(buf.String(), `"msg":"probe"`) {
		t.Fatalf("expected json log line, got %q", buf.String())
	}
}

func TestConfigureLoggerRejectsBadLevel(t *testing.T) {
	if _, err := ConfigureLogger(LoggerOptions{Level: "loud", Format: "text", Output: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for invalid level")
	}
}
