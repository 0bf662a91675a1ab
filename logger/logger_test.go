package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/stringr/errors"
)

func newJSONLogger(t *testing.T, level string) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: level, Format: "json"}, "test-svc", &buf)
	return l, &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	line := strings.TrimSpace(buf.String())
	if err := json.Unmarshal([]byte(line), &out); err != nil {
		t.Fatalf("failed to decode log line %q: %v", line, err)
	}
	return out
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	l := New(&Config{Level: "invalid-level", Format: "json", Output: "stdout"}, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
	if got := l.GetLogger().GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("expected fallback to info level, got %s", got)
	}
}

func TestJSONOutputCarriesFields(t *testing.T) {
	l, buf := newJSONLogger(t, "debug")
	l.WithComponent("wildcard").Debug("pattern compiled", Fields(FieldPattern, "*.log", FieldPatternLen, 5))

	out := decodeLine(t, buf)
	if out["message"] != "pattern compiled" {
		t.Errorf("expected message 'pattern compiled', got %v", out["message"])
	}
	if out[FieldComponent] != "wildcard" {
		t.Errorf("expected component=wildcard, got %v", out[FieldComponent])
	}
	if out[FieldPattern] != "*.log" {
		t.Errorf("expected pattern=*.log, got %v", out[FieldPattern])
	}
	if out[FieldPatternLen] != float64(5) {
		t.Errorf("expected pattern_len=5, got %v", out[FieldPatternLen])
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newJSONLogger(t, "warn")
	l.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered at warn level, got %q", buf.String())
	}
	if l.Enabled(zerolog.DebugLevel) {
		t.Error("expected debug to be disabled at warn level")
	}
	if !l.Enabled(zerolog.ErrorLevel) {
		t.Error("expected error to be enabled at warn level")
	}
	l.Warn("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("expected warn message in output, got %q", buf.String())
	}
}

func TestWithContextAddsSpanIDs(t *testing.T) {
	l, buf := newJSONLogger(t, "info")
	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	l.WithContext(ctx).Info("traced")
	out := decodeLine(t, buf)
	if out[FieldTraceID] != traceID.String() {
		t.Errorf("expected trace_id %s, got %v", traceID, out[FieldTraceID])
	}
	if out[FieldSpanID] != spanID.String() {
		t.Errorf("expected span_id %s, got %v", spanID, out[FieldSpanID])
	}
}

func TestWithContextWithoutSpan(t *testing.T) {
	l := NewDefault("test")
	if got := l.WithContext(context.Background()); got != l {
		t.Error("expected the same logger when ctx has no span")
	}
}

func TestWithFieldsAndError(t *testing.T) {
	l, buf := newJSONLogger(t, "info")
	l.WithFields(map[string]interface{}{FieldWidth: 2}).WithError(fmt.Errorf("boom")).Error("chunk failed")

	out := decodeLine(t, buf)
	if out[FieldWidth] != float64(2) {
		t.Errorf("expected width=2, got %v", out[FieldWidth])
	}
	if out["error"] != "boom" {
		t.Errorf("expected error=boom, got %v", out["error"])
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing")
	if l.Enabled(zerolog.ErrorLevel) {
		t.Error("expected Nop logger to be disabled")
	}
}

func TestInit(t *testing.T) {
	cfg := Config{Level: "debug", Format: "console", Output: "stdout", ServiceName: "init-test"}
	Init(&cfg)
	gl := GetGlobalLogger()
	if gl == nil {
		t.Fatal("expected global logger to be set after Init")
	}
	if gl.service != "init-test" {
		t.Errorf("expected service 'init-test', got %q", gl.service)
	}
	if !cfg.Timestamp {
		t.Error("expected Init to apply defaults")
	}
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}
}

func TestSetGlobalLogger(t *testing.T) {
	l := NewDefault("custom")
	SetGlobalLogger(l)
	if GetGlobalLogger() != l {
		t.Error("expected SetGlobalLogger to set the global logger")
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	Init(&Config{Level: "debug", Format: "console", Output: "stdout", NoColor: true})
	// These should not panic
	Debug("debug msg")
	Info("info msg")
	Warn("warn msg")
	Error("error msg")
	if WithComponent("config") == nil {
		t.Fatal("expected non-nil logger from WithComponent")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stdout"}, false},
		{"valid console", Config{Level: "debug", Format: "console", Output: "stderr"}, false},
		{"invalid level", Config{Level: "bad", Format: "json", Output: "stdout"}, true},
		{"invalid format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
		{"invalid output", Config{Level: "info", Format: "json", Output: "file"}, true},
		{"empty level", Config{Format: "json", Output: "stdout"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfigValidateReportsEveryField(t *testing.T) {
	err := (&Config{Level: "loud", Format: "xml", Output: "file"}).Validate()
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	for _, want := range []string{`level: must be one of`, `format: must be one of`, `output: must be one of: stdout, stderr (got "file")`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %q", want, err.Error())
		}
	}
}

func TestConsoleLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, "stringr", &buf)
	l.Info("hello")
	if !strings.Contains(buf.String(), "[STR][INF]") {
		t.Errorf("expected service and level tags, got %q", buf.String())
	}
}

func TestRegisterAndGet(t *testing.T) {
	l := NewDefault("custom-component")
	Register("my-component", l)

	if Get("my-component") != l {
		t.Error("expected Get to return the registered logger")
	}
}

func TestGetUnregistered(t *testing.T) {
	if Get("unregistered-component") == nil {
		t.Fatal("expected non-nil logger for unregistered component")
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		name     string
		input    []interface{}
		expected map[string]interface{}
	}{
		{"key-value pairs", []interface{}{"op", "match", "len", 42}, map[string]interface{}{"op": "match", "len": 42}},
		{"odd number of args", []interface{}{"op", "match", "trailing"}, map[string]interface{}{"op": "match"}},
		{"empty", []interface{}{}, map[string]interface{}{}},
		{"non-string key skipped", []interface{}{123, "value", "key", "val"}, map[string]interface{}{"key": "val"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Fields(tc.input...)
			if len(result) != len(tc.expected) {
				t.Errorf("expected %d fields, got %d", len(tc.expected), len(result))
			}
			for k, v := range tc.expected {
				if result[k] != v {
					t.Errorf("Fields[%q] = %v, expected %v", k, result[k], v)
				}
			}
		})
	}
}

func TestDurationAndErrorFields(t *testing.T) {
	d := DurationFields("load", 150*time.Millisecond)
	if d[FieldOperation] != "load" {
		t.Errorf("expected operation 'load', got %v", d[FieldOperation])
	}
	if d[FieldDuration] != int64(150) {
		t.Errorf("expected duration 150, got %v", d[FieldDuration])
	}

	merged := MergeWithError(nil, fmt.Errorf("x"))
	if merged[FieldError] != "x" {
		t.Errorf("expected error field from nil map, got %v", merged[FieldError])
	}
}
