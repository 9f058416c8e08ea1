package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default config", DefaultConfig(), false},
		{"text format", Config{Level: "debug", Format: "text"}, false},
		{"console format", Config{Level: "info", Format: "console"}, false},
		{"empty config", Config{}, false},
		{"bad level", Config{Level: "loud"}, true},
		{"bad format", Config{Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("New() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if l == nil {
				t.Fatal("New() returned nil logger")
			}
		})
	}
}

func newBufferLogger(t *testing.T, level string) (Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := New(Config{Level: level, Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return l, &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	return entry
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newBufferLogger(t, "debug")

	tests := []struct {
		level   string
		logFunc func(string, ...any)
	}{
		{"DEBUG", l.Debug},
		{"INFO", l.Info},
		{"WARN", l.Warn},
		{"ERROR", l.Error},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.logFunc("test message", "component", "test-value")

			entry := decode(t, buf)
			if entry["level"] != tt.level {
				t.Errorf("level = %v, want %s", entry["level"], tt.level)
			}
			if entry["msg"] != "test message" {
				t.Errorf("msg = %v, want 'test message'", entry["msg"])
			}
			if entry["component"] != "test-value" {
				t.Errorf("component = %v, want 'test-value'", entry["component"])
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(t, "warn")

	l.Debug("debug message")
	l.Info("info message")
	if buf.Len() > 0 {
		t.Error("Debug/Info messages should be filtered when level is warn")
	}

	l.Warn("warn message")
	if buf.Len() == 0 {
		t.Error("Warn message should be logged")
	}
}

func TestSetLevel(t *testing.T) {
	l, buf := newBufferLogger(t, "error")

	l.Info("info message")
	if buf.Len() > 0 {
		t.Error("Info should be filtered at error level")
	}

	SetLevel("debug")
	l.Info("info message after level change")
	if buf.Len() == 0 {
		t.Error("Info should be logged after level changed to debug")
	}
	if level := GetLevel(); level != "debug" {
		t.Errorf("GetLevel() = %q, want %q", level, "debug")
	}

	// Unknown levels leave the current one alone.
	SetLevel("nonsense")
	if level := GetLevel(); level != "debug" {
		t.Errorf("GetLevel() after bad SetLevel = %q, want %q", level, "debug")
	}
}

func TestRedact_AuthorizationScheme(t *testing.T) {
	l, buf := newBufferLogger(t, "info")

	l.Info("request", "upstream_auth", "Bearer abcdefghijklmnop")

	if got := decode(t, buf)["upstream_auth"]; got != "Bearer abc...nop" {
		t.Errorf("upstream_auth = %v, want %q", got, "Bearer abc...nop")
	}
}

func TestRedact_SensitiveKeys(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"Cookie", "sid=abc", "***REDACTED***"},
		{"set-cookie", "sid=abc", "***REDACTED***"},
		{"db_password", "hunter2", "***REDACTED***"},
		{"Accept", "text/html", "text/html"},
		{"Cookie", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			l, buf := newBufferLogger(t, "info")
			l.Info("attr", tt.key, tt.value)

			if got := decode(t, buf)[tt.key]; got != tt.want {
				t.Errorf("%s = %v, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestRedact_MessageUntouched(t *testing.T) {
	l, buf := newBufferLogger(t, "info")

	l.Info("Basic statistics collected")

	if got := decode(t, buf)["msg"]; got != "Basic statistics collected" {
		t.Errorf("msg = %v, want it unchanged", got)
	}
}

func TestContext(t *testing.T) {
	l, buf := newBufferLogger(t, "info")

	ctx := WithLogger(context.Background(), l)
	ctx = WithRunID(ctx, "01HZX")

	if got := RunIDFromContext(ctx); got != "01HZX" {
		t.Errorf("RunIDFromContext() = %q, want %q", got, "01HZX")
	}

	L(ctx).Info("hello")
	if got := decode(t, buf)["run_id"]; got != "01HZX" {
		t.Errorf("run_id = %v, want %q", got, "01HZX")
	}

	if FromContext(context.Background()) != Default() {
		t.Error("FromContext on an empty context should return Default()")
	}
}
