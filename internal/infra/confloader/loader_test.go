package confloader

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

type testConfig struct {
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
	Bench struct {
		Sizes     []int  `koanf:"sizes"`
		Rounds    int    `koanf:"rounds"`
		ValueKind string `koanf:"value_kind"`
	} `koanf:"bench"`
}

func defaults() testConfig {
	var cfg testConfig
	cfg.Log.Level = "info"
	cfg.Bench.Sizes = []int{4, 8, 16, 32}
	cfg.Bench.Rounds = 100
	cfg.Bench.ValueKind = "ulid"
	return cfg
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/config.yaml"),
		WithOverrides(map[string]any{"log.level": "debug"}),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
	if l.overrides["log.level"] != "debug" {
		t.Errorf("overrides = %v", l.overrides)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: warn
bench:
  rounds: 50
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	all := l.All()
	if got := all["log.level"]; got != "warn" {
		t.Errorf("log.level = %v, want %q", got, "warn")
	}
	if got := all["bench.rounds"]; got != 50 {
		t.Errorf("bench.rounds = %v, want 50", got)
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("VECMAP_LOG_LEVEL", "debug")
	t.Setenv("VECMAP_BENCH_VALUE_KIND", "static")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	all := l.All()
	if got := all["log.level"]; got != "debug" {
		t.Errorf("log.level = %v, want %q", got, "debug")
	}
	if got := all["bench.value_kind"]; got != "static" {
		t.Errorf("bench.value_kind = %v, want %q", got, "static")
	}
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_OUTPUT_FORMAT", "json")

	l := NewLoader(WithEnvPrefix("MYAPP_"))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if got := l.All()["output.format"]; got != "json" {
		t.Errorf("output.format = %v, want %q", got, "json")
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()
	data := map[string]any{
		"log.level": "error",
		"debug":     true,
	}
	if err := l.LoadMap(data); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	all := l.All()
	if got := all["log.level"]; got != "error" {
		t.Errorf("log.level = %v, want %q", got, "error")
	}
	if got := all["debug"]; got != true {
		t.Errorf("debug = %v, want true", got)
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
log:
  level: warn
bench:
  rounds: 50
  value_kind: static
`)
	t.Setenv("VECMAP_BENCH_ROUNDS", "75")

	l := NewLoader(
		WithConfigFile(path),
		WithOverrides(map[string]any{"bench.value_kind": "ulid"}),
	)

	cfg := defaults()
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q (file over default)", cfg.Log.Level, "warn")
	}
	if cfg.Bench.Rounds != 75 {
		t.Errorf("Bench.Rounds = %d, want 75 (env over file)", cfg.Bench.Rounds)
	}
	if cfg.Bench.ValueKind != "ulid" {
		t.Errorf("Bench.ValueKind = %q, want %q (override over file)", cfg.Bench.ValueKind, "ulid")
	}
	if !slices.Equal(cfg.Bench.Sizes, []int{4, 8, 16, 32}) {
		t.Errorf("Bench.Sizes = %v, want defaults kept", cfg.Bench.Sizes)
	}
}

func TestLoader_Load_SliceReplacesDefault(t *testing.T) {
	path := writeConfig(t, `
bench:
  sizes: [2]
`)

	cfg := defaults()
	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !slices.Equal(cfg.Bench.Sizes, []int{2}) {
		t.Errorf("Bench.Sizes = %v, want [2]", cfg.Bench.Sizes)
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	cfg := defaults()
	err := NewLoader(WithConfigFile("/nonexistent/config.yaml")).Load(&cfg)
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
	if errors.Is(err, ErrReadBytesNotSupported) {
		t.Errorf("unexpected error kind: %v", err)
	}
}

func TestLoader_All_OnlySetKeys(t *testing.T) {
	path := writeConfig(t, `
bench:
  rounds: 50
`)
	l := NewLoader(
		WithEnvPrefix("VECMAP_TEST_ALL_"),
		WithConfigFile(path),
		WithOverrides(map[string]any{"log.level": "debug"}),
	)

	cfg := defaults()
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	all := l.All()
	if len(all) != 2 {
		t.Errorf("All() = %v, want only bench.rounds and log.level", all)
	}
	if all["bench.rounds"] != 50 || all["log.level"] != "debug" {
		t.Errorf("All() = %v", all)
	}
	if _, ok := all["bench.value_kind"]; ok {
		t.Error("All() should not include defaults")
	}
}

func TestMapProvider(t *testing.T) {
	p := mapProvider{"a.b": 1}

	if _, err := p.ReadBytes(); !errors.Is(err, ErrReadBytesNotSupported) {
		t.Errorf("ReadBytes() error = %v, want ErrReadBytesNotSupported", err)
	}

	m, err := p.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	inner, ok := m["a"].(map[string]any)
	if !ok || inner["b"] != 1 {
		t.Errorf("Read() = %v, want nested map", m)
	}
}
