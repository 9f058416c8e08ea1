// Package bench runs the header-map benchmark.
package bench

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for configuration validation.
var (
	ErrInvalidConfig    = errors.New("bench: invalid config")
	ErrUnknownContender = errors.New("bench: unknown contender")
)

// Value kinds for generated header values.
const (
	ValueKindULID   = "ulid"
	ValueKindStatic = "static"
)

// Output formats understood by the CLI.
var outputFormats = []string{"table", "json", "yaml"}

// Config is the full tool configuration, loaded by confloader.
type Config struct {
	Log    LogSection    `koanf:"log" yaml:"log" json:"log"`
	Bench  BenchSection  `koanf:"bench" yaml:"bench" json:"bench"`
	Output OutputSection `koanf:"output" yaml:"output" json:"output"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" yaml:"level" json:"level"`
	Format string `koanf:"format" yaml:"format" json:"format"`
}

// BenchSection configures the benchmark itself.
type BenchSection struct {
	// Sizes lists the number of distinct header names per map.
	Sizes []int `koanf:"sizes" yaml:"sizes" json:"sizes"`
	// Rounds is the number of timed rounds per (contender, size, op).
	Rounds int `koanf:"rounds" yaml:"rounds" json:"rounds"`
	// Contenders lists the stores to compare, by name.
	Contenders []string `koanf:"contenders" yaml:"contenders" json:"contenders"`
	// Seed makes generated values reproducible.
	Seed int64 `koanf:"seed" yaml:"seed" json:"seed"`
	// ValueKind is "ulid" (request-id like values) or "static".
	ValueKind string `koanf:"value_kind" yaml:"value_kind" json:"value_kind"`
}

// OutputSection configures result reporting.
type OutputSection struct {
	Format      string `koanf:"format" yaml:"format" json:"format"`
	MetricsFile string `koanf:"metrics_file" yaml:"metrics_file" json:"metrics_file"`
}

// DefaultConfig returns the configuration used when no source sets a value.
func DefaultConfig() Config {
	return Config{
		Log: LogSection{
			Level:  "info",
			Format: "json",
		},
		Bench: BenchSection{
			Sizes:      []int{4, 8, 16, 32},
			Rounds:     200,
			Contenders: Contenders(),
			Seed:       1,
			ValueKind:  ValueKindULID,
		},
		Output: OutputSection{
			Format: "table",
		},
	}
}

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Bench.Sizes) == 0 {
		errs = append(errs, fmt.Errorf("%w: bench.sizes is empty", ErrInvalidConfig))
	}
	for _, n := range c.Bench.Sizes {
		if n <= 0 || n > MaxSize {
			errs = append(errs, fmt.Errorf("%w: bench.sizes entry %d out of range 1..%d", ErrInvalidConfig, n, MaxSize))
		}
	}
	if n, ok := firstRepeat(c.Bench.Sizes); ok {
		errs = append(errs, fmt.Errorf("%w: bench.sizes entry %d repeated", ErrInvalidConfig, n))
	}
	if c.Bench.Rounds <= 0 {
		errs = append(errs, fmt.Errorf("%w: bench.rounds must be positive, got %d", ErrInvalidConfig, c.Bench.Rounds))
	}
	if len(c.Bench.Contenders) == 0 {
		errs = append(errs, fmt.Errorf("%w: bench.contenders is empty", ErrInvalidConfig))
	}
	for _, name := range c.Bench.Contenders {
		if _, ok := factories[name]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q (known: %s)", ErrUnknownContender, name, strings.Join(Contenders(), ", ")))
		}
	}
	if name, ok := firstRepeat(c.Bench.Contenders); ok {
		errs = append(errs, fmt.Errorf("%w: bench.contenders entry %q repeated", ErrInvalidConfig, name))
	}
	if c.Bench.ValueKind != ValueKindULID && c.Bench.ValueKind != ValueKindStatic {
		errs = append(errs, fmt.Errorf("%w: bench.value_kind %q", ErrInvalidConfig, c.Bench.ValueKind))
	}
	if !slices.Contains(outputFormats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("%w: output.format %q", ErrInvalidConfig, c.Output.Format))
	}

	return errors.Join(errs...)
}

// firstRepeat returns the first element of s that occurs earlier in s.
func firstRepeat[T comparable](s []T) (T, bool) {
	seen := make(map[T]struct{}, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	var zero T
	return zero, false
}
