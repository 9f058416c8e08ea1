package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yndnr/vecmap-go/internal/telemetry/logger"
	"github.com/yndnr/vecmap-go/internal/telemetry/metric"
)

// ErrWrongResult is returned when a contender answers a lookup incorrectly.
var ErrWrongResult = errors.New("bench: contender returned a wrong result")

// Operation names, in the order they run.
const (
	OpInsert  = "insert"
	OpAddDup  = "add_dup"
	OpGetHit  = "get_hit"
	OpGetMiss = "get_miss"
	OpRemove  = "remove"
)

// Result is the outcome of one (contender, size, op) cell.
type Result struct {
	Contender string  `json:"contender" yaml:"contender"`
	Size      int     `json:"size" yaml:"size"`
	Op        string  `json:"op" yaml:"op"`
	Rounds    int     `json:"rounds" yaml:"rounds"`
	Ops       int     `json:"ops" yaml:"ops"`
	NsPerOp   float64 `json:"ns_per_op" yaml:"ns_per_op"`
}

// operation is one measured access pattern. prepare runs untimed before
// every round; run is timed and returns the number of store calls made.
type operation struct {
	name    string
	prepare func(s Store, w *Workload)
	run     func(s Store, w *Workload) (int, error)
}

var operations = []operation{
	{name: OpInsert, prepare: reset, run: runInsert},
	{name: OpAddDup, prepare: reset, run: runAddDup},
	{name: OpGetHit, prepare: fill, run: runGetHit},
	{name: OpGetMiss, prepare: fill, run: runGetMiss},
	{name: OpRemove, prepare: fill, run: runRemove},
}

// Operations returns the operation names in run order.
func Operations() []string {
	names := make([]string, len(operations))
	for i, op := range operations {
		names[i] = op.name
	}
	return names
}

// sink keeps lookups from being optimized away.
var sink string

func reset(s Store, _ *Workload) {
	s.Reset()
}

func fill(s Store, w *Workload) {
	s.Reset()
	for i, name := range w.Names {
		s.Add(name, w.Values[i])
	}
}

func runInsert(s Store, w *Workload) (int, error) {
	for i, name := range w.Names {
		s.Add(name, w.Values[i])
	}
	if s.Len() != w.Size() {
		return 0, fmt.Errorf("%w: %d names after insert, want %d", ErrWrongResult, s.Len(), w.Size())
	}
	return w.Size(), nil
}

// runAddDup adds every name twice; the second pass hits existing names,
// which exercises find-or-insert.
func runAddDup(s Store, w *Workload) (int, error) {
	for pass := 0; pass < 2; pass++ {
		for i, name := range w.Names {
			s.Add(name, w.Values[i])
		}
	}
	if s.Len() != w.Size() {
		return 0, fmt.Errorf("%w: %d names after add_dup, want %d", ErrWrongResult, s.Len(), w.Size())
	}
	return 2 * w.Size(), nil
}

func runGetHit(s Store, w *Workload) (int, error) {
	for i, name := range w.Names {
		v, ok := s.Get(name)
		if !ok || v != w.Values[i] {
			return 0, fmt.Errorf("%w: Get(%q) = (%q, %v)", ErrWrongResult, name, v, ok)
		}
		sink = v
	}
	return w.Size(), nil
}

func runGetMiss(s Store, w *Workload) (int, error) {
	for _, name := range w.Misses {
		if v, ok := s.Get(name); ok {
			return 0, fmt.Errorf("%w: Get(%q) found %q", ErrWrongResult, name, v)
		}
	}
	return len(w.Misses), nil
}

// runRemove deletes names front to back, the worst case for an
// order-preserving slice.
func runRemove(s Store, w *Workload) (int, error) {
	for _, name := range w.Names {
		if !s.Del(name) {
			return 0, fmt.Errorf("%w: Del(%q) missed", ErrWrongResult, name)
		}
	}
	if s.Len() != 0 {
		return 0, fmt.Errorf("%w: %d names left after remove", ErrWrongResult, s.Len())
	}
	return w.Size(), nil
}

// Runner executes the benchmark matrix.
type Runner struct {
	cfg      BenchSection
	metrics  *metric.Registry
	onResult func(Result)
	now      func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithResultHook calls fn after each cell is measured, e.g. to drive a
// progress bar.
func WithResultHook(fn func(Result)) RunnerOption {
	return func(r *Runner) {
		r.onResult = fn
	}
}

// NewRunner creates a runner. metrics may be nil.
func NewRunner(cfg BenchSection, metrics *metric.Registry, opts ...RunnerOption) *Runner {
	r := &Runner{
		cfg:     cfg,
		metrics: metrics,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cells returns the number of results Run produces.
func (r *Runner) Cells() int {
	return len(r.cfg.Contenders) * len(r.cfg.Sizes) * len(operations)
}

// Run measures every configured contender at every size for every
// operation and returns one Result per cell, in that nesting order.
// The context is checked between rounds.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	log := logger.L(ctx)
	results := make([]Result, 0, r.Cells())

	workloads := make(map[int]*Workload, len(r.cfg.Sizes))
	for _, size := range r.cfg.Sizes {
		w, err := NewWorkload(size, r.cfg.ValueKind, r.cfg.Seed)
		if err != nil {
			return nil, err
		}
		workloads[size] = w
	}

	start := r.now()
	for _, name := range r.cfg.Contenders {
		for _, size := range r.cfg.Sizes {
			store, err := NewStore(name, size)
			if err != nil {
				return nil, err
			}
			for _, op := range operations {
				res, err := r.measure(ctx, name, store, workloads[size], op)
				if err != nil {
					return results, fmt.Errorf("%s/%d/%s: %w", name, size, op.name, err)
				}
				log.Debug("cell measured",
					"contender", name,
					"size", size,
					"op", op.name,
					"ns_per_op", res.NsPerOp,
				)
				results = append(results, res)
				if r.onResult != nil {
					r.onResult(res)
				}
			}
		}
	}

	log.Info("benchmark finished",
		"cells", len(results),
		"elapsed", r.now().Sub(start).String(),
	)
	return results, nil
}

func (r *Runner) measure(ctx context.Context, contender string, s Store, w *Workload, op operation) (Result, error) {
	res := Result{
		Contender: contender,
		Size:      w.Size(),
		Op:        op.name,
	}

	var total time.Duration
	for round := 0; round < r.cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		op.prepare(s, w)
		begin := r.now()
		n, err := op.run(s, w)
		elapsed := r.now().Sub(begin)
		if err != nil {
			return res, err
		}

		total += elapsed
		res.Rounds++
		res.Ops += n
		if r.metrics != nil {
			r.metrics.ObserveRound(contender, op.name, w.Size(), n, elapsed)
		}
	}

	if res.Ops > 0 {
		res.NsPerOp = float64(total.Nanoseconds()) / float64(res.Ops)
	}
	if r.metrics != nil {
		r.metrics.SetResult(contender, op.name, w.Size(), res.NsPerOp)
	}
	return res, nil
}
