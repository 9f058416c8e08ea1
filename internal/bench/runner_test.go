package bench

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yndnr/vecmap-go/internal/telemetry/logger"
	"github.com/yndnr/vecmap-go/internal/telemetry/metric"
)

func testSection() BenchSection {
	return BenchSection{
		Sizes:      []int{2, 8},
		Rounds:     3,
		Contenders: Contenders(),
		Seed:       7,
		ValueKind:  ValueKindULID,
	}
}

func testContext() context.Context {
	return logger.WithLogger(context.Background(), logger.Discard())
}

func TestRunner_Run(t *testing.T) {
	cfg := testSection()
	reg := metric.NewRegistry()

	results, err := NewRunner(cfg, reg).Run(testContext())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := len(cfg.Contenders) * len(cfg.Sizes) * len(Operations())
	if len(results) != want {
		t.Fatalf("Run() returned %d results, want %d", len(results), want)
	}

	// Results nest contender > size > op.
	first := results[0]
	if first.Contender != cfg.Contenders[0] || first.Size != cfg.Sizes[0] || first.Op != OpInsert {
		t.Errorf("first result = %+v", first)
	}

	for _, res := range results {
		if res.Rounds != cfg.Rounds {
			t.Errorf("%s/%d/%s rounds = %d, want %d", res.Contender, res.Size, res.Op, res.Rounds, cfg.Rounds)
		}
		perRound := res.Size
		if res.Op == OpAddDup {
			perRound = 2 * res.Size
		}
		if res.Ops != perRound*cfg.Rounds {
			t.Errorf("%s/%d/%s ops = %d, want %d", res.Contender, res.Size, res.Op, res.Ops, perRound*cfg.Rounds)
		}
		if res.NsPerOp < 0 {
			t.Errorf("%s/%d/%s ns_per_op = %v", res.Contender, res.Size, res.Op, res.NsPerOp)
		}
	}

	if got := testutil.CollectAndCount(reg.NsPerOp); got != want {
		t.Errorf("ns_per_op series = %d, want %d", got, want)
	}
	if got := testutil.ToFloat64(reg.OpsTotal.WithLabelValues(ContenderVecMap, OpGetHit, "8")); got != float64(8*cfg.Rounds) {
		t.Errorf("ops_total{vecmap,get_hit,8} = %v, want %d", got, 8*cfg.Rounds)
	}
}

func TestRunner_ResultHook(t *testing.T) {
	cfg := testSection()
	cfg.Contenders = []string{ContenderVecMap, ContenderGoMap}

	var seen []Result
	r := NewRunner(cfg, nil, WithResultHook(func(res Result) {
		seen = append(seen, res)
	}))

	results, err := r.Run(testContext())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if r.Cells() != len(results) {
		t.Errorf("Cells() = %d, want %d", r.Cells(), len(results))
	}
	if len(seen) != len(results) {
		t.Fatalf("hook saw %d results, want %d", len(seen), len(results))
	}
	for i := range results {
		if seen[i] != results[i] {
			t.Errorf("hook result %d = %+v, want %+v", i, seen[i], results[i])
		}
	}
}

func TestRunner_NilMetrics(t *testing.T) {
	cfg := testSection()
	cfg.Contenders = []string{ContenderVecMap}

	if _, err := NewRunner(cfg, nil).Run(testContext()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	_, err := NewRunner(testSection(), nil).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRunner_UnknownContender(t *testing.T) {
	cfg := testSection()
	cfg.Contenders = []string{"btree"}

	_, err := NewRunner(cfg, nil).Run(testContext())
	if !errors.Is(err, ErrUnknownContender) {
		t.Errorf("Run() error = %v, want ErrUnknownContender", err)
	}
}

// brokenStore forgets everything it is given.
type brokenStore struct{}

func (brokenStore) Add(string, string)        {}
func (brokenStore) Get(string) (string, bool) { return "", false }
func (brokenStore) Del(string) bool           { return false }
func (brokenStore) Len() int                  { return 0 }
func (brokenStore) Reset()                    {}

func TestRunner_DetectsWrongResults(t *testing.T) {
	factories["broken"] = func(int) Store { return brokenStore{} }
	t.Cleanup(func() { delete(factories, "broken") })

	cfg := testSection()
	cfg.Contenders = []string{"broken"}

	_, err := NewRunner(cfg, nil).Run(testContext())
	if !errors.Is(err, ErrWrongResult) {
		t.Errorf("Run() error = %v, want ErrWrongResult", err)
	}
}

func TestOperations(t *testing.T) {
	want := []string{OpInsert, OpAddDup, OpGetHit, OpGetMiss, OpRemove}
	got := Operations()
	if len(got) != len(want) {
		t.Fatalf("Operations() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Operations()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
