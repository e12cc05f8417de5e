package services

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/kubev2v/concurrency-patterns/internal/config"
	"github.com/kubev2v/concurrency-patterns/internal/models"
	"github.com/kubev2v/concurrency-patterns/pkg/guard"
	"github.com/kubev2v/concurrency-patterns/pkg/spawn"
)

// DeltaFunc returns the amount unit i adds to the counter. Deltas are summed,
// so the order in which units take the lock does not change the total.
type DeltaFunc func(i int) int64

func ConstantDelta(d int64) DeltaFunc {
	return func(int) int64 { return d }
}

func IndexDelta(i int) int64 {
	return int64(i)
}

func DeltaFor(kind models.DeltaKind) DeltaFunc {
	if kind == models.DeltaKindIndex {
		return IndexDelta
	}
	return ConstantDelta(1)
}

type Counter struct {
	out *printer
}

func NewCounterService(w io.Writer) *Counter {
	return &Counter{out: newPrinter(w)}
}

// RunParallelIncrements spawns n units that each add delta(i) to a shared
// guarded counter and joins all of them before reading the total.
// A unit panicking inside the critical section poisons the counter; the
// aggregate is then reported as failed.
func (c *Counter) RunParallelIncrements(ctx context.Context, n int, delta DeltaFunc) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("invalid number of units %d", n)
	}
	counter := guard.New[int64](0)

	handles := make([]*spawn.Handle[struct{}], 0, n)
	for i := range n {
		handles = append(handles, spawn.Spawn(ctx, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, counter.With(func(v *int64) error {
				*v += delta(i)
				return nil
			})
		}))
	}

	_, joinErr := spawn.JoinAll(handles)
	total, loadErr := counter.Load()
	if err := multierr.Combine(joinErr, loadErr); err != nil {
		zap.S().Named("counter_service").Errorw("parallel increments failed", "units", n, "error", err)
		return 0, fmt.Errorf("counter aggregation failed: %w", err)
	}

	return total, nil
}

// RunAtomicIncrements is RunParallelIncrements over an atomic counter.
func (c *Counter) RunAtomicIncrements(ctx context.Context, n int, delta DeltaFunc) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("invalid number of units %d", n)
	}
	var counter guard.AtomicCounter

	handles := make([]*spawn.Handle[struct{}], 0, n)
	for i := range n {
		handles = append(handles, spawn.Spawn(ctx, func(ctx context.Context) (struct{}, error) {
			counter.Add(delta(i))
			return struct{}{}, nil
		}))
	}

	if _, err := spawn.JoinAll(handles); err != nil {
		zap.S().Named("counter_service").Errorw("atomic increments failed", "units", n, "error", err)
		return 0, fmt.Errorf("counter aggregation failed: %w", err)
	}

	return counter.Load(), nil
}

// Run executes the configured counter demonstration and prints the total.
func (c *Counter) Run(ctx context.Context, cfg config.Counter) (int64, error) {
	kind, err := models.ParseDeltaKind(cfg.Delta)
	if err != nil {
		return 0, err
	}
	mode, err := models.ParseCounterMode(cfg.Mode)
	if err != nil {
		return 0, err
	}

	zap.S().Named("counter_service").Debugw("starting increments", "units", cfg.Units, "delta", kind, "mode", mode)

	var total int64
	switch mode {
	case models.CounterModeAtomic:
		total, err = c.RunAtomicIncrements(ctx, cfg.Units, DeltaFor(kind))
	default:
		total, err = c.RunParallelIncrements(ctx, cfg.Units, DeltaFor(kind))
	}
	if err != nil {
		return 0, err
	}

	if err := c.out.Resultf("Result: %d\n", total); err != nil {
		return 0, err
	}
	return total, nil
}
