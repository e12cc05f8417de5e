package services

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/kubev2v/concurrency-patterns/internal/config"
	"github.com/kubev2v/concurrency-patterns/pkg/spawn"
)

// Detached prints from a fire-and-forget unit while the launcher prints its
// own lines. The launcher never waits for the unit.
type Detached struct {
	cfg config.Spawn
	out *printer
}

func NewDetachedService(cfg config.Spawn, w io.Writer) *Detached {
	return &Detached{cfg: cfg, out: newPrinter(w)}
}

// Run returns the first write error of the launcher's lines. A write error of
// the detached unit only reaches the log.
func (d *Detached) Run(ctx context.Context) error {
	values := []int{1, 2, 3}

	spawn.Detach(ctx, "detached-printer", func(ctx context.Context) error {
		if err := d.out.Printf("Here's a vector: %v\n", values); err != nil {
			return err
		}
		for i := 1; i <= d.cfg.SpawnedLines; i++ {
			if err := d.out.Printf("hi number %d from the spawned thread!\n", i); err != nil {
				return err
			}
			time.Sleep(d.cfg.StepDelay)
		}
		return nil
	})

	for i := 1; i <= d.cfg.MainLines; i++ {
		if err := d.out.Printf("hi number %d from the main thread!\n", i); err != nil {
			return err
		}
		time.Sleep(d.cfg.StepDelay)
	}
	return nil
}

// Joined hands a slice over to a spawned unit, waits for it and only then
// prints the launcher's lines. The unit returns the sum of the slice.
type Joined struct {
	cfg config.Spawn
	out *printer
}

func NewJoinedService(cfg config.Spawn, w io.Writer) *Joined {
	return &Joined{cfg: cfg, out: newPrinter(w)}
}

func (j *Joined) Run(ctx context.Context) (int, error) {
	values := []int{1, 2, 3}

	h := spawn.Spawn(ctx, func(ctx context.Context) (int, error) {
		if err := j.out.Printf("moved value %v\n", values); err != nil {
			return 0, err
		}
		for i := 1; i <= j.cfg.SpawnedLines; i++ {
			if err := j.out.Printf("hi number %d from the spawned thread!\n", i); err != nil {
				return 0, err
			}
			time.Sleep(j.cfg.StepDelay)
		}
		sum := 0
		for _, v := range values {
			sum += v
		}
		return sum, nil
	})
	// values belongs to the unit from here on

	sum, err := h.Join()
	if err != nil {
		zap.S().Named("joined_service").Errorw("spawned unit failed", "id", h.ID(), "error", err)
		return 0, err
	}

	for i := 1; i <= j.cfg.MainLines; i++ {
		if err := j.out.Printf("hi number %d from the main thread!\n", i); err != nil {
			return 0, err
		}
		time.Sleep(j.cfg.StepDelay)
	}
	if err := j.out.Resultf("Joined value: %d\n", sum); err != nil {
		return 0, err
	}

	return sum, nil
}
