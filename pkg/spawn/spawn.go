package spawn

import (
	"context"
	"runtime/debug"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	srvErrors "github.com/kubev2v/concurrency-patterns/pkg/errors"
)

// Spawn starts work on its own goroutine and returns the handle used to join it.
func Spawn[T any](ctx context.Context, work Work[T]) *Handle[T] {
	h := newHandle[T]()
	go h.run(ctx, work)
	return h
}

func (h *Handle[T]) run(ctx context.Context, work Work[T]) {
	defer close(h.done)
	defer func() {
		if rec := recover(); rec != nil {
			h.c <- Result[T]{Err: srvErrors.NewWorkPanicError(h.id.String(), rec, debug.Stack())}
		}
	}()

	v, err := work(ctx)
	if err != nil {
		h.c <- Result[T]{Err: srvErrors.NewWorkFailureError(h.id.String(), err)}
		return
	}
	h.c <- Result[T]{Data: v}
}

// JoinAll joins every handle in order. Values of failed units are left as the
// zero value and all failures are combined into the returned error.
func JoinAll[T any](handles []*Handle[T]) ([]T, error) {
	values := make([]T, len(handles))
	var errs error
	for i, h := range handles {
		v, err := h.Join()
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		values[i] = v
	}
	return values, errs
}

type detachConfig struct {
	log *zap.SugaredLogger
}

type DetachOption func(*detachConfig)

// WithDetachLogger sets the sink receiving failures of a detached unit.
func WithDetachLogger(log *zap.SugaredLogger) DetachOption {
	return func(c *detachConfig) {
		c.log = log
	}
}

// Detach starts fn without returning a handle. Nobody can observe its outcome,
// so an error or a panic is logged at error level rather than dropped.
// The caller does not wait for fn: if the process exits first, fn may never
// run to completion.
func Detach(ctx context.Context, name string, fn func(ctx context.Context) error, opts ...DetachOption) {
	cfg := &detachConfig{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.log == nil {
		cfg.log = zap.S().Named("spawn")
	}

	id := uuid.New()
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				cfg.log.Errorw("detached unit panicked", "unit", name, "id", id, "panic", rec, "stack", string(debug.Stack()))
			}
		}()

		cfg.log.Debugw("detached unit started", "unit", name, "id", id)
		if err := fn(ctx); err != nil {
			cfg.log.Errorw("detached unit failed", "unit", name, "id", id, "error", err)
			return
		}
		cfg.log.Debugw("detached unit finished", "unit", name, "id", id)
	}()
}
