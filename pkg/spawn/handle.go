package spawn

import (
	"sync/atomic"

	"github.com/google/uuid"

	srvErrors "github.com/kubev2v/concurrency-patterns/pkg/errors"
)

// Handle is the single-use completion token of a spawned unit.
type Handle[T any] struct {
	id     uuid.UUID
	c      chan Result[T]
	done   chan struct{}
	joined atomic.Bool
}

func newHandle[T any]() *Handle[T] {
	return &Handle[T]{
		id:   uuid.New(),
		c:    make(chan Result[T], 1),
		done: make(chan struct{}),
	}
}

func (h *Handle[T]) ID() uuid.UUID {
	return h.id
}

// Done is closed once the unit has finished and its result is stored.
func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

// Join blocks until the unit finishes and returns its value or failure.
// The handle is consumed by the first call; any further call returns a
// HandleConsumedError.
func (h *Handle[T]) Join() (T, error) {
	if !h.joined.CompareAndSwap(false, true) {
		var zero T
		return zero, srvErrors.NewHandleConsumedError(h.id.String())
	}
	r := <-h.c
	return r.Data, r.Err
}
