package guard

import (
	"sync"

	srvErrors "github.com/kubev2v/concurrency-patterns/pkg/errors"
)

// Guarded holds a value that is only reachable under its mutex.
//
// If a holder panics inside With the guard becomes poisoned: the panic keeps
// propagating to the holder's goroutine and every later With or Load returns a
// LockPoisonedError until Recover is called.
type Guarded[T any] struct {
	mu       sync.Mutex
	value    T
	poisoned bool
	reason   any
}

func New[T any](v T) *Guarded[T] {
	return &Guarded[T]{value: v}
}

// With runs fn with exclusive access to the value.
func (g *Guarded[T]) With(fn func(v *T) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.poisoned {
		return srvErrors.NewLockPoisonedError(g.reason)
	}

	defer func() {
		if rec := recover(); rec != nil {
			g.poisoned = true
			g.reason = rec
			panic(rec)
		}
	}()

	return fn(&g.value)
}

// Load returns a copy of the value.
func (g *Guarded[T]) Load() (T, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.poisoned {
		var zero T
		return zero, srvErrors.NewLockPoisonedError(g.reason)
	}
	return g.value, nil
}

func (g *Guarded[T]) Poisoned() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.poisoned
}

// Recover clears the poisoned state and returns the value as the failed holder
// left it. The caller decides whether that value can be trusted.
func (g *Guarded[T]) Recover() T {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.poisoned = false
	g.reason = nil
	return g.value
}
