// Package guard provides owning wrappers for state shared between goroutines.
//
// Guarded[T] serializes every read-modify-write of its value through a mutex
// and never hands out a reference that outlives the critical section.
// Poisoning turns a panic inside the critical section into a LockPoisonedError
// for every later acquirer:
//
//	┌─────────┐  holder panics in With   ┌──────────┐
//	│ Healthy │ ───────────────────────► │ Poisoned │
//	└─────────┘                          └────┬─────┘
//	     ▲            Recover()               │
//	     └────────────────────────────────────┘
//
// AtomicCounter covers the simpler case of a counter that is only ever added
// to.
package guard
