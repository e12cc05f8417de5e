package guard

import "sync/atomic"

// AtomicCounter is an int64 that is only updated through atomic adds.
// It fits aggregations that are a plain associative combine, where a mutex
// would add nothing.
type AtomicCounter struct {
	v atomic.Int64
}

func (c *AtomicCounter) Add(delta int64) int64 {
	return c.v.Add(delta)
}

func (c *AtomicCounter) Load() int64 {
	return c.v.Load()
}
