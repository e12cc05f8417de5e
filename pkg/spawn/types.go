package spawn

import (
	"context"
)

// Work is a unit of work. Data it captures is owned by the unit once spawned.
type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}
