package channel

import (
	"sync"
)

type state[T any] struct {
	mu       sync.Mutex
	buf      queue[T]
	senders  int
	rxClosed bool
	// notify holds at most one wake-up token for the single consumer.
	notify chan struct{}
}

// New creates an unbounded channel with one producer end and its consumer end.
func New[T any]() (*Sender[T], *Receiver[T]) {
	s := &state[T]{
		senders: 1,
		notify:  make(chan struct{}, 1),
	}
	return &Sender[T]{s: s}, &Receiver[T]{s: s}
}

func (s *state[T]) wake() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}
