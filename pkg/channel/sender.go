package channel

import (
	srvErrors "github.com/kubev2v/concurrency-patterns/pkg/errors"
)

// Sender is one producer end. Clone it to get another independent producer.
type Sender[T any] struct {
	s      *state[T]
	closed bool // guarded by s.mu
}

// Send enqueues v without blocking.
func (tx *Sender[T]) Send(v T) error {
	tx.s.mu.Lock()
	if tx.closed || tx.s.rxClosed {
		tx.s.mu.Unlock()
		return srvErrors.NewChannelClosedError()
	}
	tx.s.buf.Push(v)
	tx.s.mu.Unlock()

	tx.s.wake()
	return nil
}

// Clone returns a new producer end on the same queue. Cloning a closed sender
// yields a closed sender.
func (tx *Sender[T]) Clone() *Sender[T] {
	tx.s.mu.Lock()
	defer tx.s.mu.Unlock()

	if tx.closed {
		return &Sender[T]{s: tx.s, closed: true}
	}
	tx.s.senders++
	return &Sender[T]{s: tx.s}
}

// Close drops this producer end. Once every end is closed the receiver sees
// end-of-stream after draining the buffer. Closing twice is a no-op.
func (tx *Sender[T]) Close() {
	tx.s.mu.Lock()
	if tx.closed {
		tx.s.mu.Unlock()
		return
	}
	tx.closed = true
	tx.s.senders--
	last := tx.s.senders == 0
	tx.s.mu.Unlock()

	if last {
		tx.s.wake()
	}
}
