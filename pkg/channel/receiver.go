package channel

import (
	"context"

	srvErrors "github.com/kubev2v/concurrency-patterns/pkg/errors"
)

// Receiver is the single consumer end. It must not be used from more than one
// goroutine at a time.
type Receiver[T any] struct {
	s *state[T]
}

// Recv blocks until a message is available. It returns a ChannelClosedError
// when every sender is closed and nothing is buffered, or ctx.Err() when ctx
// ends first.
func (rx *Receiver[T]) Recv(ctx context.Context) (T, error) {
	for {
		v, ok, err := rx.TryRecv()
		if ok || err != nil {
			return v, err
		}

		select {
		case <-rx.s.notify:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

// TryRecv never blocks. ok is false with a nil error when the channel is
// merely empty; that state is transient and the caller may retry.
func (rx *Receiver[T]) TryRecv() (v T, ok bool, err error) {
	rx.s.mu.Lock()
	defer rx.s.mu.Unlock()

	if rx.s.buf.Len() > 0 {
		return rx.s.buf.Pop(), true, nil
	}
	if rx.s.senders == 0 || rx.s.rxClosed {
		return v, false, srvErrors.NewChannelClosedError()
	}
	return v, false, nil
}

// Drain returns every buffered message without blocking.
func (rx *Receiver[T]) Drain() []T {
	rx.s.mu.Lock()
	defer rx.s.mu.Unlock()
	return rx.s.buf.Take()
}

// Len returns the number of buffered messages.
func (rx *Receiver[T]) Len() int {
	rx.s.mu.Lock()
	defer rx.s.mu.Unlock()
	return rx.s.buf.Len()
}

// Close rejects any further Send and discards buffered messages.
func (rx *Receiver[T]) Close() {
	rx.s.mu.Lock()
	defer rx.s.mu.Unlock()
	rx.s.rxClosed = true
	rx.s.buf.Take()
}
