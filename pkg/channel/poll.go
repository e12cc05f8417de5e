package channel

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"

	srvErrors "github.com/kubev2v/concurrency-patterns/pkg/errors"
)

const (
	DefaultPollAttempts = 1000
	DefaultPollInterval = time.Millisecond
)

var errEmpty = errors.New("channel empty")

type PollOptions struct {
	// MaxAttempts bounds the number of TryRecv calls. Zero means DefaultPollAttempts.
	MaxAttempts uint
	// MaxElapsed bounds the total time spent polling. Zero disables the time
	// bound, leaving only MaxAttempts.
	MaxElapsed time.Duration
	// BackOff paces the polls. Nil means a constant DefaultPollInterval.
	BackOff backoff.BackOff
	// OnEmpty runs after every poll that found the channel empty.
	OnEmpty func(attempt int)
}

// Poll calls TryRecv until a message arrives, the channel closes or the
// attempt or time budget runs out, in which case it returns a TimeoutError.
func Poll[T any](ctx context.Context, rx *Receiver[T], opts PollOptions) (T, error) {
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = DefaultPollAttempts
	}
	if opts.BackOff == nil {
		opts.BackOff = backoff.NewConstantBackOff(DefaultPollInterval)
	}

	retryOpts := []backoff.RetryOption{
		backoff.WithBackOff(opts.BackOff),
		backoff.WithMaxTries(opts.MaxAttempts),
		// overrides the 15 minute default of backoff; zero means no bound
		backoff.WithMaxElapsedTime(opts.MaxElapsed),
	}

	start := time.Now()
	attempts := 0
	v, err := backoff.Retry(ctx, func() (T, error) {
		attempts++
		v, ok, err := rx.TryRecv()
		if err != nil {
			return v, backoff.Permanent(err)
		}
		if !ok {
			if opts.OnEmpty != nil {
				opts.OnEmpty(attempts)
			}
			return v, errEmpty
		}
		return v, nil
	}, retryOpts...)

	var permanent *backoff.PermanentError
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, errEmpty):
		var zero T
		return zero, srvErrors.NewTimeoutError(attempts, time.Since(start))
	case errors.As(err, &permanent):
		// Retry hands back the wrapper, whichever attempt hit it
		var zero T
		return zero, permanent.Err
	default:
		var zero T
		return zero, err
	}
}
