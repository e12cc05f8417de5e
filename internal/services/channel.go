package services

import (
	"context"
	"fmt"
	"io"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/kubev2v/concurrency-patterns/internal/config"
	"github.com/kubev2v/concurrency-patterns/internal/models"
	"github.com/kubev2v/concurrency-patterns/pkg/channel"
	srvErrors "github.com/kubev2v/concurrency-patterns/pkg/errors"
	"github.com/kubev2v/concurrency-patterns/pkg/spawn"
)

// Handoff sends one message from a detached producer to a consumer blocked on
// receive.
type Handoff struct {
	out *printer
}

func NewHandoffService(w io.Writer) *Handoff {
	return &Handoff{out: newPrinter(w)}
}

func (h *Handoff) Run(ctx context.Context, msg string) (string, error) {
	tx, rx := channel.New[string]()

	spawn.Detach(ctx, "handoff-producer", func(ctx context.Context) error {
		defer tx.Close()
		return tx.Send(msg)
	})

	got, err := rx.Recv(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to receive message: %w", err)
	}

	if err := h.out.Resultf("Got: %s\n", got); err != nil {
		return "", err
	}
	return got, nil
}

type PollReport struct {
	Message  string
	State    models.PollState
	Attempts int
}

// Polling receives the message of a detached producer by polling the channel,
// doing other work between two empty polls.
type Polling struct {
	cfg config.Channel
	out *printer
}

func NewPollingService(cfg config.Channel, w io.Writer) *Polling {
	return &Polling{cfg: cfg, out: newPrinter(w)}
}

func (p *Polling) Run(ctx context.Context, msg string) (PollReport, error) {
	tx, rx := channel.New[string]()

	spawn.Detach(ctx, "poll-producer", func(ctx context.Context) error {
		defer tx.Close()
		return tx.Send(msg)
	})

	return p.Receive(ctx, rx)
}

// Receive runs the bounded poll loop on rx.
func (p *Polling) Receive(ctx context.Context, rx *channel.Receiver[string]) (PollReport, error) {
	report := PollReport{State: models.PollStateWaiting}

	var writeErr error
	got, err := channel.Poll(ctx, rx, channel.PollOptions{
		MaxAttempts: p.cfg.PollMaxAttempts,
		MaxElapsed:  p.cfg.PollMaxElapsed,
		BackOff:     backoff.NewConstantBackOff(p.cfg.PollInterval),
		OnEmpty: func(attempt int) {
			report.Attempts = attempt
			if err := p.out.Printf("Not received yet, doing other work...\n"); err != nil && writeErr == nil {
				writeErr = err
			}
		},
	})
	err = multierr.Append(err, writeErr)
	if err != nil {
		if srvErrors.IsTimeoutError(err) {
			report.State = models.PollStateTimedOut
		}
		zap.S().Named("polling_service").Errorw("poll loop ended without message", "state", report.State, "attempts", report.Attempts, "error", err)
		return report, err
	}

	report.Attempts++
	report.State = models.PollStateReceived
	report.Message = got
	if err := p.out.Resultf("Got: %s\n", got); err != nil {
		return report, err
	}

	return report, nil
}

// FanIn has n producers each send one value into a shared channel and sums
// what the consumer collects.
type FanIn struct {
	out *printer
}

func NewFanInService(w io.Writer) *FanIn {
	return &FanIn{out: newPrinter(w)}
}

// Collect spawns one producer per value and returns the values received, in
// arrival order.
func (f *FanIn) Collect(ctx context.Context, values []int64, mode models.FanInMode) ([]int64, error) {
	tx, rx := channel.New[int64]()

	handles := make([]*spawn.Handle[struct{}], 0, len(values))
	for _, v := range values {
		producer := tx.Clone()
		handles = append(handles, spawn.Spawn(ctx, func(ctx context.Context) (struct{}, error) {
			defer producer.Close()
			return struct{}{}, producer.Send(v)
		}))
	}
	tx.Close()

	received := make([]int64, 0, len(values))
	switch mode {
	case models.FanInModeRecv:
		for range len(values) {
			v, err := rx.Recv(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to receive value: %w", err)
			}
			received = append(received, v)
		}
		if _, err := spawn.JoinAll(handles); err != nil {
			return nil, err
		}
	default:
		if _, err := spawn.JoinAll(handles); err != nil {
			return nil, err
		}
		received = append(received, rx.Drain()...)
	}

	zap.S().Named("fanin_service").Debugw("values collected", "producers", len(values), "received", len(received), "mode", mode)
	return received, nil
}

func (f *FanIn) Run(ctx context.Context, values []int64, mode models.FanInMode) (int64, error) {
	received, err := f.Collect(ctx, values, mode)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, v := range received {
		total += v
	}
	if err := f.out.Resultf("Got: %d\n", total); err != nil {
		return 0, err
	}

	return total, nil
}

// ProducerValues returns 1..n, one value per producer. It is empty for n <= 0.
func ProducerValues(n int) []int64 {
	if n <= 0 {
		return nil
	}
	values := make([]int64, n)
	for i := range values {
		values[i] = int64(i + 1)
	}
	return values
}
