package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/concurrency-patterns/internal/config"
	"github.com/kubev2v/concurrency-patterns/internal/models"
	"github.com/kubev2v/concurrency-patterns/internal/services"
)

var errDiskFull = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errDiskFull
}

var _ = Describe("Output errors", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should fail the counter when the result cannot be written", func() {
		total, err := services.NewCounterService(failingWriter{}).Run(ctx, *config.NewCounterWithOptionsAndDefaults())
		Expect(err).To(MatchError(errDiskFull))
		Expect(total).To(BeZero())
	})

	It("should fail the joined run when a line cannot be written", func() {
		cfg := config.NewSpawnWithOptionsAndDefaults(config.WithStepDelay(0))
		_, err := services.NewJoinedService(*cfg, failingWriter{}).Run(ctx)
		Expect(err).To(MatchError(errDiskFull))
	})

	It("should fail the detached run when a launcher line cannot be written", func() {
		cfg := config.NewSpawnWithOptionsAndDefaults(config.WithStepDelay(0))
		Expect(services.NewDetachedService(*cfg, failingWriter{}).Run(ctx)).To(MatchError(errDiskFull))
	})

	It("should fail the handoff when the message cannot be written", func() {
		_, err := services.NewHandoffService(failingWriter{}).Run(ctx, "hello")
		Expect(err).To(MatchError(errDiskFull))
	})

	It("should fail the poll when the message cannot be written", func() {
		cfg := config.NewChannelWithOptionsAndDefaults(config.WithPollInterval(0))
		_, err := services.NewPollingService(*cfg, failingWriter{}).Run(ctx, "hello")
		Expect(err).To(MatchError(errDiskFull))
	})

	It("should fail the fan-in when the sum cannot be written", func() {
		_, err := services.NewFanInService(failingWriter{}).Run(ctx, services.ProducerValues(3), models.FanInModeRecv)
		Expect(err).To(MatchError(errDiskFull))
	})
})
