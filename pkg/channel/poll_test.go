package channel_test

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/concurrency-patterns/pkg/channel"
	srvErrors "github.com/kubev2v/concurrency-patterns/pkg/errors"
)

var _ = Describe("Poll", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should return a message sent while polling", func() {
		tx, rx := channel.New[string]()

		empties := 0
		go func() {
			time.Sleep(20 * time.Millisecond)
			_ = tx.Send("hi")
		}()

		v, err := channel.Poll(ctx, rx, channel.PollOptions{
			MaxAttempts: 10000,
			BackOff:     backoff.NewConstantBackOff(time.Millisecond),
			OnEmpty:     func(int) { empties++ },
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal("hi"))
		Expect(empties).To(BeNumerically(">", 0))
	})

	It("should not call OnEmpty when a message is already buffered", func() {
		tx, rx := channel.New[int]()
		Expect(tx.Send(3)).To(Succeed())

		empties := 0
		v, err := channel.Poll(ctx, rx, channel.PollOptions{
			OnEmpty: func(int) { empties++ },
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(3))
		Expect(empties).To(BeZero())
	})

	// Given a channel nobody sends on
	// When polling with a bounded number of attempts
	// Then it should stop with a TimeoutError after exactly that many polls
	It("should time out after the maximum number of attempts", func() {
		tx, rx := channel.New[int]()
		defer tx.Close()

		attempts := 0
		_, err := channel.Poll(ctx, rx, channel.PollOptions{
			MaxAttempts: 5,
			BackOff:     backoff.NewConstantBackOff(time.Millisecond),
			OnEmpty:     func(attempt int) { attempts = attempt },
		})

		Expect(srvErrors.IsTimeoutError(err)).To(BeTrue())
		Expect(attempts).To(Equal(5))

		var timeout *srvErrors.TimeoutError
		Expect(errors.As(err, &timeout)).To(BeTrue())
		Expect(timeout.Attempts).To(Equal(5))
	})

	It("should time out after the maximum elapsed time", func() {
		tx, rx := channel.New[int]()
		defer tx.Close()

		start := time.Now()
		_, err := channel.Poll(ctx, rx, channel.PollOptions{
			MaxAttempts: 1_000_000,
			MaxElapsed:  50 * time.Millisecond,
			BackOff:     backoff.NewConstantBackOff(5 * time.Millisecond),
		})

		Expect(srvErrors.IsTimeoutError(err)).To(BeTrue())
		Expect(time.Since(start)).To(BeNumerically("<", 1*time.Second))
	})

	It("should stop at once when the channel closes", func() {
		tx, rx := channel.New[int]()
		tx.Close()

		attempts := 0
		_, err := channel.Poll(ctx, rx, channel.PollOptions{
			MaxAttempts: 100,
			OnEmpty:     func(int) { attempts++ },
		})

		Expect(srvErrors.IsChannelClosedError(err)).To(BeTrue())
		Expect(attempts).To(BeZero())
	})

	DescribeTable("should return the channel's own error when it is closed",
		func(maxAttempts uint) {
			tx, rx := channel.New[int]()
			tx.Close()

			_, err := channel.Poll(ctx, rx, channel.PollOptions{MaxAttempts: maxAttempts})

			var closed *srvErrors.ChannelClosedError
			Expect(errors.As(err, &closed)).To(BeTrue())
			Expect(err).To(BeAssignableToTypeOf(&srvErrors.ChannelClosedError{}))
		},
		Entry("on the last allowed attempt", uint(1)),
		Entry("with attempts to spare", uint(10)),
	)

	// Given a pacing interval longer than backoff's default elapsed limit
	// When MaxElapsed is zero
	// Then only the caller's context bounds the wait
	It("should not apply a time bound when MaxElapsed is zero", func() {
		tx, rx := channel.New[int]()
		defer tx.Close()

		waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		attempts := 0
		_, err := channel.Poll(waitCtx, rx, channel.PollOptions{
			MaxAttempts: 3,
			BackOff:     backoff.NewConstantBackOff(20 * time.Minute),
			OnEmpty:     func(attempt int) { attempts = attempt },
		})

		Expect(err).To(MatchError(context.DeadlineExceeded))
		Expect(srvErrors.IsTimeoutError(err)).To(BeFalse())
		Expect(attempts).To(Equal(1))
	})
})
