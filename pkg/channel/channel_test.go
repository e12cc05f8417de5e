package channel_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/concurrency-patterns/pkg/channel"
	srvErrors "github.com/kubev2v/concurrency-patterns/pkg/errors"
)

var _ = Describe("Channel", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Recv", func() {
		It("should deliver messages of one sender in send order", func() {
			tx, rx := channel.New[int]()
			for i := range 100 {
				Expect(tx.Send(i)).To(Succeed())
			}
			tx.Close()

			for i := range 100 {
				v, err := rx.Recv(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(v).To(Equal(i))
			}
		})

		It("should block until a message is sent", func() {
			tx, rx := channel.New[string]()

			got := make(chan string, 1)
			go func() {
				v, _ := rx.Recv(ctx)
				got <- v
			}()

			Consistently(got, 100*time.Millisecond).ShouldNot(Receive())
			Expect(tx.Send("hi")).To(Succeed())
			Eventually(got, 1*time.Second).Should(Receive(Equal("hi")))
		})

		// Given a channel whose only sender is closed and nothing buffered
		// When the consumer blocks on Recv
		// Then it should fail with ChannelClosedError instead of hanging
		It("should fail with ChannelClosed when no sender is left", func() {
			tx, rx := channel.New[int]()
			tx.Close()

			errs := make(chan error, 1)
			go func() {
				_, err := rx.Recv(ctx)
				errs <- err
			}()

			var err error
			Eventually(errs, 1*time.Second).Should(Receive(&err))
			Expect(srvErrors.IsChannelClosedError(err)).To(BeTrue())
		})

		It("should wake a blocked receiver when the last sender closes", func() {
			tx, rx := channel.New[int]()
			clone := tx.Clone()
			tx.Close()

			errs := make(chan error, 1)
			go func() {
				_, err := rx.Recv(ctx)
				errs <- err
			}()

			Consistently(errs, 100*time.Millisecond).ShouldNot(Receive())
			clone.Close()

			var err error
			Eventually(errs, 1*time.Second).Should(Receive(&err))
			Expect(srvErrors.IsChannelClosedError(err)).To(BeTrue())
		})

		It("should deliver buffered messages before reporting closure", func() {
			tx, rx := channel.New[int]()
			Expect(tx.Send(1)).To(Succeed())
			tx.Close()

			v, err := rx.Recv(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(1))

			_, err = rx.Recv(ctx)
			Expect(srvErrors.IsChannelClosedError(err)).To(BeTrue())
		})

		It("should return when the context ends", func() {
			_, rx := channel.New[int]()
			ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
			defer cancel()

			_, err := rx.Recv(ctx)
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})
	})

	Describe("TryRecv", func() {
		It("should report empty without blocking", func() {
			_, rx := channel.New[int]()

			start := time.Now()
			_, ok, err := rx.TryRecv()
			elapsed := time.Since(start)

			Expect(ok).To(BeFalse())
			Expect(err).NotTo(HaveOccurred())
			Expect(elapsed).To(BeNumerically("<", time.Millisecond))
		})

		It("should return a buffered message", func() {
			tx, rx := channel.New[int]()
			Expect(tx.Send(42)).To(Succeed())

			v, ok, err := rx.TryRecv()
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(42))
		})

		It("should report closure once drained", func() {
			tx, rx := channel.New[int]()
			tx.Close()

			_, ok, err := rx.TryRecv()
			Expect(ok).To(BeFalse())
			Expect(srvErrors.IsChannelClosedError(err)).To(BeTrue())
		})
	})

	Describe("Sender", func() {
		It("should fan in messages from every clone", func() {
			tx, rx := channel.New[int]()

			done := make(chan struct{})
			for i := range 10 {
				producer := tx.Clone()
				go func() {
					defer GinkgoRecover()
					defer producer.Close()
					Expect(producer.Send(i)).To(Succeed())
					done <- struct{}{}
				}()
			}
			tx.Close()
			for range 10 {
				Eventually(done, 1*time.Second).Should(Receive())
			}

			Expect(rx.Drain()).To(ConsistOf(0, 1, 2, 3, 4, 5, 6, 7, 8, 9))
			_, err := rx.Recv(ctx)
			Expect(srvErrors.IsChannelClosedError(err)).To(BeTrue())
		})

		It("should reject sends on a closed sender", func() {
			tx, rx := channel.New[int]()
			clone := tx.Clone()
			tx.Close()
			tx.Close()

			Expect(srvErrors.IsChannelClosedError(tx.Send(1))).To(BeTrue())
			Expect(clone.Send(2)).To(Succeed())
			Expect(rx.Len()).To(Equal(1))
		})

		It("should return a closed clone from a closed sender", func() {
			tx, rx := channel.New[int]()
			tx.Close()

			clone := tx.Clone()
			Expect(srvErrors.IsChannelClosedError(clone.Send(1))).To(BeTrue())

			_, _, err := rx.TryRecv()
			Expect(srvErrors.IsChannelClosedError(err)).To(BeTrue())
		})

		It("should reject sends once the receiver is closed", func() {
			tx, rx := channel.New[int]()
			Expect(tx.Send(1)).To(Succeed())

			rx.Close()

			Expect(srvErrors.IsChannelClosedError(tx.Send(2))).To(BeTrue())
			Expect(rx.Len()).To(BeZero())
		})
	})
})
