package services_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/kubev2v/concurrency-patterns/internal/config"
	"github.com/kubev2v/concurrency-patterns/internal/services"
)

var _ = Describe("Spawn services", func() {
	var (
		ctx context.Context
		buf *gbytes.Buffer
		cfg *config.Spawn
	)

	BeforeEach(func() {
		ctx = context.Background()
		buf = gbytes.NewBuffer()
		cfg = config.NewSpawnWithOptionsAndDefaults(config.WithStepDelay(0))
	})

	Describe("Detached", func() {
		It("should print the launcher's lines and eventually the spawned unit's", func() {
			Expect(services.NewDetachedService(*cfg, buf).Run(ctx)).To(Succeed())

			Expect(string(buf.Contents())).To(ContainSubstring("hi number 4 from the main thread!"))
			Eventually(func() string {
				return string(buf.Contents())
			}).Should(And(
				ContainSubstring("Here's a vector: [1 2 3]"),
				ContainSubstring("hi number 9 from the spawned thread!"),
			))
		})
	})

	Describe("Joined", func() {
		It("should return the value computed by the unit", func() {
			sum, err := services.NewJoinedService(*cfg, buf).Run(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(sum).To(Equal(6))
			Expect(buf).To(gbytes.Say("Joined value: 6"))
		})

		It("should print every spawned line before the launcher's lines", func() {
			_, err := services.NewJoinedService(*cfg, buf).Run(ctx)
			Expect(err).NotTo(HaveOccurred())

			out := string(buf.Contents())
			lastSpawned := strings.LastIndex(out, "from the spawned thread!")
			firstMain := strings.Index(out, "from the main thread!")

			Expect(lastSpawned).To(BeNumerically(">=", 0))
			Expect(firstMain).To(BeNumerically(">", lastSpawned))
			Expect(strings.Count(out, "from the spawned thread!")).To(Equal(9))
			Expect(strings.Count(out, "from the main thread!")).To(Equal(4))
		})
	})
})
