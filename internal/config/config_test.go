package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/kubev2v/concurrency-patterns/internal/config"
	srvErrors "github.com/kubev2v/concurrency-patterns/pkg/errors"
)

func setenv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(os.Unsetenv, key)
}

var _ = Describe("Configuration", func() {
	BeforeEach(func() {
		viper.Reset()
	})

	Context("defaults", func() {
		It("should carry the demonstration defaults", func() {
			cfg, err := config.Load(config.SetupViper())
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.LogFormat).To(Equal("console"))
			Expect(cfg.LogLevel).To(Equal("info"))
			Expect(cfg.Spawn.MainLines).To(Equal(4))
			Expect(cfg.Spawn.SpawnedLines).To(Equal(9))
			Expect(cfg.Counter.Units).To(Equal(10))
			Expect(cfg.Counter.Mode).To(Equal("mutex"))
			Expect(cfg.Channel.Message).To(Equal("hi"))
			Expect(cfg.Channel.Producers).To(Equal(9))
			Expect(cfg.Channel.PollMaxAttempts).To(Equal(uint(1000)))
			Expect(cfg.Channel.PollInterval).To(Equal(time.Millisecond))
			Expect(cfg.Listing.Dir).To(Equal("."))
		})

		It("should expose every section in the debug map", func() {
			m := config.NewConfigurationWithOptionsAndDefaults().DebugMap()
			Expect(m).To(HaveKey("Spawn"))
			Expect(m).To(HaveKey("Counter"))
			Expect(m).To(HaveKey("Channel"))
			Expect(m).To(HaveKey("Listing"))
			Expect(m).To(HaveKey("LogLevel"))
		})
	})

	Context("environment", func() {
		It("should read nested keys from PATTERNS_ variables", func() {
			setenv("PATTERNS_COUNTER_UNITS", "42")
			setenv("PATTERNS_CHANNEL_POLL_INTERVAL", "5ms")
			setenv("PATTERNS_LOG_LEVEL", "debug")

			cfg, err := config.Load(config.SetupViper())
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Counter.Units).To(Equal(42))
			Expect(cfg.Channel.PollInterval).To(Equal(5 * time.Millisecond))
			Expect(cfg.LogLevel).To(Equal("debug"))
		})
	})

	Context("file", func() {
		It("should merge a YAML file over the defaults", func() {
			path := filepath.Join(GinkgoT().TempDir(), "patterns.yaml")
			Expect(os.WriteFile(path, []byte("counter:\n  mode: atomic\nchannel:\n  poll-max-attempts: 5\n"), 0o600)).To(Succeed())

			v := config.SetupViper()
			Expect(config.ReadFile(v, path)).To(Succeed())

			cfg, err := config.Load(v)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Counter.Mode).To(Equal("atomic"))
			Expect(cfg.Channel.PollMaxAttempts).To(Equal(uint(5)))
			Expect(cfg.Counter.Units).To(Equal(10))
		})

		It("should ignore an empty path", func() {
			Expect(config.ReadFile(config.SetupViper(), "")).To(Succeed())
		})

		It("should fail on a missing file", func() {
			err := config.ReadFile(config.SetupViper(), filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
			Expect(err).To(HaveOccurred())
		})
	})

	Context("Validate", func() {
		var cfg *config.Configuration

		BeforeEach(func() {
			cfg = config.NewConfigurationWithOptionsAndDefaults()
		})

		It("should accept the defaults", func() {
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should reject both listing orders at once", func() {
			cfg.Listing.BySize = true
			cfg.Listing.ByName = true

			err := cfg.Validate()
			Expect(srvErrors.IsConflictingFlagsError(err)).To(BeTrue())
		})

		DescribeTable("should reject invalid values",
			func(mutate func(c *config.Configuration)) {
				mutate(cfg)
				Expect(cfg.Validate()).NotTo(Succeed())
			},
			Entry("log format", func(c *config.Configuration) { c.LogFormat = "xml" }),
			Entry("negative main lines", func(c *config.Configuration) { c.Spawn.MainLines = -1 }),
			Entry("negative units", func(c *config.Configuration) { c.Counter.Units = -3 }),
			Entry("delta kind", func(c *config.Configuration) { c.Counter.Delta = "two" }),
			Entry("counter mode", func(c *config.Configuration) { c.Counter.Mode = "spinlock" }),
			Entry("negative producers", func(c *config.Configuration) { c.Channel.Producers = -1 }),
			Entry("collect mode", func(c *config.Configuration) { c.Channel.Collect = "select" }),
			Entry("zero poll attempts", func(c *config.Configuration) { c.Channel.PollMaxAttempts = 0 }),
		)
	})
})
