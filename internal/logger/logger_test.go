package logger_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"

	"github.com/kubev2v/concurrency-patterns/internal/logger"
)

var _ = Describe("Logger", func() {
	DescribeTable("should build a logger at the requested level",
		func(format, level string, enabled, disabled zapcore.Level) {
			l, err := logger.New(format, level)
			Expect(err).NotTo(HaveOccurred())
			Expect(l.Core().Enabled(enabled)).To(BeTrue())
			Expect(l.Core().Enabled(disabled)).To(BeFalse())
		},
		Entry("console at info", "console", "info", zapcore.InfoLevel, zapcore.DebugLevel),
		Entry("json at warn", "json", "warn", zapcore.ErrorLevel, zapcore.InfoLevel),
		Entry("console at debug", "console", "debug", zapcore.DebugLevel, zapcore.Level(-2)),
	)

	It("should reject an unknown level", func() {
		_, err := logger.New("console", "loud")
		Expect(err).To(HaveOccurred())
	})

	It("should reject an unknown format", func() {
		_, err := logger.New("xml", "info")
		Expect(err).To(HaveOccurred())
	})
})
