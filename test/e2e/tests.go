package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

const exitTimeout = 30 * time.Second

// run starts the binary and waits for it to exit with the expected code.
func run(code int, env []string, args ...string) *gexec.Session {
	session, err := runner.Start(env, args...)
	Expect(err).NotTo(HaveOccurred())
	Eventually(session, exitTimeout).Should(gexec.Exit(code))
	return session
}

var _ = Describe("patterns CLI", func() {
	Context("spawn", func() {
		It("should print the launcher's lines in detached mode", func() {
			session := run(0, nil, "detached")
			Expect(session.Out).To(gbytes.Say("hi number 4 from the main thread!"))
		})

		It("should print the spawned lines before the launcher's in joined mode", func() {
			session := run(0, nil, "joined")

			out := string(session.Out.Contents())
			Expect(strings.LastIndex(out, "from the spawned thread!")).To(BeNumerically("<", strings.Index(out, "from the main thread!")))
			Expect(out).To(ContainSubstring("Joined value: 6"))
		})
	})

	Context("counter", func() {
		It("should print the number of units", func() {
			session := run(0, nil, "counter", "--units", "1000")
			Expect(session.Out).To(gbytes.Say("Result: 1000"))
		})

		It("should take the units from the environment", func() {
			session := run(0, []string{"PATTERNS_COUNTER_UNITS=12"}, "counter", "--mode", "atomic")
			Expect(session.Out).To(gbytes.Say("Result: 12"))
		})
	})

	Context("channels", func() {
		It("should hand off the configured message", func() {
			session := run(0, []string{"PATTERNS_CHANNEL_MESSAGE=over"}, "handoff")
			Expect(session.Out).To(gbytes.Say("Got: over"))
		})

		It("should poll until the message arrives", func() {
			session := run(0, nil, "poll")
			Expect(session.Out).To(gbytes.Say("Got: hi"))
		})

		It("should sum the producers' values", func() {
			session := run(0, nil, "fanin", "--collect", "recv")
			Expect(session.Out).To(gbytes.Say("Got: 45"))
		})
	})

	Context("ls", func() {
		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
			for name, size := range map[string]int{"a": 30, "b": 10, "c": 20} {
				Expect(os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o644)).To(Succeed())
			}
		})

		It("should list entries by size", func() {
			session := run(0, nil, "ls", "--size", dir)
			Expect(session.Out).To(gbytes.Say(`b\s+false\s+10 B`))
			Expect(session.Out).To(gbytes.Say(`c\s+false\s+20 B`))
			Expect(session.Out).To(gbytes.Say(`a\s+false\s+30 B`))
		})

		It("should exit non-zero when both orders are requested", func() {
			session := run(1, nil, "ls", "-s", "-n", dir)
			Expect(session.Err).To(gbytes.Say("Error:"))
		})
	})

	It("should read a configuration file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "patterns.yaml")
		Expect(os.WriteFile(path, []byte("counter:\n  units: 3\n  delta: index\n"), 0o600)).To(Succeed())

		session := run(0, nil, "counter", "--config", path)
		Expect(session.Out).To(gbytes.Say("Result: 3"))
	})
})
