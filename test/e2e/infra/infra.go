package infra

import (
	"github.com/onsi/gomega/gexec"
)

// Runner abstracts how the e2e specs reach the patterns binary.
// Build mode compiles cmd/patterns with gexec; binary mode runs a prebuilt one.
type Runner interface {
	// Start runs the binary with args. env entries are appended to the
	// current environment.
	Start(env []string, args ...string) (*gexec.Session, error)
	Cleanup()
}

const (
	ModeBuild  = "build"
	ModeBinary = "binary"

	DefaultPackage = "github.com/kubev2v/concurrency-patterns/cmd/patterns"
)
