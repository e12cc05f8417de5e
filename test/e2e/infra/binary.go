package infra

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega/gexec"
	"go.uber.org/zap"
)

// BinaryRunner implements Runner over an executable on disk.
type BinaryRunner struct {
	path  string
	built bool
}

// NewBuildRunner compiles pkg into a temporary binary.
func NewBuildRunner(pkg string) (*BinaryRunner, error) {
	path, err := gexec.Build(pkg)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", pkg, err)
	}
	zap.S().Named("e2e").Infow("patterns binary built", "package", pkg, "path", path)
	return &BinaryRunner{path: path, built: true}, nil
}

// NewBinaryRunner uses an already built binary.
func NewBinaryRunner(path string) (*BinaryRunner, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("patterns binary not found: %w", err)
	}
	return &BinaryRunner{path: path}, nil
}

func (r *BinaryRunner) Start(env []string, args ...string) (*gexec.Session, error) {
	cmd := exec.Command(r.path, args...)
	cmd.Env = append(os.Environ(), env...)

	zap.S().Named("e2e").Debugw("starting patterns", "args", args, "env", env)
	return gexec.Start(cmd, ginkgo.GinkgoWriter, ginkgo.GinkgoWriter)
}

// Cleanup removes the binary when this runner built it.
func (r *BinaryRunner) Cleanup() {
	if r.built {
		gexec.CleanupBuildArtifacts()
	}
}
