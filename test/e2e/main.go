package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/kubev2v/concurrency-patterns/test/e2e/infra"
)

type configuration struct {
	RunnerMode string // "build" or "binary"
	Package    string
	BinaryPath string
}

var (
	cfg    configuration
	runner infra.Runner
)

func (c configuration) Validate() error {
	switch c.RunnerMode {
	case infra.ModeBuild:
		if c.Package == "" {
			return fmt.Errorf("package to build is empty")
		}
	case infra.ModeBinary:
		if c.BinaryPath == "" {
			return fmt.Errorf("binary path is empty")
		}
	default:
		return fmt.Errorf("invalid runner-mode %q: must be 'build' or 'binary'", c.RunnerMode)
	}
	return nil
}

func main() {
	flag.StringVar(&cfg.RunnerMode, "runner-mode", infra.ModeBuild, "Runner mode: 'build' (compile the package) or 'binary' (use -binary)")
	flag.StringVar(&cfg.Package, "package", infra.DefaultPackage, "Package of the patterns command")
	flag.StringVar(&cfg.BinaryPath, "binary", "", "Path to a prebuilt patterns binary")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("failed to validate configuration: %v", err)
	}

	var r *infra.BinaryRunner
	switch cfg.RunnerMode {
	case infra.ModeBuild:
		r, err = infra.NewBuildRunner(cfg.Package)
	case infra.ModeBinary:
		r, err = infra.NewBinaryRunner(cfg.BinaryPath)
	}
	if err != nil {
		log.Fatalf("failed to create runner: %v", err)
	}
	runner = r

	RegisterFailHandler(Fail)
	passed := RunSpecs(&testing.T{}, "E2E Suite")
	runner.Cleanup()
	if !passed {
		os.Exit(1)
	}
}
