/*
Package main provides end-to-end tests for the patterns command.

# Package Structure

	test/e2e/
	├── main.go          Entry point: flags, config, Runner setup, Ginkgo runner
	├── tests.go         Ginkgo test specs (spawn, counter, channels, ls, config file)
	├── doc.go           This file
	└── infra/
	    ├── infra.go     Runner interface + runner modes
	    └── binary.go    BinaryRunner (gexec build or prebuilt binary)

# Runner

Runner is the single abstraction the specs use to reach the binary:

	type Runner interface {
	    Start(env, args...) (*gexec.Session, error)
	    Cleanup()
	}

Two modes, selected via the -runner-mode flag:
  - build: compiles -package (default cmd/patterns) with gexec.Build.
  - binary: runs the executable given by -binary.

Every test starts the binary, waits for its exit code and asserts on the
captured stdout and stderr.

# Running

	go run ./test/e2e
	go run ./test/e2e -runner-mode binary -binary ./bin/patterns
*/
package main
