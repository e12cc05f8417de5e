// Package config defines the configuration structure for the patterns CLI.
//
// Configuration is organized into one section per demonstration and uses code
// generation via optgen to create functional option helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Spawn          - Detached and joined spawn demonstrations
//	├── Counter        - Shared-state counter
//	├── Channel        - Hand-off, polling and fan-in
//	├── Listing        - Directory listing
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Spawn Configuration
//
//	┌──────────────┬─────────┬──────────────────────────────────────────┐
//	│ Field        │ Default │ Description                              │
//	├──────────────┼─────────┼──────────────────────────────────────────┤
//	│ MainLines    │ 4       │ Lines printed by the launcher            │
//	│ SpawnedLines │ 9       │ Lines printed by the spawned unit        │
//	│ StepDelay    │ 1ms     │ Pause between two printed lines          │
//	└──────────────┴─────────┴──────────────────────────────────────────┘
//
// # Counter Configuration
//
//	┌───────┬─────────┬──────────────────────────────────────────────────┐
//	│ Field │ Default │ Description                                      │
//	├───────┼─────────┼──────────────────────────────────────────────────┤
//	│ Units │ 10      │ Number of units incrementing the counter         │
//	│ Delta │ "one"   │ "one" adds 1 per unit, "index" adds the index i  │
//	│ Mode  │ "mutex" │ "mutex" (poisonable guard) or "atomic"           │
//	└───────┴─────────┴──────────────────────────────────────────────────┘
//
// # Channel Configuration
//
//	┌─────────────────┬─────────┬──────────────────────────────────────┐
//	│ Field           │ Default │ Description                          │
//	├─────────────────┼─────────┼──────────────────────────────────────┤
//	│ Message         │ "hi"    │ Payload of the single hand-off       │
//	│ Producers       │ 9       │ Fan-in producers, unit i sends i     │
//	│ Collect         │ "drain" │ "drain" after join, or "recv" n times│
//	│ PollMaxAttempts │ 1000    │ Upper bound of TryRecv calls         │
//	│ PollInterval    │ 1ms     │ Pause between two polls              │
//	│ PollMaxElapsed  │ 5s      │ Upper bound of the whole poll loop   │
//	└─────────────────┴─────────┴──────────────────────────────────────┘
//
// # Listing Configuration
//
//	┌────────┬─────────┬─────────────────────────────────────────────────┐
//	│ Field  │ Default │ Description                                     │
//	├────────┼─────────┼─────────────────────────────────────────────────┤
//	│ Dir    │ "."     │ Directory to list                               │
//	│ BySize │ false   │ Sort by size, exclusive with ByName             │
//	│ ByName │ false   │ Sort by name, exclusive with BySize             │
//	└────────┴─────────┴─────────────────────────────────────────────────┘
//
// # Sources
//
// SetupViper prepares the global viper instance. It holds every default, reads
// PATTERNS_<SECTION>_<KEY> environment variables (e.g.
// PATTERNS_COUNTER_MODE=atomic) and, through ReadFile, an optional YAML file:
//
//	counter:
//	  units: 1000
//	  mode: atomic
//
// The cli package binds command flags on top of it. Load turns the merged
// values into a validated Configuration.
//
// # Code Generation
//
// The package uses optgen to generate functional option helpers:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Spawn Counter Channel Listing
//
// Generated helpers include:
//
//   - NewConfigurationWithOptions(...ConfigurationOption) - Create with options
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption) - Create with defaults + options
//   - WithSpawn(Spawn), WithCounter(Counter), etc. - Set nested structs
//   - DebugMap() - Returns map for debug logging (respects debugmap tags)
//
// # Debug Logging
//
//	zap.S().Named("config").Debugw("configuration loaded", "config", cfg.DebugMap())
package config
