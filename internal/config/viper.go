package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/kubev2v/concurrency-patterns/internal/models"
	srvErrors "github.com/kubev2v/concurrency-patterns/pkg/errors"
)

const EnvPrefix = "PATTERNS"

// Viper keys. Nested keys map to YAML sections and to PATTERNS_<SECTION>_<KEY>
// environment variables.
const (
	KeyLogFormat = "log-format"
	KeyLogLevel  = "log-level"

	KeySpawnMainLines    = "spawn.main-lines"
	KeySpawnSpawnedLines = "spawn.spawned-lines"
	KeySpawnStepDelay    = "spawn.step-delay"

	KeyCounterUnits = "counter.units"
	KeyCounterDelta = "counter.delta"
	KeyCounterMode  = "counter.mode"

	KeyChannelMessage         = "channel.message"
	KeyChannelProducers       = "channel.producers"
	KeyChannelCollect         = "channel.collect"
	KeyChannelPollMaxAttempts = "channel.poll-max-attempts"
	KeyChannelPollInterval    = "channel.poll-interval"
	KeyChannelPollMaxElapsed  = "channel.poll-max-elapsed"

	KeyListingDir    = "listing.dir"
	KeyListingBySize = "listing.by-size"
	KeyListingByName = "listing.by-name"
)

// SetupViper configures the global viper instance, which command flags are
// bound to, to read the PATTERNS_ environment and hold every configuration
// default. Defaults go in after flag initialization so that an untouched flag
// never shadows the configuration file.
func SetupViper() *viper.Viper {
	v := viper.GetViper()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	d := NewConfigurationWithOptionsAndDefaults()
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeySpawnMainLines, d.Spawn.MainLines)
	v.SetDefault(KeySpawnSpawnedLines, d.Spawn.SpawnedLines)
	v.SetDefault(KeySpawnStepDelay, d.Spawn.StepDelay)
	v.SetDefault(KeyCounterUnits, d.Counter.Units)
	v.SetDefault(KeyCounterDelta, d.Counter.Delta)
	v.SetDefault(KeyCounterMode, d.Counter.Mode)
	v.SetDefault(KeyChannelMessage, d.Channel.Message)
	v.SetDefault(KeyChannelProducers, d.Channel.Producers)
	v.SetDefault(KeyChannelCollect, d.Channel.Collect)
	v.SetDefault(KeyChannelPollMaxAttempts, d.Channel.PollMaxAttempts)
	v.SetDefault(KeyChannelPollInterval, d.Channel.PollInterval)
	v.SetDefault(KeyChannelPollMaxElapsed, d.Channel.PollMaxElapsed)
	v.SetDefault(KeyListingDir, d.Listing.Dir)
	v.SetDefault(KeyListingBySize, d.Listing.BySize)
	v.SetDefault(KeyListingByName, d.Listing.ByName)

	return v
}

// ReadFile merges a YAML configuration file into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}
	return nil
}

// Load builds and validates the Configuration held by v.
func Load(v *viper.Viper) (*Configuration, error) {
	cfg := NewConfigurationWithOptionsAndDefaults(
		WithLogFormat(v.GetString(KeyLogFormat)),
		WithLogLevel(v.GetString(KeyLogLevel)),
		WithSpawn(*NewSpawnWithOptions(
			WithMainLines(v.GetInt(KeySpawnMainLines)),
			WithSpawnedLines(v.GetInt(KeySpawnSpawnedLines)),
			WithStepDelay(v.GetDuration(KeySpawnStepDelay)),
		)),
		WithCounter(*NewCounterWithOptions(
			WithUnits(v.GetInt(KeyCounterUnits)),
			WithDelta(v.GetString(KeyCounterDelta)),
			WithMode(v.GetString(KeyCounterMode)),
		)),
		WithChannel(*NewChannelWithOptions(
			WithMessage(v.GetString(KeyChannelMessage)),
			WithProducers(v.GetInt(KeyChannelProducers)),
			WithCollect(v.GetString(KeyChannelCollect)),
			WithPollMaxAttempts(v.GetUint(KeyChannelPollMaxAttempts)),
			WithPollInterval(v.GetDuration(KeyChannelPollInterval)),
			WithPollMaxElapsed(v.GetDuration(KeyChannelPollMaxElapsed)),
		)),
		WithListing(*NewListingWithOptions(
			WithDir(v.GetString(KeyListingDir)),
			WithBySize(v.GetBool(KeyListingBySize)),
			WithByName(v.GetBool(KeyListingByName)),
		)),
	)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Configuration) Validate() error {
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be 'console' or 'json'", c.LogFormat)
	}
	if c.Spawn.MainLines < 0 || c.Spawn.SpawnedLines < 0 {
		return fmt.Errorf("line counts must not be negative")
	}
	if c.Counter.Units < 0 {
		return fmt.Errorf("invalid number of units %d", c.Counter.Units)
	}
	if _, err := models.ParseDeltaKind(c.Counter.Delta); err != nil {
		return err
	}
	if _, err := models.ParseCounterMode(c.Counter.Mode); err != nil {
		return err
	}
	if c.Channel.Producers < 0 {
		return fmt.Errorf("invalid number of producers %d", c.Channel.Producers)
	}
	if _, err := models.ParseFanInMode(c.Channel.Collect); err != nil {
		return err
	}
	if c.Channel.PollMaxAttempts == 0 {
		return fmt.Errorf("poll max attempts must be positive")
	}
	if c.Listing.BySize && c.Listing.ByName {
		return srvErrors.NewConflictingFlagsError("size", "name")
	}
	return nil
}
