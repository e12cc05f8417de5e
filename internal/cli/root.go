package cli

import (
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kubev2v/concurrency-patterns/internal/config"
	"github.com/kubev2v/concurrency-patterns/internal/logger"
)

type rootOptions struct {
	configFile *cobraflags.StringFlag
	cfg        *config.Configuration

	// flags and pflagKeys hold, per command, what setup binds to viper before
	// loading the configuration.
	flags     map[*cobra.Command][]cobraflags.Flag
	pflagKeys map[*cobra.Command]map[string]string
}

// NewRootCommand returns the patterns command tree. Flags are bound to the
// global viper instance, which is reset here.
func NewRootCommand() *cobra.Command {
	viper.Reset()

	opts := &rootOptions{
		flags:     make(map[*cobra.Command][]cobraflags.Flag),
		pflagKeys: make(map[*cobra.Command]map[string]string),
	}
	d := config.NewConfigurationWithOptionsAndDefaults()

	cmd := &cobra.Command{
		Use:           "patterns",
		Short:         "Demonstrations of spawn, join, shared state and channel hand-off",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: cobrautil.CommandStack(
			cobrautil.SyncViperPreRunE(config.EnvPrefix),
			opts.setup,
		),
	}

	opts.configFile = &cobraflags.StringFlag{
		Name:       "config",
		Usage:      "path to a YAML configuration file",
		Persistent: true,
	}
	opts.register(cmd,
		opts.configFile,
		&cobraflags.StringFlag{
			Name:       "log-format",
			ViperKey:   config.KeyLogFormat,
			Usage:      "log format: 'console' or 'json'",
			Value:      d.LogFormat,
			Persistent: true,
		},
		&cobraflags.StringFlag{
			Name:       "log-level",
			ViperKey:   config.KeyLogLevel,
			Usage:      "log level",
			Value:      d.LogLevel,
			Persistent: true,
		},
	)

	cmd.AddCommand(
		newDetachedCommand(opts),
		newJoinedCommand(opts),
		newCounterCommand(opts),
		newHandoffCommand(opts),
		newPollCommand(opts),
		newFanInCommand(opts),
		newListCommand(opts),
		newAllCommand(opts),
	)

	cobraflags.CobraOnInitialize(config.EnvPrefix, cmd)

	return cmd
}

// register adds flags to cmd and remembers them for binding.
func (o *rootOptions) register(cmd *cobra.Command, flags ...cobraflags.Flag) {
	cobraflags.Register(cmd, flags...)
	o.flags[cmd] = append(o.flags[cmd], flags...)
}

// registerPFlag remembers a flag cobraflags has no type for as the
// command-line source of key.
func (o *rootOptions) registerPFlag(cmd *cobra.Command, name, key string) {
	if o.pflagKeys[cmd] == nil {
		o.pflagKeys[cmd] = make(map[string]string)
	}
	o.pflagKeys[cmd][name] = key
}

// bind ties the root and cmd flags to their viper keys. cobraflags binds a
// flag the first time it is read.
func (o *rootOptions) bind(cmd *cobra.Command) error {
	for _, c := range []*cobra.Command{cmd.Root(), cmd} {
		for _, f := range o.flags[c] {
			switch f := f.(type) {
			case *cobraflags.IntFlag:
				f.GetInt()
			case *cobraflags.StringFlag:
				f.GetString()
			case *cobraflags.BoolFlag:
				f.GetBool()
			default:
				return fmt.Errorf("unsupported flag type %T", f)
			}
		}
		for name, key := range o.pflagKeys[c] {
			if err := viper.BindPFlag(key, c.Flags().Lookup(name)); err != nil {
				return err
			}
		}
	}
	return nil
}

// setup binds the flags of the command being run, loads the configuration and
// installs the global logger.
func (o *rootOptions) setup(cmd *cobra.Command, args []string) error {
	if err := o.bind(cmd); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	v := config.SetupViper()
	if err := config.ReadFile(v, o.configFile.GetString()); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(l)

	o.cfg = cfg
	zap.S().Named("config").Debugw("configuration loaded", "config", cfg.DebugMap())

	return nil
}
