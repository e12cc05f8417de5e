package cli

import (
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/kubev2v/concurrency-patterns/internal/config"
	"github.com/kubev2v/concurrency-patterns/internal/services"
)

func (o *rootOptions) addSpawnFlags(cmd *cobra.Command) {
	d := config.NewSpawnWithOptionsAndDefaults()
	o.register(cmd,
		&cobraflags.IntFlag{
			Name:     "main-lines",
			ViperKey: config.KeySpawnMainLines,
			Usage:    "lines printed by the launcher",
			Value:    d.MainLines,
		},
		&cobraflags.IntFlag{
			Name:     "spawned-lines",
			ViperKey: config.KeySpawnSpawnedLines,
			Usage:    "lines printed by the spawned unit",
			Value:    d.SpawnedLines,
		},
	)

	cmd.Flags().Duration("step-delay", d.StepDelay, "pause between two printed lines")
	o.registerPFlag(cmd, "step-delay", config.KeySpawnStepDelay)
}

func newDetachedCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detached",
		Short: "Spawn a unit without waiting for it",
		Long: `Spawn a printing unit and print from the launcher at the same time.
The launcher does not wait: the spawned unit's lines interleave with the
launcher's in no particular order and may be cut short when the command exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return services.NewDetachedService(opts.cfg.Spawn, cmd.OutOrStdout()).Run(cmd.Context())
		},
	}
	opts.addSpawnFlags(cmd)
	return cmd
}

func newJoinedCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "joined",
		Short: "Spawn a unit and join it before continuing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := services.NewJoinedService(opts.cfg.Spawn, cmd.OutOrStdout()).Run(cmd.Context())
			return err
		},
	}
	opts.addSpawnFlags(cmd)
	return cmd
}
