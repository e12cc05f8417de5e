package cli

import (
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/kubev2v/concurrency-patterns/internal/config"
	"github.com/kubev2v/concurrency-patterns/internal/services"
)

func newCounterCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Increment a shared counter from many units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := services.NewCounterService(cmd.OutOrStdout()).Run(cmd.Context(), opts.cfg.Counter)
			return err
		},
	}

	d := config.NewCounterWithOptionsAndDefaults()
	opts.register(cmd,
		&cobraflags.IntFlag{
			Name:     "units",
			ViperKey: config.KeyCounterUnits,
			Usage:    "number of units incrementing the counter",
			Value:    d.Units,
		},
		&cobraflags.StringFlag{
			Name:     "delta",
			ViperKey: config.KeyCounterDelta,
			Usage:    "increment per unit: 'one' or 'index'",
			Value:    d.Delta,
		},
		&cobraflags.StringFlag{
			Name:     "mode",
			ViperKey: config.KeyCounterMode,
			Usage:    "counter implementation: 'mutex' or 'atomic'",
			Value:    d.Mode,
		},
	)

	return cmd
}
